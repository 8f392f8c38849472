package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tasnim.dev/netlab/internal/cloud"
	"tasnim.dev/netlab/internal/orchestrator"
	"tasnim.dev/netlab/internal/userdata"
)

func NewProvisionCmd() *cobra.Command {
	var flags commonFlags
	var userDataSource string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create the lab subnets, gateway, routes, security groups and instances in an existing VPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, cmd, &flags)
			if err != nil {
				return err
			}

			topo := cloud.DefaultTopology(s.cfg.TopologyOptions())
			profiles, err := s.clients.IAM.RequireInstanceProfiles(ctx, topo)
			if err != nil {
				return err
			}
			for _, p := range profiles {
				s.log.Debug().Str("profile", p.Name).Strs("roles", p.Roles).Msg("instance profile found")
			}

			if userDataSource == "" {
				userDataSource = s.cfg.UserDataSource
			}
			ud, err := userdata.New(userDataSource, s.clients.S3)
			if err != nil {
				return fmt.Errorf("user data: %w", err)
			}

			scope := s.cfg.Scope(flags.vpcID, flags.vpcName)
			var report *orchestrator.Report
			runErr := s.run(ctx, cmd, "netlab provision "+scope.String(), ud,
				func(ctx context.Context, deps orchestrator.Deps) error {
					var err error
					_, report, err = orchestrator.NewProvisioner(deps, topo).Provision(ctx, scope)
					return err
				})
			return s.finish(cmd, report, runErr)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&userDataSource, "user-data", "", "user-data directory or s3://bucket/prefix (default \"user-data\")")

	return cmd
}
