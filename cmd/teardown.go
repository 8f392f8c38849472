package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tasnim.dev/netlab/internal/cloud"
	"tasnim.dev/netlab/internal/orchestrator"
	"tasnim.dev/netlab/internal/tui"
)

var errAborted = errors.New("teardown aborted")

func NewTeardownCmd() *cobra.Command {
	var flags commonFlags
	var yes, deleteVPC bool

	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Delete every instance, interface, security group, gateway, route table and subnet in a VPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, cmd, &flags)
			if err != nil {
				return err
			}

			scope := s.cfg.Scope(flags.vpcID, flags.vpcName)
			if !yes {
				ok, err := confirmTeardown(ctx, cmd, s, scope, deleteVPC)
				if err != nil {
					return err
				}
				if !ok {
					return errAborted
				}
			}

			var report *orchestrator.Report
			runErr := s.run(ctx, cmd, "netlab teardown "+scope.String(), nil,
				func(ctx context.Context, deps orchestrator.Deps) error {
					var err error
					report, err = orchestrator.NewDecommissioner(deps).Decommission(ctx, scope)
					if err != nil || !deleteVPC {
						return err
					}

					if len(report.Warnings) > 0 {
						deps.Logger.Warn().Int("warnings", len(report.Warnings)).Msg("deleting VPC despite teardown warnings")
					}
					deps.RunID = report.RunID
					scopeReport, err := orchestrator.NewDecommissioner(deps).DeleteScope(ctx, report.ScopeID)
					mergeScopeReport(report, scopeReport)
					return err
				})
			return s.finish(cmd, report, runErr)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().BoolVar(&deleteVPC, "delete-vpc", false, "delete the VPC itself after teardown")

	return cmd
}

func confirmTeardown(ctx context.Context, cmd *cobra.Command, s *session, scope cloud.ScopeRef, deleteVPC bool) (bool, error) {
	details := []string{
		"account: " + s.identity.Account,
		"region:  " + s.region,
	}
	if deleteVPC {
		details = append(details, "the VPC itself will be deleted")
	}
	title := fmt.Sprintf("Delete every resource in %s?", scope)
	return tui.Confirm(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), title, details...)
}

// mergeScopeReport folds the DeleteScope run into the teardown report.
func mergeScopeReport(dst, src *orchestrator.Report) {
	if src == nil {
		return
	}
	dst.Phases = append(dst.Phases, src.Phases...)
	dst.Deleted = append(dst.Deleted, src.Deleted...)
	dst.Warnings = append(dst.Warnings, src.Warnings...)
	dst.Duration += src.Duration
	if src.Err != nil {
		dst.Err = src.Err
	}
}
