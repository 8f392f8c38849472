package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"k8s.io/utils/clock"

	awsclient "tasnim.dev/netlab/internal/aws"
	"tasnim.dev/netlab/internal/config"
	"tasnim.dev/netlab/internal/orchestrator"
	"tasnim.dev/netlab/internal/telemetry"
	"tasnim.dev/netlab/internal/tui"
)

// commonFlags are shared by every subcommand that talks to AWS.
type commonFlags struct {
	profile     string
	region      string
	vpcID       string
	vpcName     string
	logLevel    string
	logFormat   string
	metricsFile string
	progress    bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVarP(&f.region, "region", "r", "", "AWS region to use")
	cmd.Flags().StringVar(&f.vpcID, "vpc-id", "", "target VPC id")
	cmd.Flags().StringVar(&f.vpcName, "vpc-name", "", "target VPC Name tag")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "log format (console, json)")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write run metrics to this node_exporter textfile")
	cmd.Flags().BoolVar(&f.progress, "progress", false, "show live phase progress")
}

// session is everything a subcommand needs after authentication.
type session struct {
	cfg      *config.Config
	profile  string
	region   string
	flags    *commonFlags
	clients  *awsclient.ServiceClient
	identity awsclient.Identity
	metrics  *telemetry.Metrics
	log      zerolog.Logger
}

func openSession(ctx context.Context, cmd *cobra.Command, f *commonFlags) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	profile, region := cfg.Merge(f.profile, f.region)

	s := &session{
		cfg:     cfg,
		profile: profile,
		region:  region,
		flags:   f,
		metrics: telemetry.NewMetrics(),
	}
	if s.log, err = s.newLogger(cmd.ErrOrStderr()); err != nil {
		return nil, err
	}

	prompt := awsclient.NewTerminalPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
	awsCfg, id, err := awsclient.NewVerifier(profile, region, prompt).Authenticate(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticating: %w", err)
	}
	s.identity = id
	s.clients = awsclient.NewServiceClient(awsCfg)

	s.log.Info().
		Str("account", id.Account).
		Str("arn", id.ARN).
		Str("region", region).
		Msg("authenticated")
	return s, nil
}

func (s *session) newLogger(out io.Writer) (zerolog.Logger, error) {
	level := s.flags.logLevel
	if level == "" {
		level = s.cfg.LogLevel
	}
	format := s.flags.logFormat
	if format == "" {
		format = s.cfg.LogFormat
	}
	return telemetry.NewLogger(telemetry.LoggingConfig{Level: level, Format: format, Out: out})
}

func (s *session) deps(userData orchestrator.UserDataSource) orchestrator.Deps {
	return orchestrator.Deps{
		Cloud:    s.clients.EC2,
		Waiter:   s.clients.Waiter,
		UserData: userData,
		Logger:   s.log,
		Clock:    clock.RealClock{},
		Metrics:  s.metrics,
		Settings: s.cfg.Settings(s.region),
	}
}

// run executes work, with the progress display when requested. Logs are
// routed above the display so they do not tear it.
func (s *session) run(ctx context.Context, cmd *cobra.Command, title string, userData orchestrator.UserDataSource, work func(ctx context.Context, deps orchestrator.Deps) error) error {
	deps := s.deps(userData)
	if !s.flags.progress {
		return work(ctx, deps)
	}
	return tui.RunWithProgress(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), title, s.metrics,
		func(ctx context.Context, rec orchestrator.Recorder, logs io.Writer) error {
			log, err := s.newLogger(logs)
			if err != nil {
				return err
			}
			deps.Logger = log
			deps.Metrics = rec
			return work(ctx, deps)
		})
}

// finish prints the report and writes metrics. The run error is returned
// unchanged so cobra reports it.
func (s *session) finish(cmd *cobra.Command, report *orchestrator.Report, runErr error) error {
	if report != nil {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
	}

	path := s.flags.metricsFile
	if path == "" {
		path = s.cfg.MetricsFile
	}
	if path != "" {
		if err := s.metrics.WriteToTextfile(path); err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("writing metrics")
		}
	}
	return runErr
}
