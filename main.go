package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tasnim.dev/netlab/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "netlab",
		Short:         "Provision and tear down the lab VPC topology",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cmd.NewProvisionCmd())
	rootCmd.AddCommand(cmd.NewTeardownCmd())

	// The first signal stops the run at the next phase boundary. Restoring
	// default handling afterwards lets a second one kill the process.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
