package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const app = "job-alerts"

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// @title           Job Alerts API
// @version         1.0
// @description     Job alert management and match generation.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           app,
		Short:         "job-alerts serves the job alert and match API",
		SilenceUsage:  true,
		SilenceErrors: true,
		// running the bare binary starts the server
		RunE: serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve)
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app, version)
		},
	})
	return root
}
