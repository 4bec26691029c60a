package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "cosmo-stats"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Survey frequency reporting backend",
		Long: `cosmo-stats aggregates the practices survey answered by teachers,
students and guardians into S/A/N percentages per question, and serves
them as JSON, PDF and XLSX reports.

Running it without a subcommand starts the HTTP server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(serveCmd(), exportCmd(), seedCmd())
	return cmd
}
