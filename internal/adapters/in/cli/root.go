// Package cli implements the CLI adapter for beacon.
// Commands are thin and delegate to the app layer.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/beacon/internal/app"
)

// NewRootCmd creates the root command. Without a subcommand it runs the
// monitor in the foreground until interrupted.
func NewRootCmd() *cobra.Command {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:   "beacon",
		Short: "beacon - lightweight uptime and latency monitor",
		Long: `beacon periodically probes a set of HTTP(S) services, classifies each one
as OPERATIONAL, DEGRADED or OUTAGE from a rolling latency average, and sends a
notification whenever a classification changes.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: beacon.yaml in ., user config dir, /etc/beacon)")
	rootCmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "Path to an env file (default: .env if present)")

	rootCmd.AddCommand(newCheckCmd(&opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
