// Package cli implements the redshiftbar CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "redshiftbar",
	Short: "Toggle redshift from a status bar",
	Long: `redshiftbar hosts a status-bar widget that switches redshift on and off.
Run it as a terminal bar ("redshiftbar bar") or as a tray daemon
("redshiftbar daemon start"), or drive redshift directly with "on" and "off".`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(barCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(offCmd)
	rootCmd.AddCommand(onCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(versionCmd)
}
