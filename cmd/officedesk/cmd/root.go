// Package cmd provides the CLI commands for officedesk.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/officedesk/internal/version"
)

// rootCmd represents the base command when called without subcommands.
// Running officedesk with no subcommand starts the TUI.
var rootCmd = &cobra.Command{
	Use:   "officedesk",
	Short: "Terminal client for the office leasing CRM",
	Long: `Officedesk is a terminal client for the office leasing CRM.

It talks to the CRM REST API and gives admins, tenants and staff a
keyboard-driven view of offices, bookings, contracts, payments,
maintenance requests and tenants. All data lives on the server; the
client keeps nothing but your session.

Run with no arguments to start the interactive interface.`,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config.yaml (default: user config dir)")
	rootCmd.PersistentFlags().String("server", "", "Server base URL, overriding the config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")
}

// Execute runs the root command.
func Execute() {
	rootCmd.Version = version.String()
	rootCmd.SetVersionTemplate("officedesk {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
