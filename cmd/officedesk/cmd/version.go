package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/officedesk/internal/version"
)

// versionCmd prints build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	cmd.Printf("officedesk %s\n", version.String())
	return nil
}
