package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/officedesk/internal/config"
)

// initCmd writes a default config.yaml.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default config.yaml to the user config directory.

The file documents every setting with its default value. Environment
variables with the OFFICEDESK_ prefix override the file, so the config
file itself is optional.

Examples:
  officedesk init          # Write config.yaml if absent
  officedesk init --force  # Overwrite an existing config.yaml`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configPath, _ := cmd.Flags().GetString("config")

	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	if err := config.WriteDefault(path, force); err != nil {
		return err
	}

	cmd.Printf("Wrote %s\n", path)
	cmd.Println("Edit it to point at your server, then run 'officedesk'.")
	return nil
}
