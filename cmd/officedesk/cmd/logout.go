package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dbmrq/officedesk/internal/config"
	"github.com/dbmrq/officedesk/internal/session"
)

// logoutCmd discards the persisted session without starting the TUI.
// Useful when a saved session is broken or belongs to the wrong account.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the saved session",
	Long: `Discard the saved session so the next start shows the login screen.

This is purely local: no request is sent to the server.`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	appDir, err := config.AppDir()
	if err != nil {
		return err
	}

	store := session.NewStore(filepath.Join(appDir, session.SessionFileName))
	store.Logout()

	cmd.Println("Session discarded.")
	return nil
}
