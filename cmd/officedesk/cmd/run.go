package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dbmrq/officedesk/internal/config"
	"github.com/dbmrq/officedesk/internal/crm"
	"github.com/dbmrq/officedesk/internal/logging"
	"github.com/dbmrq/officedesk/internal/session"
	"github.com/dbmrq/officedesk/internal/tui"
	"github.com/dbmrq/officedesk/internal/version"
)

// runRoot wires configuration, logging, the API client and the session
// store, then hands control to the TUI.
func runRoot(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	serverOverride, _ := cmd.Flags().GetString("server")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.NewLoader().Load(configPath)
	if err != nil {
		return err
	}
	if serverOverride != "" {
		cfg.Server.BaseURL = serverOverride
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	// The TUI owns stdout, so logs go to a file only. A failed logger
	// setup degrades to no logging rather than blocking the app.
	logDir, err := cfg.LogDir()
	if err == nil {
		logCfg := logging.DefaultConfig(logDir)
		logCfg.Level = cfg.Log.Level
		if logger, logErr := logging.New(logCfg); logErr == nil {
			logging.SetGlobal(logger)
			defer func() { _ = logger.Sync() }()
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: file logging disabled: %v\n", logErr)
		}
	}

	logging.Info("officedesk starting",
		zap.String("version", version.Version),
		zap.String("server", cfg.Server.BaseURL))

	appDir, err := config.AppDir()
	if err != nil {
		return err
	}
	store := session.NewStore(filepath.Join(appDir, session.SessionFileName))
	client := crm.NewClient(cfg.Server.BaseURL, cfg.Server.Timeout, store)
	store.SetAuthenticator(client)

	return tui.Run(tui.Deps{
		Client: client,
		Store:  store,
		Config: cfg,
	})
}
