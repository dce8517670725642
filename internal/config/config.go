// Package config provides configuration data structures for officedesk.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Config represents the complete officedesk configuration loaded from
// the config file in the user config directory.
type Config struct {
	Server ServerConfig `yaml:"server" json:"server"`
	UI     UIConfig     `yaml:"ui"     json:"ui"`
	Log    LogConfig    `yaml:"log"    json:"log"`
}

// ServerConfig configures the remote CRM API.
type ServerConfig struct {
	// BaseURL is the root of the REST API, e.g. http://localhost:8000.
	BaseURL string `yaml:"base_url" json:"base_url"`
	// Timeout is the per-request timeout.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// UIConfig configures terminal UI behavior.
type UIConfig struct {
	// CompactWidth is the terminal width below which the navigation
	// menu collapses into a dismissible overlay.
	CompactWidth int `yaml:"compact_width" json:"compact_width"`
}

// LogConfig configures file logging.
type LogConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level" json:"level"`
	// Dir is the log directory. Empty means <config dir>/logs.
	Dir string `yaml:"dir" json:"dir"`
}

// Default values.
const (
	DefaultBaseURL      = "http://localhost:8000"
	DefaultTimeout      = 15 * time.Second
	DefaultCompactWidth = 80
	DefaultLogLevel     = "info"

	// AppDirName is the directory under the user config dir holding
	// config.yaml, the session file and logs.
	AppDirName = "officedesk"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"
)

// New returns a new Config with default values applied.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		UI: UIConfig{
			CompactWidth: DefaultCompactWidth,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := New()

	if c.Server.BaseURL == "" {
		c.Server.BaseURL = defaults.Server.BaseURL
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = defaults.Server.Timeout
	}
	if c.UI.CompactWidth == 0 {
		c.UI.CompactWidth = defaults.UI.CompactWidth
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ValidationError{
			Field:   "server.base_url",
			Message: fmt.Sprintf("must be an absolute URL, got %q", c.Server.BaseURL),
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{
			Field:   "server.base_url",
			Message: fmt.Sprintf("scheme must be http or https, got %q", u.Scheme),
		}
	}
	if c.Server.Timeout < 0 {
		return &ValidationError{
			Field:   "server.timeout",
			Message: "must not be negative",
		}
	}
	if c.UI.CompactWidth < 0 {
		return &ValidationError{
			Field:   "ui.compact_width",
			Message: "must not be negative",
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error; got %q", c.Log.Level),
		}
	}
	return nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// AppDir returns the officedesk directory under the user config dir.
func AppDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// DefaultConfigPath returns the default path of config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LogDir returns the log directory for the given config, resolving the
// default relative to the app dir when unset.
func (c *Config) LogDir() (string, error) {
	if c.Log.Dir != "" {
		return c.Log.Dir, nil
	}
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}
