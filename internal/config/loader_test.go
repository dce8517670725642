package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Server.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Server.Timeout)
	assert.Equal(t, DefaultCompactWidth, cfg.UI.CompactWidth)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  base_url: https://crm.example.com
  timeout: 30s
ui:
  compact_width: 100
log:
  level: debug
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://crm.example.com", cfg.Server.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 100, cfg.UI.CompactWidth)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadNumericTimeoutMeansSeconds(t *testing.T) {
	path := writeConfig(t, `
server:
  timeout: 20
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, cfg.Server.Timeout)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  base_url: http://10.0.0.5:9000
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:9000", cfg.Server.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Server.Timeout)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  base_url: http://file.example.com
`)
	t.Setenv("OFFICEDESK_SERVER_BASE_URL", "http://env.example.com")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com", cfg.Server.BaseURL)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [broken")

	_, err := NewLoader().Load(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
}

func TestLoadRejectsBadBaseURL(t *testing.T) {
	path := writeConfig(t, `
server:
  base_url: "not a url"
`)

	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := writeConfig(t, `
log:
  level: loud
`)

	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Validate())

	cfg.Server.BaseURL = "ftp://example.com"
	assert.Error(t, cfg.Validate())

	cfg = New()
	cfg.Server.Timeout = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)

	require.NoError(t, WriteDefault(path, false))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.Server.BaseURL)

	// Second write without force must refuse.
	assert.Error(t, WriteDefault(path, false))
	assert.NoError(t, WriteDefault(path, true))
}
