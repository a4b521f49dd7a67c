package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/scim-tools/scim2/pkg/config"
)

func TestNewConfigDefaults(t *testing.T) {
	assert := require.New(t)
	wd, err := os.Getwd()
	assert.NoError(err)
	assert.NoError(os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.NewConfig("")
	assert.NoError(err)

	assert.Equal(config.ResourceUser, cfg.Decode.Resource)
	assert.False(cfg.Decode.Strict)
	assert.Equal("info", cfg.Logging.LogLevel)
	assert.Equal(zerolog.InfoLevel, cfg.Logging.LogLevelParsed)
}

func TestNewConfigFromFile(t *testing.T) {
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(os.WriteFile(path, []byte(`---
logging:
  log_level: debug
decode:
  resource: group
  strict: true
`), 0o600))

	cfg, err := config.NewConfig(path)
	assert.NoError(err)

	assert.Equal(config.ResourceGroup, cfg.Decode.Resource)
	assert.True(cfg.Decode.Strict)
	assert.Equal(zerolog.DebugLevel, cfg.Logging.LogLevelParsed)
}

func TestNewConfigMissingFile(t *testing.T) {
	assert := require.New(t)

	_, err := config.NewConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(err)
	assert.Contains(err.Error(), "doesn't exist")
}

func TestNewConfigUnknownResource(t *testing.T) {
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(os.WriteFile(path, []byte("decode:\n  resource: widget\n"), 0o600))

	_, err := config.NewConfig(path)
	assert.Error(err)
	assert.ErrorIs(err, config.ErrInvalidConfig)
}

func TestNewConfigBadLogLevel(t *testing.T) {
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(os.WriteFile(path, []byte("logging:\n  log_level: loud\n"), 0o600))

	_, err := config.NewConfig(path)
	assert.Error(err)
	assert.Contains(err.Error(), "log_level")
}
