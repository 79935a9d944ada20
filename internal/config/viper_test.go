package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	// Run from a temp dir so a developer's local config file cannot leak in.
	chdirTemp(t)

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "categories.yaml", cfg.Store.File)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "debit", cfg.Summary.Direction)
	assert.Equal(t, "table", cfg.Summary.Format)
}

func TestInitializeConfig_EnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LEDGERLENS_STORE_FILE", "custom.yaml")
	t.Setenv("LEDGERLENS_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "custom.yaml", cfg.Store.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Store.File = "categories.yaml"
	cfg.CSV.Delimiter = ","
	assert.NoError(t, validateConfig(cfg))

	cfg.Log.Level = "verbose"
	assert.Error(t, validateConfig(cfg))
	cfg.Log.Level = "info"

	cfg.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(cfg))
	cfg.CSV.Delimiter = ";"

	cfg.Store.File = ""
	assert.Error(t, validateConfig(cfg))
}

// chdirTemp switches to a temp dir for the test (t.Chdir needs Go 1.24+).
func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})
}
