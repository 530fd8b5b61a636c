package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, "table", cfg.Output)
	assert.False(t, cfg.IncludeDrafts)
}

func TestLoadFileAndEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "navcheck.yaml")
	require.NoError(t, os.WriteFile(p, []byte("max_depth: 6\ncontent_dir: site/docs\noutput: json\n"), 0644))
	t.Setenv("NAVCHECK_OUTPUT", "yaml")

	cfg, err := Load(viper.New(), p)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.MaxDepth)
	assert.Equal(t, "site/docs", cfg.ContentDir)
	assert.Equal(t, "yaml", cfg.Output)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadLogLevelFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NAVCHECK_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
