package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ravenmoor/mazebot/internal/config"
)

// TestDefault verifies the compiled defaults.
func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, time.Second, cfg.TickInterval)
	require.Equal(t, 0, cfg.MaxSteps)
	require.True(t, cfg.ClearScreen)
}

// TestLoad_MissingFileUsesDefaults verifies a missing config path is fine.
func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

// TestLoad_YAMLFile verifies file values overlay defaults.
func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazebot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"tick_interval: 250ms\nmax_steps: 40\nclear_screen: false\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	require.Equal(t, 40, cfg.MaxSteps)
	require.False(t, cfg.ClearScreen)
}

// TestLoad_EnvOverrides verifies environment variables win over the file.
func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazebot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_interval: 2s\n"), 0o600))

	t.Setenv(config.EnvTick, "10ms")
	t.Setenv(config.EnvMaxSteps, "7")
	t.Setenv(config.EnvNoClear, "1")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 10*time.Millisecond, cfg.TickInterval)
	require.Equal(t, 7, cfg.MaxSteps)
	require.False(t, cfg.ClearScreen)
}

// TestLoad_Invalid covers unparseable env values and bad file values.
func TestLoad_Invalid(t *testing.T) {
	t.Run("BadTickEnv", func(t *testing.T) {
		t.Setenv(config.EnvTick, "soon")
		_, err := config.Load("")
		require.Error(t, err)
	})
	t.Run("BadMaxStepsEnv", func(t *testing.T) {
		t.Setenv(config.EnvMaxSteps, "many")
		_, err := config.Load("")
		require.Error(t, err)
	})
	t.Run("NegativeMaxSteps", func(t *testing.T) {
		t.Setenv(config.EnvMaxSteps, "-1")
		_, err := config.Load("")
		require.Error(t, err)
	})
}
