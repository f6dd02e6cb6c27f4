package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		require.Equal(t, ModeGame, cfg.Mode)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, 5, cfg.HalfExtent)
		require.Equal(t, []string{"greedy", "scorer"}, cfg.Strategies)
		require.Equal(t, "8080", cfg.ServerPort)
		require.False(t, cfg.Bonuses)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kingdomino.yaml")
		content := "MODE: strategies\nSEED: 42\nSTRATEGIES:\n  - compact\n  - perimeter\n  - random\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, ModeStrategies, cfg.Mode)
		require.Equal(t, uint64(42), cfg.Seed)
		require.Equal(t, []string{"compact", "perimeter", "random"}, cfg.Strategies)
		require.Equal(t, "info", cfg.LogLevel, "Unset keys should keep their default")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kingdomino.yaml")
		require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL: warn\n"), 0644))
		t.Setenv("KINGDOMINO_LOG_LEVEL", "debug")
		t.Setenv("KINGDOMINO_GOROUTINES", "3")
		t.Setenv("KINGDOMINO_BONUSES", "true")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, 3, cfg.Goroutines)
		require.True(t, cfg.Bonuses)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("KINGDOMINO_MODE", "tournament")

		_, err := Load("")

		require.ErrorContains(t, err, "unknown mode")
	})
}

func TestValidate(t *testing.T) {
	valid := Config{Mode: ModeServe, HalfExtent: 5, Goroutines: 1, Strategies: []string{"greedy", "greedy"}}
	require.NoError(t, valid.Validate())

	tooFew := valid
	tooFew.Strategies = []string{"greedy"}
	require.Error(t, tooFew.Validate())

	unknown := valid
	unknown.Strategies = []string{"greedy", "mcts"}
	require.Error(t, unknown.Validate())

	small := valid
	small.HalfExtent = 1
	require.Error(t, small.Validate())

	large := valid
	large.HalfExtent = 11
	require.Error(t, large.Validate())
}
