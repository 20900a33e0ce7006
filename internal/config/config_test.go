package config

import (
	"os"
	"path/filepath"
	"pokerdeck/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("POKERDECK_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("POKERDECK_GAME_PLAYERS", "3")()

	a := assert.New(t)
	config = Config{}
	cfg := Instance()
	a.Equal(int64(42), cfg.Seed)
	a.Equal(3, cfg.Game.Players)
	a.Equal(5, cfg.Game.CardsPerPlayer)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("text", cfg.Log.Format)

	// ensure that it's only loaded once
	_ = os.Setenv("POKERDECK_GAME_PLAYERS", "6")
	// ensure we aren't using a pointer
	cfg.Game.Players = 10
	cfg = Instance()
	a.Equal(3, cfg.Game.Players)
}

func TestDefaults(t *testing.T) {
	defer util.SetEnv("POKERDECK_CONFIG_FILE", "testdata/missing.yaml")()

	require.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 2, cfg.Game.Players)
	assert.Equal(t, 3, cfg.Game.CardsPerPlayer)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_badFile(t *testing.T) {
	defer util.SetEnv("POKERDECK_CONFIG_FILE", "testdata")()

	assert.Error(t, Load())
}

// inDir runs fn with the working directory set to dir
func inDir(t *testing.T, dir string, fn func()) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() {
		require.NoError(t, os.Chdir(wd))
	}()

	fn()
}

func TestLoad_dotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("POKERDECK_GAME_CARDS_PER_PLAYER=7\n"), 0o600))
	defer func() {
		_ = os.Unsetenv("POKERDECK_GAME_CARDS_PER_PLAYER")
	}()

	inDir(t, dir, func() {
		require.NoError(t, Load())
	})

	cfg := Instance()
	assert.Equal(t, 7, cfg.Game.CardsPerPlayer)
	assert.Equal(t, 2, cfg.Game.Players)
}

func TestLoad_badDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0o600))

	inDir(t, dir, func() {
		assert.Error(t, Load())
	})
}
