package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"mad-maze/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("maze", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"-width", "21", "-seed", "hello", "-strategy", "noise",
		"-set", "variant=marble", "-set", "zoom=4", "-walls", "merge", "-inverse",
	}))

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, 21, opts.Width)
	assert.Equal(t, 32, opts.Height)
	assert.Equal(t, "hello", opts.Seed)
	assert.Equal(t, "noise", opts.Strategy)
	assert.True(t, opts.Inverse)
	assert.Equal(t, pipeline.WallsMerge, opts.Walls)
	assert.Equal(t, map[string]string{"variant": "marble", "zoom": "4"}, opts.Params)
}

func TestParamListRejectsBarePairs(t *testing.T) {
	var l ParamList
	assert.Error(t, l.Set("zoom"))
	require.NoError(t, l.Set("zoom=2"))
	require.NoError(t, l.Set("zoom = 3"))
	assert.Equal(t, map[string]string{"zoom": "3"}, l.Map())
	assert.Equal(t, "zoom=2,zoom = 3", l.String())
}

func TestOptionsRejectsUnknownWalls(t *testing.T) {
	cfg := NewConfig()
	cfg.Walls = "spiral"
	_, err := cfg.Options()
	assert.ErrorIs(t, err, pipeline.ErrUnknownWallMode)
}

func TestLoadEnvFromFile(t *testing.T) {
	unsetAfter(t, "MAZE_WIDTH", "MAZE_SEED", "MAZE_STRATEGY", "MAZE_HEIGHT", "MAZE_SCALE", "MAZE_WPS", "MAZE_WALLS")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MAZE_WIDTH=64\nMAZE_SEED=caverns\nMAZE_STRATEGY=cellular\n"), 0o600))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadEnv(path))
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, "caverns", cfg.Seed)
	assert.Equal(t, "cellular", cfg.Strategy)
	assert.Equal(t, 32, cfg.Height)
}

func TestLoadEnvMissingFileIsFine(t *testing.T) {
	unsetAfter(t, "MAZE_WIDTH")
	cfg := NewConfig()
	require.NoError(t, cfg.LoadEnv(filepath.Join(t.TempDir(), "absent.env")))
	assert.Equal(t, NewConfig().Width, cfg.Width)
}

func TestLoadEnvRejectsBadInteger(t *testing.T) {
	unsetAfter(t, "MAZE_WPS")
	t.Setenv("MAZE_WPS", "fast")
	cfg := NewConfig()
	assert.Error(t, cfg.LoadEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestWindowTitle(t *testing.T) {
	assert.Equal(t, "mad-maze: noise", WindowTitle("noise"))
	assert.Equal(t, "mad-maze", WindowTitle(""))
}
