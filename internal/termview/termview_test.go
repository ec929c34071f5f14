package termview

import (
	"testing"

	"mad-maze/internal/core"
	"mad-maze/internal/pipeline"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawCells(t *testing.T) {
	screen := newScreen(t)
	Draw(screen, 2, []uint8{core.Wall, core.Floor, core.Reached, core.Wall}, "ok")

	assert.Equal(t, '█', runeAt(screen, 0, 0))
	assert.Equal(t, '█', runeAt(screen, 1, 0))
	assert.NotEqual(t, '█', runeAt(screen, 2, 0))
	assert.Equal(t, '░', runeAt(screen, 0, 1))
	assert.Equal(t, '█', runeAt(screen, 3, 1))
	assert.Equal(t, 'o', runeAt(screen, 0, 2))
	assert.Equal(t, 'k', runeAt(screen, 1, 2))
}

func TestViewerRegenerates(t *testing.T) {
	screen := newScreen(t)
	opts := pipeline.DefaultOptions()
	opts.Width, opts.Height = 30, 20
	opts.Seed = "7"
	v, err := New(screen, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Result().Seed)

	require.NoError(t, v.Regenerate("8"))
	assert.Equal(t, int64(8), v.Result().Seed)
	assert.Equal(t, 'w', runeAt(screen, 0, 20))
}

func TestViewerRunQuits(t *testing.T) {
	screen := newScreen(t)
	opts := pipeline.DefaultOptions()
	opts.Width, opts.Height = 20, 12
	v, err := New(screen, opts)
	require.NoError(t, err)
	first := v.Result().Seed

	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, v.Run())
	assert.Equal(t, first+1, v.Result().Seed)
}

func TestNewPropagatesErrors(t *testing.T) {
	screen := newScreen(t)
	opts := pipeline.DefaultOptions()
	opts.Strategy = "nope"
	_, err := New(screen, opts)
	assert.ErrorIs(t, err, core.ErrUnknownStrategy)
}
