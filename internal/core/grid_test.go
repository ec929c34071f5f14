package core

import (
	"errors"
	"testing"

	prng "mad-maze/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridDefaults(t *testing.T) {
	g := NewGrid(6, 6, prng.NewRandomFromString("maze"), false)

	for _, c := range g.Cells() {
		require.Equal(t, Floor, c)
	}
	assert.False(t, g.Has(0, 0))
	assert.True(t, g.Has(1, 1))
	assert.True(t, g.Has(4, 4))
	assert.False(t, g.Has(5, 5))
}

func TestNewGridInverseKeepsBorderFloor(t *testing.T) {
	g := NewGrid(5, 4, prng.NewRandom(1), true)
	for e := range g.Entries() {
		if g.Has(e.X, e.Y) {
			require.Equal(t, Wall, e.Value, "interior (%d,%d)", e.X, e.Y)
			continue
		}
		require.Equal(t, Floor, e.Value, "border (%d,%d)", e.X, e.Y)
	}
	assert.Equal(t, Floor, g.CarveValue())
}

func TestHasExcludesBorder(t *testing.T) {
	for _, dims := range [][2]int{{3, 3}, {4, 7}, {10, 5}} {
		w, h := dims[0], dims[1]
		g := NewGrid(w, h, nil, false)
		for y := -1; y <= h; y++ {
			for x := -1; x <= w; x++ {
				want := x >= 1 && x <= w-2 && y >= 1 && y <= h-2
				require.Equal(t, want, g.Has(x, y), "%dx%d at (%d,%d)", w, h, x, y)
			}
		}
	}
}

func TestDegenerateGrid(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {-3, 4}, {5, 0}} {
		g := NewGrid(dims[0], dims[1], nil, false)
		assert.Empty(t, g.Cells())
		g.FindPockets().CombineWalls().MergeWalls()
		assert.Empty(t, g.Walls())
	}

	g := NewGrid(2, 2, nil, true)
	assert.Equal(t, []uint8{0, 0, 0, 0}, g.Cells())
}

func TestEntriesRowMajorAndRestartable(t *testing.T) {
	g := NewGrid(3, 2, nil, false)
	g.Set(2, 1, 7)

	var first []Entry
	for e := range g.Entries() {
		first = append(first, e)
	}
	require.Len(t, first, 6)
	assert.Equal(t, Entry{X: 1, Y: 0}, first[1])
	assert.Equal(t, Entry{X: 0, Y: 1}, first[3])
	assert.Equal(t, Entry{X: 2, Y: 1, Value: 7}, first[5])

	var second []Entry
	for e := range g.Entries() {
		second = append(second, e)
		if len(second) == 2 {
			break
		}
	}
	assert.Equal(t, first[:2], second)
}

func TestCellsIsSnapshot(t *testing.T) {
	g := NewGrid(4, 4, nil, false)
	cells := g.Cells()
	cells[5] = 9
	assert.Equal(t, Floor, g.Get(1, 1))
}

type fillStrategy struct{ err error }

func (f fillStrategy) Name() string { return "fill" }

func (f fillStrategy) Apply(g *Grid) error {
	if f.err != nil {
		return f.err
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Has(x, y) {
				g.Set(x, y, g.CarveValue())
			}
		}
	}
	return nil
}

func TestRunAppliesStrategy(t *testing.T) {
	g := NewGrid(5, 5, nil, false)
	require.NoError(t, g.Run(fillStrategy{}))
	assert.Equal(t, 9, g.Count(Wall))

	boom := errors.New("boom")
	assert.ErrorIs(t, NewGrid(5, 5, nil, false).Run(fillStrategy{err: boom}), boom)
}

func TestStrategyRegistry(t *testing.T) {
	RegisterStrategy("test-fill", func(map[string]string) (Strategy, error) { return fillStrategy{}, nil })
	RegisterStrategy("", nil)

	s, err := NewStrategy("test-fill", nil)
	require.NoError(t, err)
	assert.Equal(t, "fill", s.Name())
	assert.Contains(t, StrategyNames(), "test-fill")

	_, err = NewStrategy("missing", nil)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestDirectionOffsets(t *testing.T) {
	cases := map[Direction][2]int{
		None:      {0, 0},
		Left:      {-1, 0},
		Right:     {1, 0},
		Up:        {0, -1},
		Down:      {0, 1},
		UpLeft:    {-1, -1},
		DownRight: {1, 1},
	}
	for d, want := range cases {
		dx, dy := d.Offset()
		assert.Equal(t, want, [2]int{dx, dy}, d.String())
		assert.Equal(t, d, DirectionOf(dx, dy))
	}

	set, ok := LookupDirectionSet("horizontal")
	require.True(t, ok)
	assert.Equal(t, []Direction{Left, Right}, set)
	d, ok := LookupDirection("downleft")
	require.True(t, ok)
	assert.Equal(t, DownLeft, d)
}
