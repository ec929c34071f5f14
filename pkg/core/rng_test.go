package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomDeterministic(t *testing.T) {
	a := NewRandomFromString("maze")
	b := NewRandomFromString("maze")
	for i := 0; i < 256; i++ {
		require.Equal(t, a.Int(1000), b.Int(1000), "draw %d", i)
		require.Equal(t, a.Float(), b.Float(), "draw %d", i)
	}

	c := NewRandomFromString("other")
	same := true
	for i := 0; i < 32; i++ {
		if a.Int(1<<30) != c.Int(1<<30) {
			same = false
		}
	}
	assert.False(t, same, "different seeds should diverge")
}

func TestRandomRanges(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 1000; i++ {
		v := r.Int(5)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 5)
		f := r.Float()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
	assert.Equal(t, 0, r.Int(0))
	assert.Equal(t, 0, r.Int(-3))
}

func TestPick(t *testing.T) {
	r := NewRandom(1)

	_, err := Pick[int](r, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		v, err := Pick(r, []string{"a", "b", "c"})
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestCyrb53(t *testing.T) {
	h := Cyrb53("maze", 0)
	assert.Equal(t, h, Cyrb53("maze", 0))
	assert.GreaterOrEqual(t, h, int64(0))
	assert.Less(t, h, int64(1)<<53)
	assert.NotEqual(t, h, Cyrb53("maze", 1))
	assert.NotEqual(t, Cyrb53("revenge", 0), Cyrb53("revenue", 0))
	assert.NotEqual(t, Cyrb53("", 0), int64(0))
}

func TestParseSeed(t *testing.T) {
	v, err := ParseSeed("1234")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), v)

	v, err = ParseSeed("maze")
	require.NoError(t, err)
	assert.Equal(t, Cyrb53("maze", 0), v)

	_, err = ParseSeed("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
