package noise

import (
	"math"
	"testing"

	"mad-maze/internal/core"
	prng "mad-maze/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, cfg Config, seed string, w, h int) *core.Grid {
	t.Helper()
	gen, err := New(cfg)
	require.NoError(t, err)
	g := core.NewGrid(w, h, prng.NewRandomFromString(seed), false)
	require.NoError(t, g.Run(gen))
	return g
}

func TestClampedZoomedIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = Clamped
	cfg.Zoom = 4

	first := generate(t, cfg, "maze", 40, 30)
	second := generate(t, cfg, "maze", 40, 30)
	assert.Equal(t, first.Cells(), second.Cells())
	assert.Positive(t, first.Count(core.Wall))
	assert.Greater(t, first.Count(core.Floor), 2*40+2*28)

	other := generate(t, cfg, "labyrinth", 40, 30)
	assert.NotEqual(t, first.Cells(), other.Cells())
}

func TestEveryVariantLeavesBorder(t *testing.T) {
	for _, v := range Variants() {
		t.Run(string(v), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Variant = v
			cfg.Zoom = 3
			g := generate(t, cfg, "variants", 24, 18)
			again := generate(t, cfg, "variants", 24, 18)
			require.Equal(t, g.Cells(), again.Cells())
			for e := range g.Entries() {
				if !g.Has(e.X, e.Y) {
					require.Equal(t, core.Floor, e.Value, "border (%d,%d)", e.X, e.Y)
					continue
				}
				require.LessOrEqual(t, e.Value, core.Wall)
			}
		})
	}
}

func TestInverseSwapsOpenValue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Zoom = 5
	gen, err := New(cfg)
	require.NoError(t, err)

	normal := core.NewGrid(20, 20, prng.NewRandom(9), false)
	inverse := core.NewGrid(20, 20, prng.NewRandom(9), true)
	require.NoError(t, normal.Run(gen))
	require.NoError(t, inverse.Run(gen))
	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			require.Equal(t, normal.Get(x, y), 1-inverse.Get(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestZeroIterationsLeavesGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Iterations = 0
	g := generate(t, cfg, "idle", 10, 10)
	assert.Equal(t, core.NewGrid(10, 10, nil, false).Cells(), g.Cells())
}

func TestUnknownVariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = "spiral"
	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrUnknownVariant)

	g := core.NewGrid(8, 8, prng.NewRandom(1), false)
	before := g.Cells()
	err = g.Run(&Generator{cfg: cfg})
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.Equal(t, before, g.Cells())

	_, err = core.NewStrategy("noise", map[string]string{"variant": "bogus"})
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestNonPositiveZoomRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Zoom = 0
	_, err := New(cfg)
	assert.ErrorIs(t, err, prng.ErrInvalidArgument)
}

func TestAdvisories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threshold = 0.3
	cfg.Time = 2
	gen, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, []Advisory{
		{Key: "threshold", Variant: Normal},
		{Key: "time", Variant: Normal},
	}, gen.Advisories())

	cfg.Variant = Dynamic
	assert.Empty(t, cfg.Advisories())

	cfg = DefaultConfig()
	cfg.Variant = Clamped
	cfg.Min, cfg.Max = -0.2, 0.2
	assert.Empty(t, cfg.Advisories())

	cfg.Variant = Marble
	assert.Len(t, cfg.Advisories(), 2)
	assert.Contains(t, cfg.Advisories()[0].String(), "marble")
}

func TestFromMap(t *testing.T) {
	c, err := FromMap(map[string]string{
		"variant":    "MULTISCALE",
		"zoom":       "6.5",
		"threshold":  "0.25",
		"iterations": "3",
		"min":        "nope",
	})
	require.NoError(t, err)
	assert.Equal(t, MultiScale, c.Variant)
	assert.Equal(t, 6.5, c.Zoom)
	assert.Equal(t, 0.25, c.Threshold)
	assert.Equal(t, 3, c.Iterations)
	assert.Equal(t, DefaultConfig().Min, c.Min)

	s, err := core.NewStrategy("noise", map[string]string{"variant": "marble"})
	require.NoError(t, err)
	assert.Equal(t, "noise", s.Name())
	assert.Equal(t, Marble, s.(*Generator).Config().Variant)
}

func TestFieldLatticeAndRange(t *testing.T) {
	f := NewField(prng.NewRandom(3))
	for _, p := range [][3]float64{{0, 0, 0}, {3, 7, 0}, {12, 1, 5}} {
		assert.InDelta(t, 0, f.Noise(p[0], p[1], p[2]), 1e-12)
	}
	rng := prng.NewRandom(4)
	for i := 0; i < 2000; i++ {
		x, y, z := rng.Float()*64, rng.Float()*64, rng.Float()*4
		n := f.Noise(x, y, z)
		require.LessOrEqual(t, n, 1.1)
		require.GreaterOrEqual(t, n, -1.1)
	}
}

func TestFieldDependsOnSeed(t *testing.T) {
	a := NewField(prng.NewRandom(1))
	b := NewField(prng.NewRandom(1))
	c := NewField(prng.NewRandom(2))
	assert.Equal(t, a.perm, b.perm)
	assert.NotEqual(t, a.perm, c.perm)
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, 0.0, Quantize(0.2, 1))
	assert.Equal(t, 1.0, Quantize(0.5, 1))
	assert.Equal(t, 0.0, Quantize(-0.5, 1))
	assert.Equal(t, -1.0, Quantize(-0.75, 1))
	assert.Equal(t, 0.5, Quantize(0.3, 0.5))
	assert.Equal(t, 0.37, Quantize(0.37, 0))
}

func TestParameters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = Clamped
	gen, err := New(cfg)
	require.NoError(t, err)
	snap := gen.Parameters()
	require.Len(t, snap.Groups, 1)
	var keys []string
	for _, p := range snap.Groups[0].Params {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"variant", "zoom", "iterations", "min", "max"}, keys)
}

func TestVariantRulesPerCell(t *testing.T) {
	const seed, zoom = "rules", 4.0
	cfg := DefaultConfig()
	cfg.Zoom = zoom
	cfg.Threshold = 0.2
	cfg.Time = 1.5

	rules := map[Variant]func(f *Field, x, y, w, h float64) bool{
		Normal: func(f *Field, x, y, _, _ float64) bool {
			return f.Noise(x/zoom, y/zoom, 0) > 0
		},
		Clamped: func(f *Field, x, y, _, _ float64) bool {
			n := f.Noise(x/zoom, y/zoom, 0)
			return n > cfg.Min && n < cfg.Max
		},
		Quantized: func(f *Field, x, y, _, _ float64) bool {
			return Quantize(f.Noise(x/zoom, y/zoom, 0), cfg.Threshold) != 0
		},
		DomainWarped: func(f *Field, x, y, _, _ float64) bool {
			wx, wy := f.DomainWarp(x/zoom, y/zoom, 0)
			return f.Noise(wx, wy, 0) > 0
		},
		MultiScale: func(f *Field, x, y, _, _ float64) bool {
			sum := 0.0
			for o, s := 0, 1.0; o < 3; o, s = o+1, s*2 {
				sum += f.Noise(x/zoom*s, y/zoom*s, 0) / s
			}
			return sum > 0
		},
		Dynamic: func(f *Field, x, y, _, _ float64) bool {
			return Quantize(f.Noise(x/zoom, y/zoom, cfg.Time), cfg.Threshold) != 0
		},
		Marble: func(f *Field, x, y, w, h float64) bool {
			v := 5*x/w + 5*y/h + 5*turbulence(f, x, y, 16, zoom)/256
			return 256*math.Abs(math.Sin(v*math.Pi)) < 100
		},
	}

	for variant, rule := range rules {
		t.Run(string(variant), func(t *testing.T) {
			c := cfg
			c.Variant = variant
			g := generate(t, c, seed, 26, 20)
			field := NewField(prng.NewRandomFromString(seed))

			open := 0
			for y := 1; y < g.H-1; y++ {
				for x := 1; x < g.W-1; x++ {
					want := core.Floor
					if rule(field, float64(x), float64(y), float64(g.W), float64(g.H)) {
						want = core.Wall
						open++
					}
					require.Equal(t, want, g.Get(x, y), "(%d,%d)", x, y)
				}
			}
			interior := (g.W - 2) * (g.H - 2)
			assert.Positive(t, open, "no open cells")
			assert.Less(t, open, interior, "every cell open")
		})
	}
}
