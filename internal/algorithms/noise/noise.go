package noise

import (
	"errors"
	"fmt"
	"math"

	"mad-maze/internal/core"
	prng "mad-maze/pkg/core"
)

// ErrUnknownVariant is returned for a variant name outside Variants.
var ErrUnknownVariant = errors.New("unknown noise variant")

// marbleSize is the largest turbulence scale used by the marble variant.
const marbleSize = 16

// Generator classifies every interior cell by sampling a gradient noise field
// seeded from the grid's random source.
type Generator struct {
	cfg        Config
	advisories []Advisory
}

// New validates cfg and returns a generator for it.
func New(cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, advisories: cfg.Advisories()}, nil
}

func (c Config) validate() error {
	if _, ok := uses[c.Variant]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownVariant, c.Variant)
	}
	if c.Zoom <= 0 || math.IsNaN(c.Zoom) || math.IsInf(c.Zoom, 0) {
		return fmt.Errorf("noise: %w: zoom must be positive, got %v", prng.ErrInvalidArgument, c.Zoom)
	}
	return nil
}

// Name returns the strategy identifier.
func (g *Generator) Name() string { return "noise" }

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config { return g.cfg }

// Advisories lists parameters that were set but have no effect.
func (g *Generator) Advisories() []Advisory { return g.advisories }

// Apply samples the field once per interior cell for each iteration.
func (g *Generator) Apply(grid *core.Grid) error {
	if err := g.cfg.validate(); err != nil {
		return err
	}
	field := NewField(grid.Random())
	open, closed := grid.CarveValue(), grid.FillValue()
	for pass := 0; pass < g.cfg.Iterations; pass++ {
		for y := 1; y < grid.H-1; y++ {
			for x := 1; x < grid.W-1; x++ {
				v := closed
				if g.open(field, grid, x, y) {
					v = open
				}
				grid.Set(x, y, v)
			}
		}
	}
	return nil
}

func (g *Generator) open(f *Field, grid *core.Grid, x, y int) bool {
	c := g.cfg
	nx, ny := float64(x)/c.Zoom, float64(y)/c.Zoom
	switch c.Variant {
	case Clamped:
		n := f.Noise(nx, ny, 0)
		return c.Min < n && n < c.Max
	case Quantized:
		return Quantize(f.Noise(nx, ny, 0), c.Threshold) != 0
	case DomainWarped:
		wx, wy := f.DomainWarp(nx, ny, 0)
		return f.Noise(wx, wy, 0) > 0
	case MultiScale:
		return f.MultiScale(nx, ny, 0) > 0
	case Dynamic:
		return Quantize(f.Dynamic(nx, ny, 0, c.Time), c.Threshold) != 0
	case Marble:
		return marble(f, float64(x), float64(y), float64(grid.W), float64(grid.H), c.Zoom)
	default:
		return f.Noise(nx, ny, 0) > 0
	}
}

func turbulence(f *Field, x, y, size, zoom float64) float64 {
	value, initial := 0.0, size
	for size >= 1 {
		value += f.Noise(x/size/zoom, y/size/zoom, 0) * size
		size /= 2
	}
	return 128 * value / initial
}

func marble(f *Field, x, y, w, h, zoom float64) bool {
	v := x*5/w + y*5/h + 5*turbulence(f, x, y, marbleSize, zoom)/256
	return 256*math.Abs(math.Sin(v*math.Pi)) < 100
}

func init() {
	core.RegisterStrategy("noise", func(cfg map[string]string) (core.Strategy, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
