package walker

import (
	"fmt"

	"mad-maze/internal/core"
	prng "mad-maze/pkg/core"

	"github.com/zyedidia/generic/mapset"
)

// placementAttempts bounds how many random coordinates are tried for seeds.
// Grids too small to offer SeedAmount distinct interior cells get fewer seeds.
const placementAttempts = 1000

// RandomWalker seeds walkers at random interior cells and runs each of them
// to completion.
type RandomWalker struct {
	cfg     Config
	seeds   []Point
	walkers []*Walker
}

// NewRandomWalker creates the strategy from cfg.
func NewRandomWalker(cfg Config) *RandomWalker {
	return &RandomWalker{cfg: cfg}
}

// Name returns the strategy identifier.
func (s *RandomWalker) Name() string { return "walker" }

// Config returns the configuration the strategy was built with.
func (s *RandomWalker) Config() Config { return s.cfg }

// Seeds lists the accepted seed positions of the last Apply.
func (s *RandomWalker) Seeds() []Point { return s.seeds }

// Walkers lists the root walkers of the last Apply.
func (s *RandomWalker) Walkers() []*Walker { return s.walkers }

// Apply places seeds and walks from each of them.
func (s *RandomWalker) Apply(g *core.Grid) error {
	if len(s.cfg.Instructions.StartDirections) == 0 {
		return fmt.Errorf("random walker: %w: no start directions", prng.ErrInvalidArgument)
	}
	s.place(g)
	return s.walk(g)
}

func (s *RandomWalker) place(g *core.Grid) {
	rng := g.Random()
	s.seeds = s.seeds[:0]
	if s.cfg.SeedAmount <= 0 {
		return
	}
	taken := mapset.New[Point]()
	for i := 0; i < placementAttempts; i++ {
		p := Point{X: rng.Int(g.W) - 1, Y: rng.Int(g.H) - 1}
		if !g.Has(p.X, p.Y) || taken.Has(p) {
			continue
		}
		taken.Put(p)
		s.seeds = append(s.seeds, p)
		g.Set(p.X, p.Y, g.CarveValue())
		if len(s.seeds) >= s.cfg.SeedAmount {
			break
		}
	}
}

func (s *RandomWalker) walk(g *core.Grid) error {
	s.walkers = s.walkers[:0]
	for _, seed := range s.seeds {
		w := New(g, seed.X, seed.Y, s.cfg.Rules)
		s.walkers = append(s.walkers, w)
		if _, err := w.Walk(); err != nil {
			return fmt.Errorf("random walker: %w", err)
		}
	}
	return nil
}

func init() {
	core.RegisterStrategy("walker", func(cfg map[string]string) (core.Strategy, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return NewRandomWalker(c), nil
	})
}
