package cellular

import (
	"fmt"
	"strconv"

	"mad-maze/internal/core"
	prng "mad-maze/pkg/core"
)

// Config controls the cave smoothing automaton.
type Config struct {
	FillChance float64
	Steps      int
	Birth      int
	Survival   int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{FillChance: 0.45, Steps: 4, Birth: 5, Survival: 4}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.FillChance = parsed
		}
	}
	for key, dst := range map[string]*int{
		"steps":    &c.Steps,
		"birth":    &c.Birth,
		"survival": &c.Survival,
	} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	return c
}

// Caves seeds the interior with noise and smooths it with a birth/survival
// rule over the Moore neighbourhood. Cells outside the interior count as solid.
type Caves struct {
	cfg  Config
	w, h int
	cur  []bool
	nxt  []bool
}

// New returns the strategy for cfg.
func New(cfg Config) *Caves {
	return &Caves{cfg: cfg}
}

// Name returns the strategy identifier.
func (c *Caves) Name() string { return "cellular" }

// Config returns the configuration the strategy was built with.
func (c *Caves) Config() Config { return c.cfg }

// Apply seeds and smooths the interior of g.
func (c *Caves) Apply(g *core.Grid) error {
	if c.cfg.Birth < 0 || c.cfg.Birth > 8 || c.cfg.Survival < 0 || c.cfg.Survival > 8 {
		return fmt.Errorf("cellular: %w: birth %d survival %d", prng.ErrInvalidArgument, c.cfg.Birth, c.cfg.Survival)
	}
	c.w, c.h = g.W, g.H
	c.cur = make([]bool, g.W*g.H)
	c.nxt = make([]bool, g.W*g.H)

	rng := g.Random()
	solid, empty := g.CarveValue(), g.FillValue()
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			if rng.Float() < c.cfg.FillChance {
				c.cur[y*g.W+x] = true
				g.Set(x, y, solid)
			}
		}
	}

	for i := 0; i < c.cfg.Steps; i++ {
		c.step()
		for y := 1; y < g.H-1; y++ {
			for x := 1; x < g.W-1; x++ {
				idx := y*g.W + x
				if c.cur[idx] == c.nxt[idx] {
					continue
				}
				v := empty
				if c.nxt[idx] {
					v = solid
				}
				g.Set(x, y, v)
			}
		}
		c.cur, c.nxt = c.nxt, c.cur
	}
	return nil
}

func (c *Caves) solid(x, y int) bool {
	if x < 1 || y < 1 || x > c.w-2 || y > c.h-2 {
		return true
	}
	return c.cur[y*c.w+x]
}

func (c *Caves) step() {
	w, h := c.w, c.h
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if c.solid(x+dx, y+dy) {
						neighbors++
					}
				}
			}
			idx := y*w + x
			if c.cur[idx] {
				c.nxt[idx] = neighbors >= c.cfg.Survival
			} else {
				c.nxt[idx] = neighbors >= c.cfg.Birth
			}
		}
	}
}

// Parameters describes the configuration for the HUD and CLI.
func (c *Caves) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Automaton",
		Params: []core.Parameter{
			core.FloatParam("fill", "Fill chance", c.cfg.FillChance),
			core.IntParam("steps", "Steps", c.cfg.Steps),
			core.IntParam("birth", "Birth", c.cfg.Birth),
			core.IntParam("survival", "Survival", c.cfg.Survival),
		},
	}}}
}

func init() {
	core.RegisterStrategy("cellular", func(cfg map[string]string) (core.Strategy, error) {
		return New(FromMap(cfg)), nil
	})
}
