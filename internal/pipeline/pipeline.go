// Package pipeline runs a complete generation: grid, strategy, repair and
// wall extraction.
package pipeline

import (
	"errors"
	"fmt"

	"mad-maze/internal/algorithms/noise"
	"mad-maze/internal/core"
	prng "mad-maze/pkg/core"

	_ "mad-maze/internal/algorithms/cellular"
	_ "mad-maze/internal/algorithms/walker"
)

// WallMode selects the wall extraction pass.
type WallMode string

const (
	WallsNone         WallMode = "none"
	WallsCombine      WallMode = "combine"
	WallsMerge        WallMode = "merge"
	WallsMergeVerbose WallMode = "merge-verbose"
)

// ErrUnknownWallMode is returned for a WallMode outside the known set.
var ErrUnknownWallMode = errors.New("unknown wall mode")

// ParseWallMode validates s.
func ParseWallMode(s string) (WallMode, error) {
	switch m := WallMode(s); m {
	case WallsNone, WallsCombine, WallsMerge, WallsMergeVerbose:
		return m, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownWallMode, s)
}

// Options describes one generation run.
type Options struct {
	Width, Height int
	Seed          string
	Inverse       bool
	Strategy      string
	Params        map[string]string
	Repair        bool
	Walls         WallMode
	// Pacer observes cell writes made by the strategy and the repair pass.
	Pacer core.Pacer
}

// DefaultOptions returns the standard run configuration.
func DefaultOptions() Options {
	return Options{
		Width:    48,
		Height:   32,
		Seed:     "maze",
		Strategy: "walker",
		Repair:   true,
		Walls:    WallsCombine,
	}
}

// Result is the outcome of Generate.
type Result struct {
	Grid     *core.Grid
	Strategy core.Strategy
	Seed     int64
	// Cells is the cell array after repair and before wall extraction, which
	// consumes wall cells.
	Cells      []uint8
	Walls      []core.Rect
	Regions    int
	Advisories []string
	Params     core.ParameterSnapshot
}

// Generate builds a maze according to opts.
func Generate(opts Options) (*Result, error) {
	seed, err := prng.ParseSeed(opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	mode := opts.Walls
	if mode == "" {
		mode = WallsCombine
	}
	if _, err := ParseWallMode(string(mode)); err != nil {
		return nil, err
	}
	s, err := core.NewStrategy(opts.Strategy, opts.Params)
	if err != nil {
		return nil, err
	}

	g := core.NewGrid(opts.Width, opts.Height, prng.NewRandom(seed), opts.Inverse)
	g.SetPacer(opts.Pacer)
	if err := g.Run(s); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name(), err)
	}
	if opts.Repair {
		g.FindPockets()
	}
	g.SetPacer(nil)

	res := &Result{
		Grid:     g,
		Strategy: s,
		Seed:     seed,
		Cells:    g.Cells(),
		Regions:  g.Regions(),
	}
	if p, ok := s.(core.ParameterProvider); ok {
		res.Params = p.Parameters()
	}
	if a, ok := s.(interface{ Advisories() []noise.Advisory }); ok {
		for _, adv := range a.Advisories() {
			res.Advisories = append(res.Advisories, adv.String())
		}
	}

	switch mode {
	case WallsCombine:
		g.CombineWalls()
	case WallsMerge:
		g.MergeWalls()
	case WallsMergeVerbose:
		g.MergeWalls(core.WithIntermediateWalls())
	}
	res.Walls = g.Walls()
	return res, nil
}
