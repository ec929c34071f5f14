package walker

import (
	"fmt"
	"math"

	"mad-maze/internal/core"
	prng "mad-maze/pkg/core"
)

const (
	// maxSteps bounds a single walker's loop regardless of its limits.
	maxSteps = 1000
	// maxDepth bounds how deeply branches may nest.
	maxDepth = 256
	// maxWalkers bounds how many walkers one root walk may create, itself
	// included.
	maxWalkers = maxSteps
)

// Unlimited disables a limit.
const Unlimited = math.MaxInt32

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Chances are per-step probabilities in [0, 1].
type Chances struct {
	Straight float64
	Turn     float64
	Branch   float64
}

// Instructions select the directions a walk may take.
type Instructions struct {
	// StartDirections is sampled once per walk for the straight direction.
	StartDirections []core.Direction
	// BranchDirections, when non-empty, restricts which perpendicular is
	// used for turns and branches.
	BranchDirections []core.Direction
}

// Settings toggle border and contact behaviour.
type Settings struct {
	BorderWrapping     bool
	TerminateOnContact bool
}

// Limits cap the counters of a single walker.
type Limits struct {
	MaxLength   int
	MaxTurns    int
	MaxBranches int
}

// Rules bundles everything a walker needs besides its position.
type Rules struct {
	Chances      Chances
	Instructions Instructions
	Settings     Settings
	Limits       Limits
}

// Stats reports what a walker consumed from its budget.
type Stats struct {
	Length   int
	Turns    int
	Branches int
}

// Walker traces a random path through a grid, carving every cell it lands on.
type Walker struct {
	X, Y int

	grid  *core.Grid
	rules Rules
	depth int

	stats    Stats
	children []*Walker
	run      *walkRun
}

// walkRun is shared by a root walker and every branch it spawns.
type walkRun struct {
	walkers int
	traced  []Point
}

// New creates a walker at (x, y) bound to grid.
func New(grid *core.Grid, x, y int, rules Rules) *Walker {
	return &Walker{X: x, Y: y, grid: grid, rules: rules}
}

// Stats returns the walker's own counters, excluding branches it spawned.
func (w *Walker) Stats() Stats { return w.stats }

// Children lists the branch walkers spawned during Walk.
func (w *Walker) Children() []*Walker { return w.children }

func perpendiculars(dx, dy int, allowed []core.Direction) [][2]int {
	opts := [][2]int{{dy, -dx}, {-dy, dx}}
	if len(allowed) == 0 {
		return opts
	}
	var filtered [][2]int
	for _, o := range opts {
		d := core.DirectionOf(o[0], o[1])
		for _, a := range allowed {
			if a == d {
				filtered = append(filtered, o)
				break
			}
		}
	}
	if len(filtered) == 0 {
		return opts
	}
	return filtered
}

// wrap moves coordinates sitting on the border ring to the opposite interior
// edge.
func (w *Walker) wrap(x, y int) (int, int) {
	switch x {
	case 0:
		x = w.grid.W - 2
	case w.grid.W - 1:
		x = 1
	}
	switch y {
	case 0:
		y = w.grid.H - 2
	case w.grid.H - 1:
		y = 1
	}
	return x, y
}

func (w *Walker) valid(x, y int) bool {
	if !w.grid.Has(x, y) {
		return false
	}
	if w.rules.Settings.TerminateOnContact && w.grid.Get(x, y) == w.grid.CarveValue() {
		return false
	}
	return true
}

// Walk runs the walker to completion and returns every cell it and its
// branches carved, starting with its own start cell. A root walk creates at
// most maxWalkers walkers in total.
func (w *Walker) Walk() ([]Point, error) {
	w.run = &walkRun{walkers: 1}
	err := w.walk()
	return w.run.traced, err
}

func (w *Walker) walk() error {
	g := w.grid
	rng := g.Random()
	carve := g.CarveValue()
	run := w.run

	run.traced = append(run.traced, Point{w.X, w.Y})
	if g.Has(w.X, w.Y) {
		g.Set(w.X, w.Y, carve)
	}

	direction, err := prng.Pick(rng, w.rules.Instructions.StartDirections)
	if err != nil {
		return fmt.Errorf("walker start direction: %w", err)
	}
	dx, dy := direction.Offset()
	perp, err := prng.Pick(rng, perpendiculars(dx, dy, w.rules.Instructions.BranchDirections))
	if err != nil {
		return fmt.Errorf("walker perpendicular: %w", err)
	}
	px, py := perp[0], perp[1]

	c := w.rules.Chances
	l := w.rules.Limits
	wrapping := w.rules.Settings.BorderWrapping

	for i := 0; i < maxSteps; i++ {
		if rng.Float() < c.Straight && w.stats.Length < l.MaxLength {
			w.stats.Length++
			w.X += dx
			w.Y += dy
		} else if rng.Float() < c.Turn && w.stats.Turns < l.MaxTurns && w.stats.Length < l.MaxLength {
			w.stats.Turns++
			w.stats.Length++
			w.X += px
			w.Y += py
		} else if rng.Float() < c.Branch && w.stats.Branches < l.MaxBranches && w.depth < maxDepth && run.walkers < maxWalkers {
			w.stats.Branches++
			bx, by := w.X+px, w.Y+py
			if wrapping && !g.Has(bx, by) {
				bx, by = w.wrap(bx, by)
			}
			if !w.valid(bx, by) {
				break
			}
			child := &Walker{
				X:    bx,
				Y:    by,
				grid: g,
				rules: Rules{
					Chances: c,
					Instructions: Instructions{
						StartDirections:  []core.Direction{direction},
						BranchDirections: w.rules.Instructions.BranchDirections,
					},
					Settings: w.rules.Settings,
					Limits: Limits{
						MaxLength:   l.MaxLength - w.stats.Length,
						MaxTurns:    l.MaxTurns - w.stats.Turns,
						MaxBranches: l.MaxBranches - w.stats.Branches,
					},
				},
				depth: w.depth + 1,
				run:   run,
			}
			run.walkers++
			w.children = append(w.children, child)
			if err := child.walk(); err != nil {
				return err
			}
			continue
		} else {
			break
		}

		if wrapping {
			w.X, w.Y = w.wrap(w.X, w.Y)
		}
		if !w.valid(w.X, w.Y) {
			break
		}
		g.Set(w.X, w.Y, carve)
		run.traced = append(run.traced, Point{w.X, w.Y})
	}
	return nil
}
