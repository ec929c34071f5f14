package core

import (
	"iter"

	prng "mad-maze/pkg/core"
)

// Cell values stored in a Grid.
const (
	Floor   uint8 = 0
	Wall    uint8 = 1
	Reached uint8 = 2
)

// Entry is a single cell yielded by Grid.Entries.
type Entry struct {
	X, Y  int
	Value uint8
}

// Rect is an axis-aligned wall rectangle in grid coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Pacer observes every cell write made through Set. Presentation code uses it
// to replay generation at a visible speed; headless callers leave it nil.
type Pacer interface {
	Pace(x, y int, v uint8)
}

// Grid stores maze cells in row-major order together with the wall
// rectangles extracted from them. The outer ring of cells is never interior.
type Grid struct {
	W, H    int
	data    []uint8
	inverse bool
	walls   []Rect
	rng     *prng.Random
	pacer   Pacer
}

// NewGrid allocates a grid bound to rng. Non-positive dimensions produce an
// empty grid.
func NewGrid(w, h int, rng *prng.Random, inverse bool) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == 0 || h == 0 {
		w, h = 0, 0
	}
	if rng == nil {
		rng = prng.NewRandom(0)
	}
	g := &Grid{W: w, H: h, data: make([]uint8, w*h), inverse: inverse, rng: rng}
	fill := g.FillValue()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.Has(x, y) {
				g.data[g.Index(x, y)] = fill
			}
		}
	}
	return g
}

// SetPacer installs an observer for cell writes. Passing nil removes it.
func (g *Grid) SetPacer(p Pacer) { g.pacer = p }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.H }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Inverse reports whether the interior was filled with walls at construction.
func (g *Grid) Inverse() bool { return g.inverse }

// Random exposes the source bound to the grid.
func (g *Grid) Random() *prng.Random { return g.rng }

// FillValue is the value interior cells hold after construction.
func (g *Grid) FillValue() uint8 {
	if g.inverse {
		return Wall
	}
	return Floor
}

// CarveValue is the value strategies write into cells they mark: the opposite
// of the construction fill.
func (g *Grid) CarveValue() uint8 {
	if g.inverse {
		return Floor
	}
	return Wall
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Get reads a cell. Coordinates are not validated; gate with Has or an
// explicit bounds check.
func (g *Grid) Get(x, y int) uint8 { return g.data[y*g.W+x] }

// Set writes a cell without validation.
func (g *Grid) Set(x, y int, v uint8) {
	g.data[y*g.W+x] = v
	if g.pacer != nil {
		g.pacer.Pace(x, y, v)
	}
}

// Has reports whether (x, y) is an interior cell.
func (g *Grid) Has(x, y int) bool {
	return x > 0 && x < g.W-1 && y > 0 && y < g.H-1
}

// InBounds reports whether (x, y) addresses any cell, border included.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Entries yields every cell in row-major order, border included. The sequence
// reads live values and can be ranged over any number of times.
func (g *Grid) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i, v := range g.data {
			if !yield(Entry{X: i % g.W, Y: i / g.W, Value: v}) {
				return
			}
		}
	}
}

// Cells returns a snapshot of the cell array.
func (g *Grid) Cells() []uint8 {
	return append([]uint8(nil), g.data...)
}

// Walls returns a snapshot of the emitted wall rectangles.
func (g *Grid) Walls() []Rect {
	return append([]Rect(nil), g.walls...)
}

// Count returns how many cells hold v.
func (g *Grid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Run applies a generation strategy to the grid.
func (g *Grid) Run(s Strategy) error {
	return s.Apply(g)
}
