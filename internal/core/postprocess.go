package core

import "github.com/zyedidia/generic/mapset"

// pocketFillLimit caps how many cells the connectivity flood fill dequeues.
const pocketFillLimit = 5000

// FindPockets seals every floor region that is not 4-connected to the origin
// by turning it into wall. Cells reached by the fill stay floor.
func (g *Grid) FindPockets() *Grid {
	if len(g.data) == 0 || g.Get(0, 0) != Floor {
		return g
	}

	// Reached doubles as the visited mark: a cell is queued only while it
	// still holds Floor.
	queue := []int{0}
	g.Set(0, 0, Reached)

	for i := 0; i < pocketFillLimit && len(queue) > 0; i++ {
		idx := queue[0]
		queue = queue[1:]
		x, y := idx%g.W, idx/g.W
		for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
			nx, ny := n[0], n[1]
			if !g.InBounds(nx, ny) || g.Get(nx, ny) != Floor {
				continue
			}
			queue = append(queue, g.Index(nx, ny))
			g.Set(nx, ny, Reached)
		}
	}

	for i, v := range g.data {
		if v == Floor {
			g.Set(i%g.W, i/g.W, Wall)
		}
	}
	for i, v := range g.data {
		if v == Reached {
			g.Set(i%g.W, i/g.W, Floor)
		}
	}
	return g
}

// Regions counts the 4-connected floor regions of the grid.
func (g *Grid) Regions() int {
	visited := mapset.New[int]()
	regions := 0
	for start, v := range g.data {
		if v != Floor || visited.Has(start) {
			continue
		}
		regions++
		visited.Put(start)
		queue := []int{start}
		for len(queue) > 0 {
			idx := queue[0]
			queue = queue[1:]
			x, y := idx%g.W, idx/g.W
			for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				if !g.InBounds(n[0], n[1]) {
					continue
				}
				ni := g.Index(n[0], n[1])
				if g.data[ni] != Floor || visited.Has(ni) {
					continue
				}
				visited.Put(ni)
				queue = append(queue, ni)
			}
		}
	}
	return regions
}

// CombineWalls repeatedly extracts the largest all-wall square, earliest in
// row-major order on ties, until no wall cells remain.
func (g *Grid) CombineWalls() *Grid {
	size := make([]int, len(g.data))
	for {
		for y := g.H - 1; y >= 0; y-- {
			for x := g.W - 1; x >= 0; x-- {
				i := g.Index(x, y)
				if g.data[i] != Wall {
					size[i] = 0
					continue
				}
				s := 1
				if x+1 < g.W && y+1 < g.H {
					s = 1 + min(size[i+1], size[i+g.W], size[i+g.W+1])
				}
				size[i] = s
			}
		}

		best, bestSize := -1, 0
		for i, s := range size {
			if s > bestSize {
				best, bestSize = i, s
			}
		}
		if bestSize == 0 {
			return g
		}

		bx, by := best%g.W, best/g.W
		for y := 0; y < bestSize; y++ {
			for x := 0; x < bestSize; x++ {
				g.Set(bx+x, by+y, Floor)
			}
		}
		g.walls = append(g.walls, Rect{X: bx, Y: by, Width: bestSize, Height: bestSize})
	}
}

type mergeOptions struct {
	intermediate bool
}

// MergeOption adjusts MergeWalls.
type MergeOption func(*mergeOptions)

// WithIntermediateWalls makes MergeWalls emit every partially grown rectangle
// as well as the final one, matching output recorded by earlier releases.
func WithIntermediateWalls() MergeOption {
	return func(o *mergeOptions) { o.intermediate = true }
}

// MergeWalls scans row-major and grows each wall cell into a rectangle,
// first along its row and then downwards while the full width stays wall.
func (g *Grid) MergeWalls(opts ...MergeOption) *Grid {
	var o mergeOptions
	for _, opt := range opts {
		opt(&o)
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Get(x, y) != Wall {
				continue
			}
			chunk := Rect{X: x, Y: y, Width: 0, Height: 1}
			for x+chunk.Width < g.W && g.Get(x+chunk.Width, y) == Wall {
				g.Set(x+chunk.Width, y, Floor)
				chunk.Width++
				if o.intermediate {
					g.walls = append(g.walls, chunk)
				}
			}
		grow:
			for y+chunk.Height < g.H {
				for i := 0; i < chunk.Width; i++ {
					if g.Get(x+i, y+chunk.Height) != Wall {
						break grow
					}
				}
				for i := 0; i < chunk.Width; i++ {
					g.Set(x+i, y+chunk.Height, Floor)
				}
				chunk.Height++
				if o.intermediate {
					g.walls = append(g.walls, chunk)
				}
			}
			g.walls = append(g.walls, chunk)
		}
	}
	return g
}
