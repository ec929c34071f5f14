//go:build ebiten

package ui

import (
	"image/color"

	"mad-maze/internal/core"
	"mad-maze/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the extracted wall rectangles on top of the cell raster.
type Overlay struct {
	walls     []core.Rect
	scale     int
	showWalls bool
	fillWalls bool
}

// NewOverlay constructs an overlay for the given pixel scale.
func NewOverlay(scale int) *Overlay {
	return &Overlay{scale: scale, showWalls: true}
}

// SetWalls replaces the rectangles drawn.
func (o *Overlay) SetWalls(walls []core.Rect) { o.walls = walls }

// Update toggles wall outlines (W) and tinted wall fills (F).
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		o.showWalls = !o.showWalls
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.fillWalls = !o.fillWalls
	}
}

// Draw paints the overlay. Walls are tinted along a gradient in emission
// order so extraction order stays visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showWalls || len(o.walls) == 0 {
		return
	}
	n := len(o.walls)
	for i, r := range o.walls {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		col := interpolateColor(t)
		if o.fillWalls {
			fill := col
			fill.A = 96
			render.FillWall(screen, r, o.scale, fill)
		}
		render.StrokeWall(screen, r, o.scale, 1, col)
	}
}

func interpolateColor(t float64) color.RGBA {
	start := color.RGBA{R: 240, G: 200, B: 80, A: 255}
	end := color.RGBA{R: 220, G: 70, B: 90, A: 255}
	return lerpRGBA(start, end, clamp01(t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
