//go:build ebiten

package render

import (
	"image/color"

	"mad-maze/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image from cell data.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	gp.img = ebiten.NewImage(max(w, 1), max(h, 1))
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h || len(cells) == 0 {
		return
	}
	FillRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// StrokeWall outlines a wall rectangle.
func StrokeWall(dst *ebiten.Image, r core.Rect, scale int, width float32, clr color.Color) {
	x, y, w, h := ScaleRect(r, scale)
	vector.StrokeRect(dst, x, y, w, h, width, clr, false)
}

// FillWall paints a wall rectangle.
func FillWall(dst *ebiten.Image, r core.Rect, scale int, clr color.Color) {
	x, y, w, h := ScaleRect(r, scale)
	vector.DrawFilledRect(dst, x, y, w, h, clr, false)
}
