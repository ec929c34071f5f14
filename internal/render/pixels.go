package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"mad-maze/internal/core"
)

// Palette maps cell values to colours. Values past the end use the last entry.
type Palette []color.RGBA

// DefaultPalette colours floor, wall and reached cells.
func DefaultPalette() Palette {
	return Palette{
		core.Floor:   {R: 18, G: 18, B: 24, A: 255},
		core.Wall:    {R: 214, G: 210, B: 196, A: 255},
		core.Reached: {R: 90, G: 160, B: 220, A: 255},
	}
}

// FillRGBA converts cell values into RGBA pixels in buf, which must hold at
// least 4*len(cells) bytes. An empty palette clears the buffer to transparent
// black.
func FillRGBA(buf []byte, cells []uint8, palette Palette) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Glyph returns the character used for a cell value in text output.
func Glyph(v uint8) byte {
	switch v {
	case core.Floor:
		return '.'
	case core.Wall:
		return '#'
	default:
		return 'o'
	}
}

// ASCII writes cells as w-wide rows of glyphs.
func ASCII(out io.Writer, w int, cells []uint8) error {
	if w <= 0 {
		return nil
	}
	bw := bufio.NewWriter(out)
	for i, c := range cells {
		bw.WriteByte(Glyph(c))
		if (i+1)%w == 0 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// WallList writes one wall per line as "x y width height".
func WallList(out io.Writer, walls []core.Rect) error {
	bw := bufio.NewWriter(out)
	for _, r := range walls {
		fmt.Fprintf(bw, "%d %d %d %d\n", r.X, r.Y, r.Width, r.Height)
	}
	return bw.Flush()
}

// ScaleRect converts a wall in cell units into screen pixels.
func ScaleRect(r core.Rect, scale int) (x, y, w, h float32) {
	s := float32(scale)
	return float32(r.X) * s, float32(r.Y) * s, float32(r.Width) * s, float32(r.Height) * s
}
