//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"mad-maze/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the maze view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int

	title    string
	snapshot core.ParameterSnapshot
	status   []string
	visible  bool
}

// NewHUD constructs a HUD for the named strategy and panel width.
func NewHUD(strategy string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, title: buildTitle(strategy), visible: true}
}

// Width returns the panel width, or zero while hidden.
func (h *HUD) Width() int {
	if h == nil || !h.visible {
		return 0
	}
	return h.width
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// SetSnapshot replaces the parameters shown.
func (h *HUD) SetSnapshot(s core.ParameterSnapshot) {
	if h != nil {
		h.snapshot = s
	}
}

// SetStatus replaces the free-form lines drawn under the parameters.
func (h *HUD) SetStatus(lines ...string) {
	if h != nil {
		h.status = lines
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || !h.visible || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(name string) string {
	if name == "" {
		return "Parameters"
	}
	return fmt.Sprintf("%s%s Parameters", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)
	y += groupSpacing

	if len(h.snapshot.Groups) == 0 {
		text.Draw(h.panel, "No parameters", face, panelPadding, y, dimColor)
		y += lineHeight
	}
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding+indent, y, labelColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
			y += lineHeight
		}
		y += groupSpacing - lineHeight
	}

	y += groupSpacing - lineHeight
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += lineHeight
	}
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor  = color.RGBA{R: 150, G: 190, B: 230, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	groupSpacing   = 24
	indent         = 8
	headerBaseline = 18
)
