// Package termview shows a generated maze in the terminal.
package termview

import (
	"fmt"
	"strconv"

	"mad-maze/internal/core"
	"mad-maze/internal/pipeline"

	"github.com/gdamore/tcell/v2"
)

var (
	wallStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	reachedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Draw paints cells, w wide, two columns per cell, with status on the row
// below. It does not call Show.
func Draw(s tcell.Screen, w int, cells []uint8, status string) {
	s.Clear()
	if w <= 0 {
		return
	}
	h := len(cells) / w
	for i, c := range cells {
		x, y := (i%w)*2, i/w
		switch c {
		case core.Floor:
			continue
		case core.Wall:
			s.SetContent(x, y, '█', nil, wallStyle)
			s.SetContent(x+1, y, '█', nil, wallStyle)
		default:
			s.SetContent(x, y, '░', nil, reachedStyle)
			s.SetContent(x+1, y, '░', nil, reachedStyle)
		}
	}
	for i, r := range []rune(status) {
		s.SetContent(i, h, r, nil, statusStyle)
	}
}

// Viewer owns a screen and the current generation.
type Viewer struct {
	screen tcell.Screen
	opts   pipeline.Options
	result *pipeline.Result
}

// New generates the first maze for opts. The screen must already be
// initialised.
func New(screen tcell.Screen, opts pipeline.Options) (*Viewer, error) {
	v := &Viewer{screen: screen, opts: opts}
	if err := v.Regenerate(opts.Seed); err != nil {
		return nil, err
	}
	return v, nil
}

// Result returns the generation currently shown.
func (v *Viewer) Result() *pipeline.Result { return v.result }

// Regenerate runs the pipeline for seed and redraws.
func (v *Viewer) Regenerate(seed string) error {
	opts := v.opts
	opts.Seed = seed
	res, err := pipeline.Generate(opts)
	if err != nil {
		return err
	}
	v.opts.Seed = seed
	v.result = res
	v.draw()
	return nil
}

func (v *Viewer) status() string {
	r := v.result
	return fmt.Sprintf("%s seed=%d walls=%d regions=%d  [r]next [q]quit",
		r.Strategy.Name(), r.Seed, len(r.Walls), r.Regions)
}

func (v *Viewer) draw() {
	Draw(v.screen, v.opts.Width, v.result.Cells, v.status())
	v.screen.Show()
}

// Run processes events until the user quits or the screen is finalised.
func (v *Viewer) Run() error {
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			switch ev.Rune() {
			case 'q':
				return nil
			case 'r':
				if err := v.Regenerate(strconv.FormatInt(v.result.Seed+1, 10)); err != nil {
					return err
				}
			}
		}
	}
}
