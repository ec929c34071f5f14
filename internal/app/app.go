//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"mad-maze/internal/core"
	"mad-maze/internal/pipeline"
	"mad-maze/internal/render"
	"mad-maze/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game replays a maze generation cell by cell and then shows its walls.
type Game struct {
	opts    pipeline.Options
	result  *pipeline.Result
	replay  *core.Replay
	cells   []uint8
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale  int
	wps    int
	paused bool
}

// New generates the first maze described by cfg.
func New(cfg *Config) (*Game, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		opts:    opts,
		painter: render.NewGridPainter(opts.Width, opts.Height, render.DefaultPalette()),
		hud:     ui.NewHUD(opts.Strategy, cfg.HUDWidth),
		overlay: ui.NewOverlay(scale),
		scale:   scale,
		wps:     cfg.WPS,
	}
	if err := g.Regenerate(opts.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Regenerate runs the pipeline for seed and restarts the replay.
func (g *Game) Regenerate(seed string) error {
	rec := &core.Recorder{}
	opts := g.opts
	opts.Seed = seed
	opts.Pacer = rec
	res, err := pipeline.Generate(opts)
	if err != nil {
		return err
	}
	g.opts.Seed = seed
	g.result = res
	g.cells = core.NewGrid(opts.Width, opts.Height, nil, opts.Inverse).Cells()
	g.replay = core.NewReplay(opts.Width, rec.Writes(), g.wps)
	g.overlay.SetWalls(nil)
	g.hud.SetSnapshot(res.Params)
	g.refreshStatus()
	return nil
}

func (g *Game) refreshStatus() {
	r := g.result
	g.hud.SetStatus(
		fmt.Sprintf("Seed %d", r.Seed),
		fmt.Sprintf("Walls %d  Regions %d", len(r.Walls), r.Regions),
		"R next  S random  Space pause",
		"Enter finish  W/F walls  H panel",
	)
}

// Update handles per-frame logic and advances the replay.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.replay.Finish(g.cells)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Regenerate(strconv.FormatInt(g.result.Seed+1, 10)); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Regenerate(strconv.FormatInt(time.Now().UnixNano(), 10)); err != nil {
			return err
		}
	}

	g.overlay.Update()

	if !g.paused && !g.replay.Done() {
		g.replay.Tick(g.cells)
	}
	if g.replay.Done() {
		g.overlay.SetWalls(g.result.Walls)
	}
	return nil
}

// Draw renders the cells, the wall overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cells, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.opts.Width*g.scale, g.opts.Height*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width*g.scale + g.hud.Width(), g.opts.Height*g.scale
}

// Run opens the viewer window and blocks until it is closed.
func Run(cfg *Config) error {
	game, err := New(cfg)
	if err != nil {
		return err
	}
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(WindowTitle(cfg.Strategy))
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
