//go:build !ebiten

package app

import "errors"

// ErrNoGUI is returned by the viewer entry points in builds without ebiten.
var ErrNoGUI = errors.New("the maze viewer requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the GUI build tag is missing.
func New(*Config) (*Game, error) { return nil, ErrNoGUI }

// Regenerate is a no-op placeholder.
func (g *Game) Regenerate(string) error { return ErrNoGUI }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// Run reports that the GUI build tag is missing.
func Run(*Config) error { return ErrNoGUI }
