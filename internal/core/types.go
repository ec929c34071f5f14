package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownStrategy is returned when no factory is registered under a name.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Size describes the dimensions of a maze grid.
type Size struct {
	W int
	H int
}

// Strategy fills the interior of a grid. Implementations draw randomness only
// from the grid's own source so that a seed fully determines the result.
type Strategy interface {
	Name() string
	Apply(g *Grid) error
}

// Factory constructs a Strategy using an optional configuration map.
type Factory func(cfg map[string]string) (Strategy, error)

var strategies = map[string]Factory{}

// RegisterStrategy adds a strategy factory under the provided name.
func RegisterStrategy(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	strategies[name] = f
}

// Strategies exposes the registry of available strategy factories.
func Strategies() map[string]Factory {
	return strategies
}

// StrategyNames lists registered strategy names in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewStrategy looks up name in the registry and builds it from cfg.
func NewStrategy(name string, cfg map[string]string) (Strategy, error) {
	f, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
	}
	return f(cfg)
}
