package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"mad-maze/internal/pipeline"

	"github.com/joho/godotenv"
)

// ParamList collects repeatable key=value strategy parameters.
type ParamList []string

func (l *ParamList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *ParamList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("parameter %q is not in key=value form", value)
	}
	*l = append(*l, value)
	return nil
}

// Map turns the list into a parameter map. Later keys win.
func (l ParamList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Config represents the command-line parameters shared by the maze commands.
type Config struct {
	Width    int
	Height   int
	Seed     string
	Strategy string
	Inverse  bool
	Repair   bool
	Walls    string
	Params   ParamList

	Scale    int
	WPS      int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := pipeline.DefaultOptions()
	return &Config{
		Width:    d.Width,
		Height:   d.Height,
		Seed:     d.Seed,
		Strategy: d.Strategy,
		Repair:   d.Repair,
		Walls:    string(d.Walls),
		Scale:    12,
		WPS:      600,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells, border included")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells, border included")
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed; digits are used as-is, other text is hashed")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "generation strategy")
	fs.BoolVar(&c.Inverse, "inverse", c.Inverse, "fill the interior with walls and carve floor")
	fs.BoolVar(&c.Repair, "repair", c.Repair, "seal floor pockets not connected to the border")
	fs.StringVar(&c.Walls, "walls", c.Walls, "wall extraction: none, combine, merge or merge-verbose")
	fs.Var(&c.Params, "set", "strategy parameter in key=value form (repeatable)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.WPS, "wps", c.WPS, "cell writes replayed per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels, 0 hides it")
}

// Options converts the configuration into a pipeline run.
func (c *Config) Options() (pipeline.Options, error) {
	mode, err := pipeline.ParseWallMode(c.Walls)
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Width:    c.Width,
		Height:   c.Height,
		Seed:     c.Seed,
		Inverse:  c.Inverse,
		Strategy: c.Strategy,
		Params:   c.Params.Map(),
		Repair:   c.Repair,
		Walls:    mode,
	}, nil
}

// LoadEnv reads optional .env files and applies MAZE_* variables on top of
// the current values. Flags parsed afterwards still take precedence. A
// missing file is not an error.
func (c *Config) LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}
	if v, ok := lookup("MAZE_SEED"); ok {
		c.Seed = v
	}
	if v, ok := lookup("MAZE_STRATEGY"); ok {
		c.Strategy = v
	}
	if v, ok := lookup("MAZE_WALLS"); ok {
		c.Walls = v
	}
	for key, dst := range map[string]*int{
		"MAZE_WIDTH":  &c.Width,
		"MAZE_HEIGHT": &c.Height,
		"MAZE_SCALE":  &c.Scale,
		"MAZE_WPS":    &c.WPS,
	} {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("environment variable %s must be an integer: %w", key, err)
		}
		*dst = parsed
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}
