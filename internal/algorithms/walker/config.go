package walker

import (
	"fmt"
	"strconv"
	"strings"

	"mad-maze/internal/core"
	prng "mad-maze/pkg/core"
)

// Config controls the random walker strategy.
type Config struct {
	SeedAmount int
	Rules
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		SeedAmount: 4,
		Rules: Rules{
			Chances: Chances{Straight: 0.8, Turn: 0.15, Branch: 0.05},
			Instructions: Instructions{
				StartDirections: append([]core.Direction(nil), core.MovementCardinal...),
			},
			Limits: Limits{MaxLength: Unlimited, MaxTurns: Unlimited, MaxBranches: 8},
		},
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["seeds"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SeedAmount = parsed
		}
	}
	for key, dst := range map[string]*float64{
		"straight": &c.Chances.Straight,
		"turn":     &c.Chances.Turn,
		"branch":   &c.Chances.Branch,
	} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				*dst = parsed
			}
		}
	}
	for key, dst := range map[string]*int{
		"max_length":   &c.Limits.MaxLength,
		"max_turns":    &c.Limits.MaxTurns,
		"max_branches": &c.Limits.MaxBranches,
	} {
		if v, ok := cfg[key]; ok {
			if v == "unlimited" {
				*dst = Unlimited
				continue
			}
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Settings.BorderWrapping = parsed
		}
	}
	if v, ok := cfg["contact"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Settings.TerminateOnContact = parsed
		}
	}
	if v, ok := cfg["start"]; ok {
		dirs, err := ParseDirections(v)
		if err != nil {
			return c, fmt.Errorf("start: %w", err)
		}
		c.Instructions.StartDirections = dirs
	}
	if v, ok := cfg["branch_dirs"]; ok {
		dirs, err := ParseDirections(v)
		if err != nil {
			return c, fmt.Errorf("branch_dirs: %w", err)
		}
		c.Instructions.BranchDirections = dirs
	}
	return c, nil
}

// ParseDirections accepts a named set ("all", "horizontal", ...) or a comma
// separated list of direction names.
func ParseDirections(s string) ([]core.Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if set, ok := core.LookupDirectionSet(s); ok {
		return set, nil
	}
	var dirs []core.Direction
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, ok := core.LookupDirection(part)
		if !ok || d == core.None {
			return nil, fmt.Errorf("%w: unknown direction %q", prng.ErrInvalidArgument, part)
		}
		dirs = append(dirs, d)
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w: no directions in %q", prng.ErrInvalidArgument, s)
	}
	return dirs, nil
}

func formatDirections(dirs []core.Direction) string {
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}

func formatLimit(v int) string {
	if v >= Unlimited {
		return "unlimited"
	}
	return strconv.Itoa(v)
}

// Parameters describes the configuration for the HUD and CLI.
func (s *RandomWalker) Parameters() core.ParameterSnapshot {
	c := s.cfg
	limit := func(key, label string, v int) core.Parameter {
		return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: formatLimit(v)}
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.IntParam("seeds", "Seed amount", c.SeedAmount),
				core.StringParam("start", "Start directions", formatDirections(c.Instructions.StartDirections)),
				core.StringParam("branch_dirs", "Branch directions", formatDirections(c.Instructions.BranchDirections)),
			},
		},
		{
			Name: "Chances",
			Params: []core.Parameter{
				core.FloatParam("straight", "Straight", c.Chances.Straight),
				core.FloatParam("turn", "Turn", c.Chances.Turn),
				core.FloatParam("branch", "Branch", c.Chances.Branch),
			},
		},
		{
			Name: "Limits",
			Params: []core.Parameter{
				limit("max_length", "Max length", c.Limits.MaxLength),
				limit("max_turns", "Max turns", c.Limits.MaxTurns),
				limit("max_branches", "Max branches", c.Limits.MaxBranches),
			},
		},
		{
			Name: "Settings",
			Params: []core.Parameter{
				core.BoolParam("wrap", "Border wrapping", c.Settings.BorderWrapping),
				core.BoolParam("contact", "Terminate on contact", c.Settings.TerminateOnContact),
			},
		},
	}}
}
