package noise

import (
	"fmt"
	"strconv"
	"strings"

	"mad-maze/internal/core"
)

// Variant selects the rule that turns a noise sample into open or closed.
type Variant string

const (
	Normal       Variant = "normal"
	Clamped      Variant = "clamped"
	Quantized    Variant = "quantized"
	DomainWarped Variant = "domainWarped"
	MultiScale   Variant = "multiScale"
	Dynamic      Variant = "dynamic"
	Marble       Variant = "marble"
)

// Variants lists every supported variant in presentation order.
func Variants() []Variant {
	return []Variant{Normal, Clamped, Quantized, DomainWarped, MultiScale, Dynamic, Marble}
}

// ParseVariant matches s case-insensitively against the known variants.
func ParseVariant(s string) (Variant, error) {
	s = strings.TrimSpace(s)
	for _, v := range Variants() {
		if strings.EqualFold(string(v), s) {
			return v, nil
		}
	}
	return Variant(s), fmt.Errorf("%w %q", ErrUnknownVariant, s)
}

// Config controls the noise strategy.
type Config struct {
	Variant    Variant
	Zoom       float64
	Threshold  float64
	Min        float64
	Max        float64
	Iterations int
	Time       float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Variant:    Normal,
		Zoom:       1,
		Threshold:  0.1,
		Min:        -0.085,
		Max:        0.085,
		Iterations: 1,
		Time:       0,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed numbers keep their defaults; an unknown variant is an error.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["variant"]; ok {
		variant, err := ParseVariant(v)
		if err != nil {
			return c, err
		}
		c.Variant = variant
	}
	if v, ok := cfg["zoom"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Zoom = parsed
		}
	}
	for key, dst := range map[string]*float64{
		"threshold": &c.Threshold,
		"min":       &c.Min,
		"max":       &c.Max,
		"time":      &c.Time,
	} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Iterations = parsed
		}
	}
	return c, nil
}

// uses records which tunables each variant reads besides zoom and iterations.
var uses = map[Variant][]string{
	Normal:       nil,
	Clamped:      {"min", "max"},
	Quantized:    {"threshold"},
	DomainWarped: nil,
	MultiScale:   nil,
	Dynamic:      {"threshold", "time"},
	Marble:       nil,
}

// Advisory reports a parameter that was changed from its default but has no
// effect on the selected variant.
type Advisory struct {
	Key     string
	Variant Variant
}

func (a Advisory) String() string {
	return fmt.Sprintf("noise: %s is ignored by the %s variant", a.Key, a.Variant)
}

// Advisories compares c against the defaults and lists the changed keys the
// variant never reads. Keys are reported in a fixed order.
func (c Config) Advisories() []Advisory {
	used, ok := uses[c.Variant]
	if !ok {
		return nil
	}
	d := DefaultConfig()
	changed := []struct {
		key  string
		diff bool
	}{
		{"threshold", c.Threshold != d.Threshold},
		{"min", c.Min != d.Min},
		{"max", c.Max != d.Max},
		{"time", c.Time != d.Time},
	}
	var out []Advisory
	for _, ch := range changed {
		if !ch.diff || contains(used, ch.key) {
			continue
		}
		out = append(out, Advisory{Key: ch.key, Variant: c.Variant})
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Parameters describes the configuration for the HUD and CLI.
func (g *Generator) Parameters() core.ParameterSnapshot {
	c := g.cfg
	params := []core.Parameter{
		core.StringParam("variant", "Variant", string(c.Variant)),
		core.FloatParam("zoom", "Zoom", c.Zoom),
		core.IntParam("iterations", "Iterations", c.Iterations),
	}
	for _, key := range uses[c.Variant] {
		switch key {
		case "threshold":
			params = append(params, core.FloatParam("threshold", "Threshold", c.Threshold))
		case "min":
			params = append(params, core.FloatParam("min", "Min", c.Min))
		case "max":
			params = append(params, core.FloatParam("max", "Max", c.Max))
		case "time":
			params = append(params, core.FloatParam("time", "Time", c.Time))
		}
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "Noise", Params: params}}}
}
