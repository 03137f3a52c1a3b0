// Package models contains the yaml records shared by the daemon, the CLI and the bar hosts.
package models

import (
	"fmt"
	"math"
	"regexp"
)

// Command variants for enabling redshift.
const (
	VariantExtended = "extended" // -P -O <temp> -b <brightness> -g <r>:<g>:<b>
	VariantSimple   = "simple"   // -O <temp>
)

// Accepted ranges, matching what redshift itself accepts.
const (
	MinTemperature = 1000
	MaxTemperature = 25000
	MinBrightness  = 0.1
	MaxBrightness  = 1.0
	MinGamma       = 0.1
	MaxGamma       = 10.0
)

var hexColorRe = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// GammaConfig holds per-channel gamma adjustments.
type GammaConfig struct {
	Red   float64 `yaml:"red"`
	Green float64 `yaml:"green"`
	Blue  float64 `yaml:"blue"`
}

// DisplayConfig holds how the widget text is drawn on the bar.
type DisplayConfig struct {
	Font       string `yaml:"font"`
	FontSize   int    `yaml:"font_size"`
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"` // empty = use bar background
	Padding    int    `yaml:"padding"`
}

// Settings represents the widget configuration.
// This corresponds to ~/.redshiftbar/settings.yaml.
type Settings struct {
	Version      int           `yaml:"version"`
	Command      string        `yaml:"command"`
	Variant      string        `yaml:"variant"` // "extended" | "simple"
	Method       string        `yaml:"method,omitempty"`
	Temperature  int           `yaml:"temperature"`
	Brightness   float64       `yaml:"brightness"`
	Gamma        GammaConfig   `yaml:"gamma"`
	EnabledText  string        `yaml:"enabled_text"`
	DisabledText string        `yaml:"disabled_text"`
	Display      DisplayConfig `yaml:"display"`
	ResetOnExit  bool          `yaml:"reset_on_exit"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:     1,
		Command:     "redshift",
		Variant:     VariantExtended,
		Temperature: 1700,
		Brightness:  1.0,
		Gamma: GammaConfig{
			Red:   1.0,
			Green: 1.0,
			Blue:  1.0,
		},
		EnabledText:  "Redshift on",
		DisabledText: "Redshift off",
		Display: DisplayConfig{
			Font:       "sans",
			FontSize:   50,
			Foreground: "ffffff",
			Background: "",
			Padding:    3,
		},
		ResetOnExit: true,
	}
}

// Validate checks that the settings can be turned into a valid redshift invocation.
func (s *Settings) Validate() error {
	if s.Command == "" {
		return fmt.Errorf("command must not be empty")
	}
	if s.Variant != VariantExtended && s.Variant != VariantSimple {
		return fmt.Errorf("invalid variant %q (expected %q or %q)", s.Variant, VariantExtended, VariantSimple)
	}
	if s.Temperature < MinTemperature || s.Temperature > MaxTemperature {
		return fmt.Errorf("temperature %d out of range [%d, %d]", s.Temperature, MinTemperature, MaxTemperature)
	}
	if math.IsNaN(s.Brightness) || s.Brightness < MinBrightness || s.Brightness > MaxBrightness {
		return fmt.Errorf("brightness %g out of range [%g, %g]", s.Brightness, MinBrightness, MaxBrightness)
	}
	for _, ch := range []struct {
		name string
		v    float64
	}{{"red", s.Gamma.Red}, {"green", s.Gamma.Green}, {"blue", s.Gamma.Blue}} {
		if math.IsNaN(ch.v) || ch.v < MinGamma || ch.v > MaxGamma {
			return fmt.Errorf("gamma %s %g out of range [%g, %g]", ch.name, ch.v, MinGamma, MaxGamma)
		}
	}
	if !IsValidHexColor(s.Display.Foreground) {
		return fmt.Errorf("invalid foreground color: %s", s.Display.Foreground)
	}
	if s.Display.Background != "" && !IsValidHexColor(s.Display.Background) {
		return fmt.Errorf("invalid background color: %s", s.Display.Background)
	}
	if s.Display.FontSize <= 0 {
		return fmt.Errorf("font size must be positive")
	}
	if s.Display.Padding < 0 {
		return fmt.Errorf("padding %d must not be negative", s.Display.Padding)
	}
	return nil
}

// IsValidHexColor reports whether color is RGB or RRGGBB hex, with or without a leading '#'.
func IsValidHexColor(color string) bool {
	return hexColorRe.MatchString(color)
}
