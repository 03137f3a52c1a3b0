// Package redshift builds and runs invocations of the redshift color-temperature tool.
package redshift

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/redshiftbar/redshiftbar/internal/models"
)

// DefaultBinary is the tool looked up on PATH when no command is configured.
const DefaultBinary = "redshift"

// Params are the values an enable invocation is built from.
type Params struct {
	Variant     string
	Method      string
	Temperature int
	Brightness  float64
	GammaRed    float64
	GammaGreen  float64
	GammaBlue   float64
}

// ParamsFromSettings extracts invocation parameters from widget settings.
func ParamsFromSettings(s *models.Settings) Params {
	return Params{
		Variant:     s.Variant,
		Method:      s.Method,
		Temperature: s.Temperature,
		Brightness:  s.Brightness,
		GammaRed:    s.Gamma.Red,
		GammaGreen:  s.Gamma.Green,
		GammaBlue:   s.Gamma.Blue,
	}
}

// ResetArgs returns the arguments that clear any color adjustment.
func ResetArgs(method string) []string {
	return append(methodArgs(method), "-x")
}

// EnableArgs returns the arguments that apply p in one-shot mode.
func EnableArgs(p Params) []string {
	args := methodArgs(p.Method)
	if p.Variant == models.VariantSimple {
		return append(args, "-O", strconv.Itoa(p.Temperature))
	}
	return append(args,
		"-P",
		"-O", strconv.Itoa(p.Temperature),
		"-b", formatFloat(p.Brightness),
		"-g", GammaArg(p.GammaRed, p.GammaGreen, p.GammaBlue),
	)
}

// GammaArg formats per-channel gamma as redshift's R:G:B argument.
func GammaArg(r, g, b float64) string {
	return formatFloat(r) + ":" + formatFloat(g) + ":" + formatFloat(b)
}

func methodArgs(method string) []string {
	if method == "" {
		return []string{}
	}
	return []string{"-m", method}
}

// formatFloat renders whole numbers with a trailing ".0" so 1 is passed as "1.0".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Describe renders a command line for log messages.
func Describe(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return fmt.Sprintf("%s %s", name, strings.Join(args, " "))
}
