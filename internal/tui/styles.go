package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorRed   = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
)

// Key hint styles for the right side of the bar.
var (
	keyStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle  = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// hexColor turns a settings color ("fff", "#ffffff") into a lipgloss color.
func hexColor(c string) lipgloss.Color {
	c = strings.TrimPrefix(c, "#")
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	return lipgloss.Color("#" + c)
}
