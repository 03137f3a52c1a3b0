package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderWidget draws the widget segment with its own colors and padding.
func renderWidget(f frame) string {
	style := lipgloss.NewStyle().
		Background(hexColor(f.background)).
		Padding(0, f.style.Padding)
	if f.style.Foreground != "" {
		style = style.Foreground(hexColor(f.style.Foreground))
	}
	return style.Render(f.text)
}

func renderStatusBar(f frame, hints string, err error, width int) string {
	left := renderWidget(f)

	right := hints
	if err != nil {
		right = errorStyle.Render("settings: " + err.Error())
	}
	right += " "

	if width <= 0 {
		return left + " " + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	return ansi.Truncate(line, width, "…")
}

func keyHint(b key.Binding) string {
	h := b.Help()
	return keyStyle.Render(h.Key) + " " + hintStyle.Render(h.Desc)
}
