// Package headless implements a bar without a display for the daemon's
// foreground mode: every frame the widget draws is logged.
package headless

import (
	"log"
	"sync"

	"github.com/redshiftbar/redshiftbar/internal/widget"
)

// Host implements widget.Bar and widget.Drawer by logging text changes.
type Host struct {
	w *widget.ToggleWidget

	mu   sync.Mutex
	text string
}

// New creates a headless host for w.
func New(w *widget.ToggleWidget) *Host {
	return &Host{w: w}
}

// Drawer implements widget.Bar.
func (h *Host) Drawer() widget.Drawer {
	return h
}

// Background implements widget.Bar.
func (h *Host) Background() string {
	return ""
}

// Draw implements widget.Bar.
func (h *Host) Draw() {
	h.w.Draw()
}

// Clear implements widget.Drawer.
func (h *Host) Clear(string) {}

// DrawText implements widget.Drawer. Only changes are logged.
func (h *Host) DrawText(text string, _ widget.TextStyle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if text == h.text {
		return
	}
	h.text = text
	log.Printf("[bar] %s", text)
}

// Text returns the last drawn text.
func (h *Host) Text() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.text
}
