package tui

import (
	"sync"

	"github.com/redshiftbar/redshiftbar/internal/widget"
)

// defaultBarBackground is used when the widget has no background of its own.
const defaultBarBackground = "303030"

// bar adapts the terminal program to widget.Bar. The widget draws into it and
// View reads back the last drawn frame.
type bar struct {
	w       *widget.ToggleWidget
	program *programRef

	mu         sync.Mutex
	background string
	text       string
	style      widget.TextStyle
}

func newBar(w *widget.ToggleWidget, program *programRef) *bar {
	return &bar{
		w:          w,
		program:    program,
		background: defaultBarBackground,
	}
}

func (b *bar) Drawer() widget.Drawer {
	return b
}

func (b *bar) Background() string {
	return defaultBarBackground
}

// Draw renders the widget and asks the program to repaint.
func (b *bar) Draw() {
	b.w.Draw()
	b.program.Send(RedrawMsg{})
}

func (b *bar) Clear(background string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.background = background
	b.text = ""
}

func (b *bar) DrawText(text string, style widget.TextStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	b.style = style
}

type frame struct {
	background string
	text       string
	style      widget.TextStyle
}

func (b *bar) frame() frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return frame{background: b.background, text: b.text, style: b.style}
}
