package widget

// Button identifies a mouse button using X11 numbering.
type Button int

// Mouse buttons as delivered by bar hosts.
const (
	Button1 Button = iota + 1 // left
	Button2                   // middle
	Button3                   // right
	Button4                   // wheel up
	Button5                   // wheel down
)

func (b Button) String() string {
	switch b {
	case Button1:
		return "Button1"
	case Button2:
		return "Button2"
	case Button3:
		return "Button3"
	case Button4:
		return "Button4"
	case Button5:
		return "Button5"
	default:
		return "Button?"
	}
}

// TextStyle describes how a widget wants its text drawn.
type TextStyle struct {
	Font       string
	FontSize   int
	Foreground string
	Padding    int
}

// Drawer is the drawing surface a host gives each widget.
type Drawer interface {
	Clear(background string)
	DrawText(text string, style TextStyle)
}

// Bar is the host status bar a widget is attached to.
type Bar interface {
	Drawer() Drawer
	Background() string
	// Draw redraws the whole bar, calling Draw on each widget.
	Draw()
}

// Default is one entry of a widget's configuration defaults table.
type Default struct {
	Name  string
	Value interface{}
	Doc   string
}
