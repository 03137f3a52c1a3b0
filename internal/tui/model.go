package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/redshiftbar/redshiftbar/internal/widget"
)

// Model is the Bubbletea model of the terminal bar.
type Model struct {
	ctx context.Context
	w   *widget.ToggleWidget
	bar *bar

	width      int
	configured bool
	busy       bool // a click is running its redshift command
	err        error
}

// NewModel creates the bar model around an unattached widget.
func NewModel(ctx context.Context, w *widget.ToggleWidget, b *bar) Model {
	return Model{
		ctx: ctx,
		w:   w,
		bar: b,
	}
}

// Init attaches the widget, which resets redshift.
func (m Model) Init() tea.Cmd {
	return configureCmd(m.ctx, m.w, m.bar)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, barKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, barKeys.Toggle):
			return m.click(widget.Button1)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Y != 0 || msg.X >= m.widgetWidth() {
			return m, nil
		}
		if button, ok := mouseButton(msg.Button); ok {
			return m.click(button)
		}
		return m, nil

	case ConfiguredMsg:
		m.configured = true
		return m, nil

	case ClickedMsg:
		m.busy = false
		return m, nil

	case RedrawMsg:
		return m, nil

	case SettingsReloadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		return m, applyCmd(m.w, msg)
	}

	return m, nil
}

// View renders the bar line.
func (m Model) View() string {
	return renderStatusBar(m.bar.frame(), m.hints(), m.err, m.width)
}

// click starts a widget click unless one is already running.
// Overlapping clicks are dropped, not queued.
func (m Model) click(button widget.Button) (tea.Model, tea.Cmd) {
	if !m.configured || m.busy {
		return m, nil
	}
	m.busy = true
	return m, clickCmd(m.ctx, m.w, button)
}

func (m Model) hints() string {
	if m.busy {
		return hintStyle.Render("running redshift...")
	}
	return keyHint(barKeys.Toggle) + "  " + keyHint(barKeys.Quit)
}

func (m Model) widgetWidth() int {
	return lipgloss.Width(renderWidget(m.bar.frame()))
}

// mouseButton maps terminal mouse buttons to X11 button numbers.
func mouseButton(b tea.MouseButton) (widget.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return widget.Button1, true
	case tea.MouseButtonMiddle:
		return widget.Button2, true
	case tea.MouseButtonRight:
		return widget.Button3, true
	case tea.MouseButtonWheelUp:
		return widget.Button4, true
	case tea.MouseButtonWheelDown:
		return widget.Button5, true
	default:
		return 0, false
	}
}

func configureCmd(ctx context.Context, w *widget.ToggleWidget, b *bar) tea.Cmd {
	return func() tea.Msg {
		w.Configure(ctx, b)
		w.Draw()
		return ConfiguredMsg{}
	}
}

func clickCmd(ctx context.Context, w *widget.ToggleWidget, button widget.Button) tea.Cmd {
	return func() tea.Msg {
		handled := w.Click(ctx, button)
		return ClickedMsg{Button: button, Handled: handled}
	}
}

func applyCmd(w *widget.ToggleWidget, msg SettingsReloadedMsg) tea.Cmd {
	return func() tea.Msg {
		w.Apply(msg.Settings)
		return RedrawMsg{}
	}
}
