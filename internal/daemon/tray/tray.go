// Package tray implements the system tray host for the redshift widget.
package tray

import (
	"context"
	"log"
	"sync"

	"github.com/getlantern/systray"

	"github.com/redshiftbar/redshiftbar/internal/daemon/tray/menu"
	"github.com/redshiftbar/redshiftbar/internal/widget"
)

// Host is a status bar backed by the system tray: the tray title shows the
// widget text and the Toggle menu item is the click target.
type Host struct {
	ctx     context.Context
	w       *widget.ToggleWidget
	onStart func()
	onExit  func()

	mu         sync.Mutex
	ready      bool
	toggleItem *systray.MenuItem
	statusItem *systray.MenuItem
	quitItem   *systray.MenuItem
}

// NewHost creates a tray host for w.
// onStartFn is called once the tray is ready (attach the widget here).
// onExitFn is called when the tray exits (cleanup here).
func NewHost(ctx context.Context, w *widget.ToggleWidget, onStartFn, onExitFn func()) *Host {
	return &Host{
		ctx:     ctx,
		w:       w,
		onStart: onStartFn,
		onExit:  onExitFn,
	}
}

// Run starts the system tray. This blocks the calling goroutine (must be main).
func (h *Host) Run() {
	systray.Run(h.onReady, h.onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

// Drawer implements widget.Bar.
func (h *Host) Drawer() widget.Drawer {
	return h
}

// Background implements widget.Bar. The tray has no background of its own.
func (h *Host) Background() string {
	return ""
}

// Draw implements widget.Bar.
func (h *Host) Draw() {
	h.w.Draw()
	h.updateMenu()
}

// Clear implements widget.Drawer.
func (h *Host) Clear(string) {}

// DrawText implements widget.Drawer.
func (h *Host) DrawText(text string, _ widget.TextStyle) {
	h.mu.Lock()
	ready := h.ready
	h.mu.Unlock()
	if !ready {
		return
	}
	systray.SetTitle(text)
}

func (h *Host) onReady() {
	systray.SetIcon(menu.Icon)
	systray.SetTooltip(menu.Tooltip("", false, false))

	header := systray.AddMenuItem("Redshift", "")
	header.Disable()

	h.mu.Lock()
	h.statusItem = systray.AddMenuItem("Starting...", "")
	h.statusItem.Disable()

	systray.AddSeparator()

	h.toggleItem = systray.AddMenuItem(menu.ToggleTitle(false), "Switch redshift on or off")
	h.quitItem = systray.AddMenuItem("Quit", "Quit redshiftbar")
	h.ready = true
	h.mu.Unlock()

	if h.onStart != nil {
		h.onStart()
	}

	h.Draw()

	go h.handleClicks()
}

func (h *Host) onQuit() {
	if h.onExit != nil {
		h.onExit()
	}
}

func (h *Host) handleClicks() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.toggleItem.ClickedCh:
			h.w.Click(h.ctx, widget.Button1)
		case <-h.quitItem.ClickedCh:
			log.Println("[tray] Quit requested")
			systray.Quit()
			return
		}
	}
}

func (h *Host) updateMenu() {
	// Widget state is read before taking h.mu; the widget holds its own lock
	// while calling DrawText.
	state := menu.StateOf(h.w)

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ready {
		return
	}

	h.toggleItem.SetTitle(state.Toggle)
	h.statusItem.SetTitle(state.Status)
	systray.SetTooltip(state.Tooltip)
}
