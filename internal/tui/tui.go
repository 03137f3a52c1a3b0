// Package tui implements a one-line terminal status bar hosting the redshift widget.
package tui

import (
	"context"
	"log"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redshiftbar/redshiftbar/internal/daemon/watcher"
	"github.com/redshiftbar/redshiftbar/internal/models"
	"github.com/redshiftbar/redshiftbar/internal/widget"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the terminal bar. When settingsPath is not empty the file is
// watched and changes are applied to the running widget.
func Run(ctx context.Context, settings *models.Settings, settingsPath string) error {
	ref := &programRef{}
	w := widget.New(settings, nil)
	b := newBar(w, ref)

	p := tea.NewProgram(
		NewModel(ctx, w, b),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	ref.Set(p)
	defer ref.Clear()

	if settingsPath != "" {
		sw, err := watcher.New(settingsPath)
		if err != nil {
			log.Printf("[bar] Settings reload disabled: %v", err)
		} else if err := sw.Start(); err != nil {
			log.Printf("[bar] Settings reload disabled: %v", err)
		} else {
			defer sw.Stop()
			go forwardReloads(ctx, sw, ref)
		}
	}

	_, err := p.Run()

	if shutdownErr := w.Shutdown(context.Background()); shutdownErr != nil {
		log.Printf("[bar] Failed to reset redshift on exit: %v", shutdownErr)
	}
	return err
}

func forwardReloads(ctx context.Context, sw *watcher.Watcher, ref *programRef) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sw.Events():
			if !ok {
				return
			}
			ref.Send(SettingsReloadedMsg{Settings: ev.Settings, Err: ev.Err})
		}
	}
}
