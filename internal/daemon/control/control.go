// Package control routes process signals and settings reloads to the
// daemon's widget.
package control

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redshiftbar/redshiftbar/internal/daemon/watcher"
	"github.com/redshiftbar/redshiftbar/internal/widget"
)

// ToggleSignal clicks the widget; `redshiftbar toggle` sends it.
const ToggleSignal = syscall.SIGUSR1

// Signals are the signals the daemon handles.
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, ToggleSignal}

// Notify starts relaying Signals and returns the channel and a stop function.
// It must run before the daemon info file is written: the default action of
// SIGUSR1 terminates the process.
func Notify() (<-chan os.Signal, func()) {
	sigCh := make(chan os.Signal, 4)
	signal.Notify(sigCh, Signals...)
	return sigCh, func() { signal.Stop(sigCh) }
}

// HandleSignals clicks Button1 on w for every ToggleSignal. It returns the
// first other signal, or nil once ctx is done or sigCh is closed.
func HandleSignals(ctx context.Context, sigCh <-chan os.Signal, w *widget.ToggleWidget) os.Signal {
	for {
		select {
		case <-ctx.Done():
			return nil
		case sig, ok := <-sigCh:
			if !ok {
				return nil
			}
			if sig == ToggleSignal {
				w.Click(ctx, widget.Button1)
				continue
			}
			return sig
		}
	}
}

// ForwardReloads applies each valid settings reload to w until ctx is done
// or events is closed. Invalid reloads leave the running settings alone.
func ForwardReloads(ctx context.Context, events <-chan watcher.Event, w *widget.ToggleWidget) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Err != nil || ev.Settings == nil {
				continue
			}
			log.Printf("[daemon] Applying settings from %s", ev.Path)
			w.Apply(ev.Settings)
		}
	}
}
