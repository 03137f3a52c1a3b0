// Package main is the entry point for the redshiftbard daemon.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/redshiftbar/redshiftbar/internal/buildinfo"
	"github.com/redshiftbar/redshiftbar/internal/config"
	"github.com/redshiftbar/redshiftbar/internal/daemon/control"
	"github.com/redshiftbar/redshiftbar/internal/daemon/headless"
	"github.com/redshiftbar/redshiftbar/internal/daemon/tray"
	"github.com/redshiftbar/redshiftbar/internal/daemon/watcher"
	"github.com/redshiftbar/redshiftbar/internal/models"
	"github.com/redshiftbar/redshiftbar/internal/redshift"
	"github.com/redshiftbar/redshiftbar/internal/widget"
)

func main() {
	foreground := flag.Bool("foreground", false, "Run without a system tray, toggling on SIGUSR1")
	version := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *version {
		fmt.Printf("redshiftbard %s (%s)\n", buildinfo.Version, buildinfo.Codename)
		fmt.Printf("  Commit   %s\n  Built    %s\n  OS/Arch  %s/%s\n  Go       %s\n",
			buildinfo.CommitHash, buildinfo.BuildDate, runtime.GOOS, runtime.GOARCH, runtime.Version())
		return
	}

	closer, err := config.SetupLogging("[redshiftbard] ", true)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()

	// Check if daemon is already running
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		log.Fatalf("Failed to check daemon status: %v", err)
	}
	if running {
		log.Fatalf("Daemon already running (PID %d)", info.PID)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if err := redshift.CheckDependencies(settings.Command); err != nil {
		log.Printf("Warning: %v", err)
	}

	w := widget.New(settings, nil)

	if *foreground {
		log.Println("Running in foreground mode (no system tray)")
		runForeground(w)
	} else {
		log.Println("Running in background mode (with system tray)")
		runWithTray(w)
	}
}

// runForeground runs the widget on a headless bar, blocking on signals.
func runForeground(w *widget.ToggleWidget) {
	sigCh, stopSignals := control.Notify()
	defer stopSignals()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bar := headless.New(w)
	w.Configure(ctx, bar)
	bar.Draw()

	if err := config.SaveDaemonInfo(models.NewDaemonInfo(os.Getpid(), models.DaemonModeHeadless)); err != nil {
		log.Fatalf("Failed to write daemon info: %v", err)
	}
	log.Printf("Daemon started (PID %d)", os.Getpid())

	stopWatch := watchSettings(ctx, w)

	if sig := control.HandleSignals(ctx, sigCh, w); sig != nil {
		log.Printf("Received signal %v, shutting down...", sig)
	}

	cancel()
	stopWatch()
	shutdown(w)
}

// runWithTray runs the widget in the system tray on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func runWithTray(w *widget.ToggleWidget) {
	// Signals that arrive before the tray is ready wait in the channel.
	sigCh, stopSignals := control.Notify()

	ctx, cancel := context.WithCancel(context.Background())
	stopWatch := func() {}

	var host *tray.Host

	onStart := func() {
		w.Configure(ctx, host)

		if err := config.SaveDaemonInfo(models.NewDaemonInfo(os.Getpid(), models.DaemonModeTray)); err != nil {
			log.Fatalf("Failed to write daemon info: %v", err)
		}
		log.Printf("Daemon started (PID %d)", os.Getpid())

		stopWatch = watchSettings(ctx, w)

		go func() {
			if sig := control.HandleSignals(ctx, sigCh, w); sig != nil {
				log.Printf("Received signal %v, shutting down...", sig)
				tray.Quit()
			}
		}()
	}

	onExit := func() {
		cancel()
		stopSignals()
		stopWatch()
		shutdown(w)
	}

	host = tray.NewHost(ctx, w, onStart, onExit)

	// This blocks the main goroutine until tray exits.
	host.Run()
}

// watchSettings applies settings.yaml changes to w until the returned stop
// function is called.
func watchSettings(ctx context.Context, w *widget.ToggleWidget) func() {
	path, err := config.GlobalSettingsFile()
	if err != nil {
		log.Printf("Settings reload disabled: %v", err)
		return func() {}
	}
	if err := config.EnsureGlobalDir(); err != nil {
		log.Printf("Settings reload disabled: %v", err)
		return func() {}
	}

	sw, err := watcher.New(path)
	if err != nil {
		log.Printf("Settings reload disabled: %v", err)
		return func() {}
	}
	if err := sw.Start(); err != nil {
		log.Printf("Settings reload disabled: %v", err)
		return func() {}
	}

	go control.ForwardReloads(ctx, sw.Events(), w)

	return sw.Stop
}

// shutdown resets redshift if configured and removes the daemon info file.
func shutdown(w *widget.ToggleWidget) {
	if err := w.Shutdown(context.Background()); err != nil {
		log.Printf("Failed to reset redshift: %v", err)
	}
	if err := config.RemoveDaemonInfo(); err != nil {
		log.Printf("Failed to remove daemon info: %v", err)
	}

	fmt.Println("Daemon stopped")
}
