// Package widget implements the redshift toggle widget hosted by a status bar.
package widget

import (
	"context"
	"log"
	"sync"

	"github.com/redshiftbar/redshiftbar/internal/models"
	"github.com/redshiftbar/redshiftbar/internal/redshift"
)

// ErrorText replaces the widget text after a failed redshift invocation.
const ErrorText = "Redshift widget error"

// ToggleWidget switches redshift on and off when clicked.
//
// It is a two-state machine {disabled, enabled}. The state only changes when
// the redshift command for the transition succeeds; a failed command leaves
// the state as it was and shows ErrorText until the next successful command.
type ToggleWidget struct {
	mu        sync.Mutex
	runner    redshift.Runner
	settings  models.Settings
	enabled   bool
	failed    bool
	text      string
	bar       Bar
	callbacks map[Button]func(context.Context)
}

// New creates a disabled widget. A nil runner uses redshift.ExecRunner.
func New(settings *models.Settings, runner redshift.Runner) *ToggleWidget {
	if runner == nil {
		runner = redshift.ExecRunner{}
	}
	w := &ToggleWidget{
		runner:   runner,
		settings: *settings,
	}
	w.callbacks = map[Button]func(context.Context){
		Button1: w.Toggle,
	}
	w.setText()
	return w
}

// Defaults returns the widget's configuration defaults table.
func Defaults() []Default {
	d := models.NewSettings()
	return []Default{
		{"command", d.Command, "Redshift binary name or path"},
		{"variant", d.Variant, "Enable command form: extended (-P -O -b -g) or simple (-O)"},
		{"method", d.Method, "Redshift adjustment method (-m), empty for redshift's choice"},
		{"temperature", d.Temperature, "Redshift temperature to set when enabled"},
		{"brightness", d.Brightness, "Redshift brightness"},
		{"gamma.red", d.Gamma.Red, "Redshift gamma red"},
		{"gamma.green", d.Gamma.Green, "Redshift gamma green"},
		{"gamma.blue", d.Gamma.Blue, "Redshift gamma blue"},
		{"enabled_text", d.EnabledText, "Redshift enabled text"},
		{"disabled_text", d.DisabledText, "Redshift disabled text"},
		{"display.font", d.Display.Font, "Default font"},
		{"display.font_size", d.Display.FontSize, "Font size"},
		{"display.foreground", d.Display.Foreground, "Font colour for information text"},
		{"display.background", d.Display.Background, "Widget background, empty for the bar background"},
		{"display.padding", d.Display.Padding, "Padding around the text"},
		{"reset_on_exit", d.ResetOnExit, "Reset redshift when the bar exits"},
	}
}

// Dependencies lists the external binaries the widget needs.
func (w *ToggleWidget) Dependencies() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return []string{w.settings.Command}
}

// Configure attaches the widget to bar and resets redshift so the widget
// starts from a known disabled state.
func (w *ToggleWidget) Configure(ctx context.Context, bar Bar) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.bar = bar
	w.enabled = false
	w.failed = false
	_ = w.reset(ctx)
	w.setText()
}

// Click dispatches a mouse button to its registered callback.
// Returns false if nothing is bound to the button.
func (w *ToggleWidget) Click(ctx context.Context, button Button) bool {
	w.mu.Lock()
	cb, ok := w.callbacks[button]
	w.mu.Unlock()
	if !ok {
		return false
	}
	cb(ctx)
	return true
}

// Toggle runs the command for the opposite state and asks the bar to redraw.
func (w *ToggleWidget) Toggle(ctx context.Context) {
	w.mu.Lock()
	var err error
	if w.enabled {
		err = w.reset(ctx)
	} else {
		err = w.enable(ctx)
	}
	if err == nil {
		w.enabled = !w.enabled
	}
	w.setText()
	bar := w.bar
	w.mu.Unlock()

	if bar != nil {
		bar.Draw()
	}
}

// Draw renders the widget onto the bar's drawer.
func (w *ToggleWidget) Draw() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.bar == nil {
		return
	}
	background := w.settings.Display.Background
	if background == "" {
		background = w.bar.Background()
	}

	d := w.bar.Drawer()
	d.Clear(background)
	w.setText()
	d.DrawText(w.text, w.style())
}

// Apply replaces the widget configuration. The enabled state is kept; new
// redshift parameters take effect on the next enable.
func (w *ToggleWidget) Apply(settings *models.Settings) {
	w.mu.Lock()
	w.settings = *settings
	w.setText()
	bar := w.bar
	w.mu.Unlock()

	if bar != nil {
		bar.Draw()
	}
}

// Shutdown resets redshift if the settings ask for it.
func (w *ToggleWidget) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.settings.ResetOnExit {
		return nil
	}
	if err := w.reset(ctx); err != nil {
		return err
	}
	w.enabled = false
	w.setText()
	return nil
}

// Text returns the text currently displayed.
func (w *ToggleWidget) Text() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.text
}

// Enabled reports whether redshift was last switched on by this widget.
func (w *ToggleWidget) Enabled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enabled
}

// Failed reports whether the last redshift command failed.
func (w *ToggleWidget) Failed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failed
}

// Settings returns a copy of the current configuration.
func (w *ToggleWidget) Settings() models.Settings {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.settings
}

// reset and enable must be called with w.mu held.
func (w *ToggleWidget) reset(ctx context.Context) error {
	return w.run(ctx, "reset redshift", redshift.ResetArgs(w.settings.Method))
}

func (w *ToggleWidget) enable(ctx context.Context) error {
	return w.run(ctx, "set redshift temperature", redshift.EnableArgs(redshift.ParamsFromSettings(&w.settings)))
}

func (w *ToggleWidget) run(ctx context.Context, what string, args []string) error {
	out, err := w.runner.Run(ctx, w.settings.Command, args...)
	if err != nil {
		log.Printf("[widget] Failed to %s: %v (output: %q)", what, err, out)
		w.failed = true
		return err
	}
	log.Printf("[widget] %s", redshift.Describe(w.settings.Command, args))
	w.failed = false
	return nil
}

func (w *ToggleWidget) setText() {
	switch {
	case w.failed:
		w.text = ErrorText
	case w.enabled:
		w.text = w.settings.EnabledText
	default:
		w.text = w.settings.DisabledText
	}
}

func (w *ToggleWidget) style() TextStyle {
	return TextStyle{
		Font:       w.settings.Display.Font,
		FontSize:   w.settings.Display.FontSize,
		Foreground: w.settings.Display.Foreground,
		Padding:    w.settings.Display.Padding,
	}
}
