// Package menu holds the tray's labels and icon, kept free of the systray
// dependency so they build and test without cgo.
package menu

import "fmt"

// ToggleTitle is the label of the menu item that toggles redshift.
func ToggleTitle(enabled bool) string {
	if enabled {
		return "Disable redshift"
	}
	return "Enable redshift"
}

// StatusTitle is the label of the disabled status line.
func StatusTitle(enabled, failed bool) string {
	switch {
	case failed:
		return "Last command failed"
	case enabled:
		return "Redshift is on"
	default:
		return "Redshift is off"
	}
}

// Tooltip formats the tray tooltip for the widget text.
func Tooltip(text string, enabled, failed bool) string {
	if text == "" {
		return "redshiftbar"
	}
	state := "off"
	if enabled {
		state = "on"
	}
	if failed {
		state = "error"
	}
	return fmt.Sprintf("redshiftbar: %s (%s)", text, state)
}

// WidgetState is the part of the widget the tray menu reflects.
type WidgetState interface {
	Enabled() bool
	Failed() bool
	Text() string
}

// State holds the labels the tray shows for one widget state.
type State struct {
	Toggle  string
	Status  string
	Tooltip string
}

// StateOf reads w once and returns the matching tray labels.
func StateOf(w WidgetState) State {
	enabled, failed, text := w.Enabled(), w.Failed(), w.Text()
	return State{
		Toggle:  ToggleTitle(enabled),
		Status:  StatusTitle(enabled, failed),
		Tooltip: Tooltip(text, enabled, failed),
	}
}
