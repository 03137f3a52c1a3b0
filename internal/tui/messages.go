package tui

import (
	"github.com/redshiftbar/redshiftbar/internal/models"
	"github.com/redshiftbar/redshiftbar/internal/widget"
)

// ConfiguredMsg signals that the widget is attached and redshift was reset.
type ConfiguredMsg struct{}

// ClickedMsg signals that a click finished running its redshift command.
type ClickedMsg struct {
	Button  widget.Button
	Handled bool
}

// RedrawMsg asks the program to repaint after the widget drew a new frame.
type RedrawMsg struct{}

// SettingsReloadedMsg carries a reloaded settings file.
type SettingsReloadedMsg struct {
	Settings *models.Settings
	Err      error
}
