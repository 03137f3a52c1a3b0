package config

import (
	"fmt"

	"github.com/redshiftbar/redshiftbar/internal/models"
)

// LoadSettings loads the widget settings from ~/.redshiftbar/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFile(path)
}

// LoadSettingsFile loads settings from path, filling unset fields with defaults
// and validating the result.
func LoadSettingsFile(path string) (*models.Settings, error) {
	settings := models.NewSettings()
	if FileExists(path) {
		// Decoding over the defaults keeps keys the file omits.
		if err := LoadYAML(path, settings); err != nil {
			return nil, err
		}
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return settings, nil
}

// SaveSettings saves the widget settings to ~/.redshiftbar/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid settings: %w", err)
	}
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
