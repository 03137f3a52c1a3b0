package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redshiftbar/redshiftbar/internal/config"
	"github.com/redshiftbar/redshiftbar/internal/daemon/control"
	"github.com/redshiftbar/redshiftbar/internal/models"
	"github.com/redshiftbar/redshiftbar/internal/redshift"
)

var (
	onTemperature int
	onBrightness  float64
)

var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable redshift once with the configured parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadOverriddenSettings()
		if err != nil {
			return err
		}
		return runRedshift(cmd, settings, redshift.EnableArgs(redshift.ParamsFromSettings(settings)))
	},
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Reset redshift",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		return runRedshift(cmd, settings, redshift.ResetArgs(settings.Method))
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle the widget of the running daemon",
	Long: `Toggle the widget of the running redshiftbard, as if it was clicked.

Useful for binding a key in the window manager.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		running, err := config.SignalDaemon(control.ToggleSignal)
		if err != nil {
			return fmt.Errorf("failed to signal daemon: %w", err)
		}
		if !running {
			return fmt.Errorf("daemon is not running. Start it with 'redshiftbar daemon start'")
		}
		return nil
	},
}

func init() {
	onCmd.Flags().IntVarP(&onTemperature, "temperature", "t", 0, "Override the configured temperature (K)")
	onCmd.Flags().Float64VarP(&onBrightness, "brightness", "b", 0, "Override the configured brightness")
}

func loadOverriddenSettings() (*models.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if onTemperature != 0 {
		settings.Temperature = onTemperature
	}
	if onBrightness != 0 {
		settings.Brightness = onBrightness
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func runRedshift(cmd *cobra.Command, settings *models.Settings, args []string) error {
	if running, _, _ := config.IsDaemonRunning(); running {
		fmt.Println(styleWarning.Render("Note:") + " the daemon is running; its widget will not reflect this change. Use 'redshiftbar toggle' instead.")
	}

	if _, err := (redshift.ExecRunner{}).Run(cmd.Context(), settings.Command, args...); err != nil {
		return fmt.Errorf("failed to run redshift: %w", err)
	}

	fmt.Println(styleSuccess.Render("✓") + " " + redshift.Describe(settings.Command, args))
	return nil
}
