package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/redshiftbar/redshiftbar/internal/config"
	"github.com/redshiftbar/redshiftbar/internal/redshift"
	"github.com/redshiftbar/redshiftbar/internal/tui"
)

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Run the terminal status bar",
	Long: `Run a one-line status bar in the terminal hosting the redshift widget.

Click the widget (or press Space/Enter) to toggle redshift. Changes to
settings.yaml are applied while the bar runs. Logs go to the redshiftbar
log file so they don't disturb the bar.`,
	RunE: runBar,
}

func runBar(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the bar needs a terminal; use 'redshiftbar daemon start' for the tray")
	}

	closer, err := config.SetupLogging("[redshiftbar] ", false)
	if err != nil {
		return err
	}
	defer closer.Close()

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settingsPath, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}

	if err := redshift.CheckDependencies(settings.Command); err != nil {
		fmt.Fprintln(os.Stderr, styleWarning.Render("Warning: ")+err.Error())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, settings, settingsPath)
}
