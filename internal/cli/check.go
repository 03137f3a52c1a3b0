package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/redshiftbar/redshiftbar/internal/config"
	"github.com/redshiftbar/redshiftbar/internal/redshift"
	"github.com/redshiftbar/redshiftbar/internal/widget"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the widget's external tools are installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		deps := widget.New(settings, nil).Dependencies()
		if err := redshift.CheckDependencies(deps...); err != nil {
			fmt.Println(styleError.Render("✗") + " " + err.Error())
			return err
		}

		for _, dep := range deps {
			path, _ := exec.LookPath(dep)
			fmt.Printf("%s %s %s\n", styleSuccess.Render("✓"), dep, styleHint.Render(path))
		}
		return nil
	},
}
