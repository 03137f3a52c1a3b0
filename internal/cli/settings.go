package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redshiftbar/redshiftbar/internal/config"
	"github.com/redshiftbar/redshiftbar/internal/models"
	"github.com/redshiftbar/redshiftbar/internal/redshift"
	"github.com/redshiftbar/redshiftbar/internal/widget"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show current settings and their defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		path, err := config.GlobalSettingsFile()
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n\n", styleLabel.Render("File"), styleValue.Render(path))
		current := settingValues(settings)
		for _, d := range widget.Defaults() {
			value := fmt.Sprint(current[d.Name])
			line := fmt.Sprintf("  %-20s %s", d.Name, styleValue.Render(value))
			if value != fmt.Sprint(d.Value) {
				line += " " + styleHint.Render(fmt.Sprintf("(default %v)", d.Value))
			}
			fmt.Println(line)
			fmt.Printf("  %-20s %s\n", "", styleHint.Render(d.Doc))
		}
		return nil
	},
}

var configureCmd = &cobra.Command{
	Use:     "configure",
	Aliases: []string{"config"},
	Short:   "Configure widget settings",
	Long: `Configure widget settings interactively.

This allows you to modify:
  - Enabled and disabled text
  - Temperature, brightness and gamma
  - Command variant (extended or simple)
  - Whether redshift is reset when the bar exits

Press Enter to keep the current value for any setting.`,
	RunE: runConfigure,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	changed, err := promptSettings(bufio.NewReader(os.Stdin), os.Stdout, settings)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Println("\nNo changes made.")
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("\nSettings updated.")
	return nil
}

// promptSettings asks for each editable setting, updating s in place.
func promptSettings(reader *bufio.Reader, out io.Writer, s *models.Settings) (bool, error) {
	changed := false

	if v := promptString(reader, out, "Enabled text", s.EnabledText); v != s.EnabledText {
		s.EnabledText = v
		changed = true
	}
	if v := promptString(reader, out, "Disabled text", s.DisabledText); v != s.DisabledText {
		s.DisabledText = v
		changed = true
	}

	tempStr := promptString(reader, out, "Temperature (K)", strconv.Itoa(s.Temperature))
	temp, err := strconv.Atoi(tempStr)
	if err != nil {
		return false, fmt.Errorf("invalid temperature: %s", tempStr)
	}
	if temp != s.Temperature {
		s.Temperature = temp
		changed = true
	}

	brightStr := promptString(reader, out, "Brightness", strconv.FormatFloat(s.Brightness, 'f', -1, 64))
	bright, err := strconv.ParseFloat(brightStr, 64)
	if err != nil {
		return false, fmt.Errorf("invalid brightness: %s", brightStr)
	}
	if bright != s.Brightness {
		s.Brightness = bright
		changed = true
	}

	gammaStr := promptString(reader, out, "Gamma (R:G:B)", redshift.GammaArg(s.Gamma.Red, s.Gamma.Green, s.Gamma.Blue))
	gamma, err := parseGamma(gammaStr)
	if err != nil {
		return false, err
	}
	if gamma != s.Gamma {
		s.Gamma = gamma
		changed = true
	}

	if v := promptString(reader, out, "Variant (extended/simple)", s.Variant); v != s.Variant {
		s.Variant = v
		changed = true
	}

	if v := promptYesNoWithCurrent(reader, out, "Reset redshift when the bar exits?", s.ResetOnExit); v != s.ResetOnExit {
		s.ResetOnExit = v
		changed = true
	}

	if err := s.Validate(); err != nil {
		return false, err
	}
	return changed, nil
}

// promptString prompts for a value showing the current one; empty input keeps it.
func promptString(reader *bufio.Reader, out io.Writer, prompt, current string) string {
	fmt.Fprintf(out, "%s [%s]: ", prompt, current)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(response)
	if response == "" {
		return current
	}
	return response
}

// promptYesNoWithCurrent prompts for a yes/no value showing the current value.
func promptYesNoWithCurrent(reader *bufio.Reader, out io.Writer, prompt string, current bool) bool {
	currentStr := "no"
	if current {
		currentStr = "yes"
	}

	fmt.Fprintf(out, "%s [%s]: ", prompt, currentStr)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return current
	}
	return response == "y" || response == "yes"
}

// parseGamma parses "R:G:B", or a single value applied to all channels.
func parseGamma(s string) (models.GammaConfig, error) {
	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		parts = []string{parts[0], parts[0], parts[0]}
	}
	if len(parts) != 3 {
		return models.GammaConfig{}, fmt.Errorf("invalid gamma %q (expected R:G:B)", s)
	}

	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return models.GammaConfig{}, fmt.Errorf("invalid gamma %q: %w", s, err)
		}
		vals[i] = v
	}
	return models.GammaConfig{Red: vals[0], Green: vals[1], Blue: vals[2]}, nil
}

// settingValues flattens settings under the names used by widget.Defaults.
func settingValues(s *models.Settings) map[string]interface{} {
	return map[string]interface{}{
		"command":            s.Command,
		"variant":            s.Variant,
		"method":             s.Method,
		"temperature":        s.Temperature,
		"brightness":         s.Brightness,
		"gamma.red":          s.Gamma.Red,
		"gamma.green":        s.Gamma.Green,
		"gamma.blue":         s.Gamma.Blue,
		"enabled_text":       s.EnabledText,
		"disabled_text":      s.DisabledText,
		"display.font":       s.Display.Font,
		"display.font_size":  s.Display.FontSize,
		"display.foreground": s.Display.Foreground,
		"display.background": s.Display.Background,
		"display.padding":    s.Display.Padding,
		"reset_on_exit":      s.ResetOnExit,
	}
}
