package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redshiftbar/redshiftbar/internal/models"
)

func useTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(GlobalDirEnv, dir)
	return dir
}

func TestLoadSettingsDefaults(t *testing.T) {
	useTempHome(t)

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.NewSettings(), s)
}

func TestLoadSettingsPartialFile(t *testing.T) {
	dir := useTempHome(t)
	content := "temperature: 3200\nenabled_text: Night\ngamma:\n  blue: 0.8\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(content), 0644))

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 3200, s.Temperature)
	assert.Equal(t, "Night", s.EnabledText)
	assert.Equal(t, "Redshift off", s.DisabledText)
	assert.Equal(t, models.GammaConfig{Red: 1.0, Green: 1.0, Blue: 0.8}, s.Gamma)
	assert.True(t, s.ResetOnExit)
}

func TestLoadSettingsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "temperature too low", content: "temperature: 200\n"},
		{name: "unknown variant", content: "variant: fancy\n"},
		{name: "bad yaml", content: "temperature: [\n"},
		{name: "brightness nan", content: "brightness: .nan\n"},
		{name: "gamma red nan", content: "gamma:\n  red: .nan\n"},
		{name: "negative padding", content: "display:\n  padding: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := useTempHome(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(tt.content), 0644))

			_, err := LoadSettings()
			assert.Error(t, err)
		})
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	dir := useTempHome(t)

	s := models.NewSettings()
	s.Variant = models.VariantSimple
	s.Method = "randr"
	s.Temperature = 2500
	require.NoError(t, SaveSettings(s))

	assert.False(t, FileExists(filepath.Join(dir, SettingsFileName+".tmp")))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestSaveSettingsRejectsInvalid(t *testing.T) {
	dir := useTempHome(t)

	s := models.NewSettings()
	s.Brightness = 3
	assert.Error(t, SaveSettings(s))
	assert.False(t, FileExists(filepath.Join(dir, SettingsFileName)))
}

func TestDaemonInfoLifecycle(t *testing.T) {
	useTempHome(t)

	running, info, err := IsDaemonRunning()
	require.NoError(t, err)
	assert.False(t, running)
	assert.Nil(t, info)

	require.NoError(t, SaveDaemonInfo(models.NewDaemonInfo(os.Getpid(), models.DaemonModeHeadless)))

	running, info, err = IsDaemonRunning()
	require.NoError(t, err)
	assert.True(t, running)
	require.NotNil(t, info)
	assert.Equal(t, models.DaemonModeHeadless, info.Mode)

	require.NoError(t, RemoveDaemonInfo())
	loaded, err := LoadDaemonInfo()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
