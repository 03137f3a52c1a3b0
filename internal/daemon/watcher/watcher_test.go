package watcher

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redshiftbar/redshiftbar/internal/config"
	"github.com/redshiftbar/redshiftbar/internal/models"
)

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload event")
		return Event{}
	}
}

func TestWatcherReloadsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.SettingsFileName)

	w, err := New(path)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	s := models.NewSettings()
	s.Temperature = 2800
	require.NoError(t, config.SaveYAML(path, s))

	ev := waitEvent(t, w)
	require.NoError(t, ev.Err)
	require.NotNil(t, ev.Settings)
	assert.Equal(t, 2800, ev.Settings.Temperature)
}

func TestWatcherReportsInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.SettingsFileName)

	w, err := New(path)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	s := models.NewSettings()
	s.Temperature = 10
	require.NoError(t, config.SaveYAML(path, s))

	ev := waitEvent(t, w)
	assert.Error(t, ev.Err)
	assert.Nil(t, ev.Settings)
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), config.SettingsFileName))
	require.NoError(t, err)
	require.NoError(t, w.Start())

	w.Stop()
	assert.NotPanics(t, w.Stop)
}
