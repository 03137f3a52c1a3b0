package control

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redshiftbar/redshiftbar/internal/daemon/headless"
	"github.com/redshiftbar/redshiftbar/internal/daemon/watcher"
	"github.com/redshiftbar/redshiftbar/internal/models"
	"github.com/redshiftbar/redshiftbar/internal/widget"
)

type recordingRunner struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, strings.Join(append([]string{name}, args...), " "))
	return nil, nil
}

func (r *recordingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func newWidget(t *testing.T) (*widget.ToggleWidget, *recordingRunner) {
	t.Helper()
	s := models.NewSettings()
	s.EnabledText = "On"
	s.DisabledText = "Off"
	r := &recordingRunner{}
	w := widget.New(s, r)
	w.Configure(context.Background(), headless.New(w))
	return w, r
}

func TestHandleSignalsTogglesUntilStop(t *testing.T) {
	w, r := newWidget(t)
	sigCh := make(chan os.Signal, 4)
	sigCh <- syscall.SIGUSR1
	sigCh <- syscall.SIGUSR1
	sigCh <- syscall.SIGUSR1
	sigCh <- syscall.SIGTERM

	sig := HandleSignals(context.Background(), sigCh, w)
	assert.Equal(t, syscall.SIGTERM, sig)
	assert.True(t, w.Enabled())
	assert.Equal(t, "On", w.Text())
	// reset on configure plus three toggles
	assert.Equal(t, 4, r.count())
}

func TestHandleSignalsStopsOnContext(t *testing.T) {
	w, _ := newWidget(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Nil(t, HandleSignals(ctx, make(chan os.Signal), w))
}

func TestHandleSignalsStopsOnClosedChannel(t *testing.T) {
	w, _ := newWidget(t)
	sigCh := make(chan os.Signal)
	close(sigCh)

	assert.Nil(t, HandleSignals(context.Background(), sigCh, w))
}

func TestNotifyCatchesToggleSignal(t *testing.T) {
	sigCh, stop := Notify()
	defer stop()

	// Delivered before anything consumes the channel, as when `toggle`
	// races a freshly started daemon. The process must survive it.
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))

	select {
	case sig := <-sigCh:
		assert.Equal(t, syscall.SIGUSR1, sig)
	case <-time.After(5 * time.Second):
		t.Fatal("SIGUSR1 was not relayed")
	}
}

func TestForwardReloadsSkipsInvalid(t *testing.T) {
	w, _ := newWidget(t)
	events := make(chan watcher.Event, 2)

	bad := models.NewSettings()
	bad.EnabledText = "Ignored"
	events <- watcher.Event{Path: "settings.yaml", Settings: bad, Err: errors.New("brightness out of range")}

	good := models.NewSettings()
	good.DisabledText = "Night off"
	good.Temperature = 3000
	events <- watcher.Event{Path: "settings.yaml", Settings: good}
	close(events)

	ForwardReloads(context.Background(), events, w)

	applied := w.Settings()
	assert.Equal(t, 3000, applied.Temperature)
	assert.Equal(t, "Redshift on", applied.EnabledText)
	assert.Equal(t, "Night off", w.Text())
	assert.False(t, w.Enabled())
}

func TestForwardReloadsStopsOnContext(t *testing.T) {
	w, _ := newWidget(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		ForwardReloads(ctx, make(chan watcher.Event), w)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ForwardReloads did not return after cancel")
	}
}
