package widget

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redshiftbar/redshiftbar/internal/models"
)

type fakeRunner struct {
	calls [][]string
	fail  map[string]bool // keyed by the joined argument list
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.fail[strings.Join(args, " ")] {
		return []byte("redshift: no adjustment method"), errors.New("exit status 1")
	}
	return nil, nil
}

func (r *fakeRunner) last() string {
	if len(r.calls) == 0 {
		return ""
	}
	return strings.Join(r.calls[len(r.calls)-1], " ")
}

type fakeDrawer struct {
	background string
	text       string
	style      TextStyle
}

func (d *fakeDrawer) Clear(background string) { d.background = background }

func (d *fakeDrawer) DrawText(text string, style TextStyle) {
	d.text = text
	d.style = style
}

type fakeBar struct {
	w      *ToggleWidget
	drawer fakeDrawer
	draws  int
}

func (b *fakeBar) Drawer() Drawer     { return &b.drawer }
func (b *fakeBar) Background() string { return "222222" }

func (b *fakeBar) Draw() {
	b.draws++
	b.w.Draw()
}

func onOffSettings() *models.Settings {
	s := models.NewSettings()
	s.EnabledText = "On"
	s.DisabledText = "Off"
	return s
}

func newAttached(t *testing.T, s *models.Settings, r *fakeRunner) (*ToggleWidget, *fakeBar) {
	t.Helper()
	w := New(s, r)
	bar := &fakeBar{w: w}
	w.Configure(context.Background(), bar)
	return w, bar
}

func TestToggleSequence(t *testing.T) {
	r := &fakeRunner{}
	w, bar := newAttached(t, onOffSettings(), r)

	assert.Equal(t, "Off", w.Text())
	assert.Equal(t, "redshift -x", r.last())

	require.True(t, w.Click(context.Background(), Button1))
	assert.Equal(t, "On", w.Text())
	assert.True(t, w.Enabled())
	assert.Equal(t, "redshift -P -O 1700 -b 1.0 -g 1.0:1.0:1.0", r.last())
	assert.Equal(t, "On", bar.drawer.text)

	require.True(t, w.Click(context.Background(), Button1))
	assert.Equal(t, "Off", w.Text())
	assert.False(t, w.Enabled())
	assert.Equal(t, "redshift -x", r.last())
	assert.Equal(t, 2, bar.draws)
}

func TestConfigureResetsToDisabled(t *testing.T) {
	r := &fakeRunner{}
	w, bar := newAttached(t, onOffSettings(), r)

	w.Toggle(context.Background())
	require.True(t, w.Enabled())

	w.Configure(context.Background(), bar)
	assert.False(t, w.Enabled())
	assert.Equal(t, "Off", w.Text())
	assert.Equal(t, "redshift -x", r.last())
}

func TestToggleTwiceRestoresText(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		enable  string
	}{
		{name: "extended", variant: models.VariantExtended, enable: "redshift -P -O 3500 -b 0.8 -g 0.9:1.0:1.1"},
		{name: "simple", variant: models.VariantSimple, enable: "redshift -O 3500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := onOffSettings()
			s.Variant = tt.variant
			s.Temperature = 3500
			s.Brightness = 0.8
			s.Gamma = models.GammaConfig{Red: 0.9, Green: 1.0, Blue: 1.1}

			r := &fakeRunner{}
			w, _ := newAttached(t, s, r)
			before := w.Text()

			w.Toggle(context.Background())
			assert.Equal(t, tt.enable, r.last())
			w.Toggle(context.Background())

			assert.Equal(t, before, w.Text())
		})
	}
}

func TestFailureShowsErrorAndKeepsState(t *testing.T) {
	r := &fakeRunner{fail: map[string]bool{"-P -O 1700 -b 1.0 -g 1.0:1.0:1.0": true}}
	w, bar := newAttached(t, onOffSettings(), r)

	w.Toggle(context.Background())
	assert.Equal(t, ErrorText, w.Text())
	assert.Equal(t, ErrorText, bar.drawer.text)
	assert.True(t, w.Failed())
	assert.False(t, w.Enabled())

	// A later successful command clears the error.
	delete(r.fail, "-P -O 1700 -b 1.0 -g 1.0:1.0:1.0")
	w.Toggle(context.Background())
	assert.Equal(t, "On", w.Text())
	assert.False(t, w.Failed())
}

func TestFailureFromEnabledState(t *testing.T) {
	r := &fakeRunner{}
	w, _ := newAttached(t, onOffSettings(), r)
	w.Toggle(context.Background())
	require.Equal(t, "On", w.Text())

	r.fail = map[string]bool{"-x": true}
	w.Toggle(context.Background())
	assert.Equal(t, ErrorText, w.Text())
	assert.True(t, w.Enabled())
}

func TestConfigureFailure(t *testing.T) {
	r := &fakeRunner{fail: map[string]bool{"-x": true}}
	w, _ := newAttached(t, onOffSettings(), r)

	assert.Equal(t, ErrorText, w.Text())
	assert.False(t, w.Enabled())
}

func TestClickUnboundButton(t *testing.T) {
	r := &fakeRunner{}
	w, bar := newAttached(t, onOffSettings(), r)

	assert.False(t, w.Click(context.Background(), Button3))
	assert.Len(t, r.calls, 1)
	assert.Zero(t, bar.draws)
}

func TestDrawUsesBackgroundFallback(t *testing.T) {
	s := onOffSettings()
	w, bar := newAttached(t, s, &fakeRunner{})

	w.Draw()
	assert.Equal(t, "222222", bar.drawer.background)
	assert.Equal(t, "Off", bar.drawer.text)
	assert.Equal(t, TextStyle{Font: "sans", FontSize: 50, Foreground: "ffffff", Padding: 3}, bar.drawer.style)

	s.Display.Background = "000000"
	w.Apply(s)
	assert.Equal(t, "000000", bar.drawer.background)
}

func TestApplyKeepsState(t *testing.T) {
	r := &fakeRunner{}
	w, bar := newAttached(t, onOffSettings(), r)
	w.Toggle(context.Background())

	s := onOffSettings()
	s.EnabledText = "Night"
	w.Apply(s)

	assert.True(t, w.Enabled())
	assert.Equal(t, "Night", w.Text())
	assert.Equal(t, "Night", bar.drawer.text)
	assert.Len(t, r.calls, 2)
}

func TestDrawWithoutBar(t *testing.T) {
	w := New(onOffSettings(), &fakeRunner{})
	assert.NotPanics(t, w.Draw)
	assert.Equal(t, "Off", w.Text())
}

func TestShutdown(t *testing.T) {
	r := &fakeRunner{}
	w, _ := newAttached(t, onOffSettings(), r)
	w.Toggle(context.Background())

	require.NoError(t, w.Shutdown(context.Background()))
	assert.Equal(t, "redshift -x", r.last())
	assert.False(t, w.Enabled())

	s := onOffSettings()
	s.ResetOnExit = false
	r2 := &fakeRunner{}
	w2 := New(s, r2)
	require.NoError(t, w2.Shutdown(context.Background()))
	assert.Empty(t, r2.calls)
}

func TestDefaultsMatchSettings(t *testing.T) {
	byName := map[string]interface{}{}
	for _, d := range Defaults() {
		assert.NotEmpty(t, d.Doc, d.Name)
		byName[d.Name] = d.Value
	}
	assert.Equal(t, 1700, byName["temperature"])
	assert.Equal(t, 1.0, byName["brightness"])
	assert.Equal(t, "ffffff", byName["display.foreground"])
}

func TestDependencies(t *testing.T) {
	s := onOffSettings()
	s.Command = "/usr/local/bin/redshift"
	w := New(s, &fakeRunner{})
	assert.Equal(t, []string{"/usr/local/bin/redshift"}, w.Dependencies())
}
