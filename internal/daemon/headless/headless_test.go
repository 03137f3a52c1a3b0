package headless

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redshiftbar/redshiftbar/internal/models"
	"github.com/redshiftbar/redshiftbar/internal/widget"
)

type nopRunner struct{}

func (nopRunner) Run(context.Context, string, ...string) ([]byte, error) {
	return nil, nil
}

func TestHostLogsTextChanges(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	s := models.NewSettings()
	s.EnabledText = "On"
	s.DisabledText = "Off"
	w := widget.New(s, nopRunner{})
	h := New(w)

	w.Configure(context.Background(), h)
	h.Draw()
	h.Draw()
	assert.Equal(t, "Off", h.Text())

	w.Click(context.Background(), widget.Button1)
	assert.Equal(t, "On", h.Text())

	assert.Equal(t, 1, strings.Count(buf.String(), "[bar] Off"))
	assert.Equal(t, 1, strings.Count(buf.String(), "[bar] On"))
}
