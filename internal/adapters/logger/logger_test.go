package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/k2build/internal/ui/style"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	l, ok := New().(*Logger)
	require.True(t, ok)

	buf := new(bytes.Buffer)
	l.SetOutput(buf)
	return l, buf
}

func TestInfo(t *testing.T) {
	l, buf := newBufferedLogger(t)
	l.Info("dispatching build_kraken2_db.sh")

	assert.Contains(t, buf.String(), "dispatching build_kraken2_db.sh")
}

func TestWarn(t *testing.T) {
	l, buf := newBufferedLogger(t)
	l.Warn("masking disabled")

	out := buf.String()
	assert.Contains(t, out, style.Warning)
	assert.Contains(t, out, "masking disabled")
}

func TestError_RendersCauseChain(t *testing.T) {
	l, buf := newBufferedLogger(t)

	base := errors.New("exec format error")
	err := zerr.Wrap(zerr.Wrap(base, "failed to locate task program"), "failed to dispatch")
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: failed to dispatch")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ failed to locate task program")
	assert.Contains(t, out, "→ exec format error")

	idx := strings.Index(out, "failed to dispatch")
	causeIdx := strings.Index(out, "failed to locate task program")
	assert.Less(t, idx, causeIdx, "the outermost message comes first")
}

// Metadata-only wrappers have no message; the first named message in the
// chain becomes the headline.
func TestError_MetadataOnlyWrapper(t *testing.T) {
	l, buf := newBufferedLogger(t)

	err := zerr.With(zerr.Wrap(errors.New("no task selected"), ""), "count", 0)
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: no task selected")
	assert.NotContains(t, out, "Error: \n")
	assert.NotContains(t, out, "Caused by:")
}

func TestError_PlainError(t *testing.T) {
	l, buf := newBufferedLogger(t)
	l.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "Error: boom")
	assert.NotContains(t, out, "Caused by:")
}

func TestError_Nil(t *testing.T) {
	l, buf := newBufferedLogger(t)
	l.Error(nil)
	assert.Empty(t, buf.String())
}
