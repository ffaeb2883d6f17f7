package errtree_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bjaus/errtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerWritesRender(t *testing.T) {
	t.Parallel()
	err := errtree.Group("g", errors.New("a"), errors.New("b"))
	var buf bytes.Buffer
	h := &errtree.Handler{Out: &buf}
	h.Handle(err)

	want, merr := errtree.Marshal(errtree.Capture(err), true)
	require.NoError(t, merr)
	assert.Equal(t, string(want), buf.String())
}

func TestHandlerNilError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	h := &errtree.Handler{Out: &buf}
	h.Handle(nil)
	assert.Empty(t, buf.String())
}

func TestHandlerIgnoresWriteFailure(t *testing.T) {
	t.Parallel()
	h := &errtree.Handler{Out: &errWriter{}}
	assert.NotPanics(t, func() { h.Handle(errors.New("boom")) })
}

// Install and Report share one process-wide slot, so their behavior is
// covered by a single sequential test.
func TestInstallOnce(t *testing.T) {
	var first, second bytes.Buffer
	h1 := &errtree.Handler{Out: &first}
	h2 := &errtree.Handler{Out: &second}

	assert.False(t, errtree.Install(nil))
	require.True(t, errtree.Install(h1))
	// A second install must not displace the existing handler.
	assert.False(t, errtree.Install(h2))

	errtree.Report(errors.New("boom"))
	assert.Equal(t, "boom\n", first.String())
	assert.Empty(t, second.String())
}
