package errtree

import (
	"io"
	"os"
	"sync/atomic"
)

// Handler writes fully rendered error trees to an error stream.
type Handler struct {
	// Out receives the rendered text. nil means os.Stderr.
	Out io.Writer
}

// Handle captures err, renders it with its full chain, and writes the
// joined text to the handler's stream. Write failures are the stream
// owner's problem and are not reported back.
func (h *Handler) Handle(err error) {
	if err == nil {
		return
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	_ = Write(out, Capture(err), true)
}

var installed atomic.Pointer[Handler]

// Install registers h as the process-wide handler used by [Report].
// Installation happens at most once: if a handler is already installed,
// Install leaves it in place and returns false. The decision belongs at
// application startup, not inside libraries.
func Install(h *Handler) bool {
	if h == nil {
		return false
	}
	return installed.CompareAndSwap(nil, h)
}

// Report renders err through the installed handler, or a default
// stderr handler when none was installed.
func Report(err error) {
	h := installed.Load()
	if h == nil {
		h = &Handler{}
	}
	h.Handle(err)
}
