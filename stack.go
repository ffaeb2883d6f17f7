package errtree

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame is a single call site in a captured stack.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Stack holds captured frames from most recent call outward.
type Stack []Frame

// maxStackDepth bounds capture; error paths rarely need more context.
const maxStackDepth = 64

// WithStack returns err annotated with the caller's stack. Capture folds
// the frames into the resulting node's stack text instead of adding a
// chain link. A nil err returns nil.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return &withStack{err: err, stack: captureStack(1)}
}

// WithStackSkip is like [WithStack] but skips additional call frames,
// for helpers that wrap it.
func WithStackSkip(err error, skip int) error {
	if err == nil {
		return nil
	}
	return &withStack{err: err, stack: captureStack(skip + 1)}
}

type withStack struct {
	err   error
	stack Stack
}

func (w *withStack) Error() string { return w.err.Error() }
func (w *withStack) Unwrap() error { return w.err }

// captureStack records up to maxStackDepth frames, skipping 'skip' frames
// beyond the capture machinery itself. CallersFrames is used so inlined
// calls resolve correctly.
func captureStack(skip int) Stack {
	// +2 skips runtime.Callers and captureStack, placing the first frame
	// at the caller of WithStack/WithStackSkip.
	pc := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// formatStack renders frames as stack text, oldest call first to match
// the "most recent call last" traceback headers.
func formatStack(stk Stack) string {
	if len(stk) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(stk) - 1; i >= 0; i-- {
		fr := stk[i]
		fmt.Fprintf(&sb, "  %s\n    %s:%d\n", fr.Function, fr.File, fr.Line)
	}
	return sb.String()
}
