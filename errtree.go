package errtree

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNilNode = errors.New("nil node")
)

// Process-wide rendering limits. They apply to every render call; callers
// that need different limits for a single render should set and restore
// them around the call.
var (
	// MaxGroupWidth is the number of group children rendered before the
	// remainder collapses into a single "and N more exceptions" slot.
	MaxGroupWidth = 15

	// MaxGroupDepth is the deepest group nesting rendered before a group
	// collapses into a truncation banner.
	MaxGroupDepth = 10

	// MaxLineWidth truncates every rendered line to a display width,
	// measured in terminal columns, with a "..." marker. Zero means no
	// limit.
	MaxLineWidth = 0
)

// Separator banners printed between the links of a rendered chain.
const (
	causeMessage = "\nThe above exception was the direct cause " +
		"of the following exception:\n\n"
	contextMessage = "\nDuring handling of the above exception, " +
		"another exception occurred:\n\n"
)

// Node is one exception in a captured tree. A node is either a leaf
// (Children is nil) or a group (Children is non-nil, possibly empty).
// Nodes are immutable once built; Cause, Context, and Children own the
// nodes they reference, and a finished tree must be acyclic.
type Node struct {
	// Cause is the error this one was explicitly raised from, or nil.
	Cause *Node

	// Context is the error that was being handled when this one occurred,
	// or nil. It is only followed during rendering when Cause is nil and
	// SuppressContext is false.
	Context *Node

	// SuppressContext hides Context from rendering even when set.
	SuppressContext bool

	// Children holds the sub-errors of a group in rendering order.
	// nil marks a leaf; an empty non-nil slice is a group with no members.
	Children []*Node

	// GroupMessage is the text label of a group. Ignored for leaves.
	GroupMessage string

	// Summary is the preformatted exception-only text: one or more
	// newline-terminated lines naming the error and its message.
	Summary string

	// Stack is preformatted multi-line stack text, or "" when the error
	// carries no frames.
	Stack string
}

// group reports whether the node represents a group of sub-errors.
func (n *Node) group() bool { return n.Children != nil }

// summaryText returns the exception-only block for rendering. A group node
// built without a Summary falls back to one synthesized from GroupMessage.
func (n *Node) summaryText() string {
	if n.Summary != "" || !n.group() {
		return n.Summary
	}
	return groupSummary(n.GroupMessage, len(n.Children))
}

// groupSummary builds the one-line exception-only text of a group.
func groupSummary(label string, n int) string {
	plural := ""
	if n != 1 {
		plural = "s"
	}
	return fmt.Sprintf("%s (%d sub-exception%s)\n", label, n, plural)
}

// --- Capture Interfaces ---

// Labeled provides the group message for a multi-error.
// Without it, Capture derives a label from Error().
type Labeled interface {
	GroupLabel() string
}

// Contexted exposes the error that was being handled when this one
// occurred. Capture stores it as the node's context link.
type Contexted interface {
	ContextError() error
}

// ContextSuppressor marks the context link as hidden, mirroring an
// explicit "raised from nothing" at the raise site.
type ContextSuppressor interface {
	SuppressContext() bool
}

// Traced provides preformatted stack text for errors that carry their own
// frames. Errors wrapped by [WithStack] do not need it.
type Traced interface {
	StackText() string
}
