package errtree

import (
	"errors"
	"reflect"
	"strings"
)

// Capture builds a [Node] tree from a live error value. Group children
// come from Unwrap() []error, the cause link from Unwrap() error, and the
// context link from the optional [Contexted] interface. A nil err returns
// a nil node.
//
// A sub-error already captured on the current chain is skipped rather
// than recursed into, so self-referential error values cannot loop the
// capture. Duplicates merely shared between sibling sub-errors are kept:
// each sibling is checked against its own copy of the tracking set.
func Capture(err error) *Node {
	return capture(err, nil)
}

func capture(err error, seen map[error]struct{}) *Node {
	if err == nil {
		return nil
	}
	// Fold the stack wrapper into the node it annotates instead of
	// rendering it as a separate chain link.
	if ws, ok := err.(*withStack); ok {
		n := capture(ws.err, seen)
		if n != nil && n.Stack == "" {
			n.Stack = formatStack(ws.stack)
		}
		return n
	}

	wasNil := seen == nil
	if wasNil {
		seen = make(map[error]struct{})
	}
	markSeen(seen, err)

	n := &Node{}
	if c := errors.Unwrap(err); c != nil && !hasSeen(seen, c) {
		n.Cause = capture(c, seen)
	}
	if cx, ok := err.(Contexted); ok {
		if c := cx.ContextError(); c != nil && !hasSeen(seen, c) {
			n.Context = capture(c, seen)
		}
	}
	if s, ok := err.(ContextSuppressor); ok {
		n.SuppressContext = s.SuppressContext()
	}
	if t, ok := err.(Traced); ok {
		n.Stack = t.StackText()
	}

	if g, ok := err.(interface{ Unwrap() []error }); ok {
		subs := g.Unwrap()
		n.Children = make([]*Node, 0, len(subs))
		for _, sub := range subs {
			if sub == nil || hasSeen(seen, sub) {
				continue
			}
			var childSeen map[error]struct{}
			if !wasNil {
				childSeen = cloneSeen(seen)
			}
			n.Children = append(n.Children, capture(sub, childSeen))
		}
		n.GroupMessage = groupLabel(err, subs)
		n.Summary = groupSummary(n.GroupMessage, len(n.Children))
	} else {
		n.Summary = ensureNewline(err.Error())
	}
	return n
}

// groupLabel picks the group message for a multi-error. A plain join,
// whose Error() is just its children's messages newline-joined, has no
// message of its own.
func groupLabel(err error, subs []error) string {
	if l, ok := err.(Labeled); ok {
		return l.GroupLabel()
	}
	msg := err.Error()
	if msg == joinText(subs) {
		return "multiple errors"
	}
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return msg
}

// joinText reproduces the Error() of errors.Join over subs.
func joinText(subs []error) string {
	var sb strings.Builder
	first := true
	for _, e := range subs {
		if e == nil {
			continue
		}
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		sb.WriteString(e.Error())
	}
	return sb.String()
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// --- Seen-set tracking ---

// Error values with uncomparable dynamic types cannot be map keys and are
// exempt from tracking.
func canTrack(err error) bool {
	t := reflect.TypeOf(err)
	return t != nil && t.Comparable()
}

func markSeen(seen map[error]struct{}, err error) {
	if canTrack(err) {
		seen[err] = struct{}{}
	}
}

func hasSeen(seen map[error]struct{}, err error) bool {
	if !canTrack(err) {
		return false
	}
	_, ok := seen[err]
	return ok
}

func cloneSeen(seen map[error]struct{}) map[error]struct{} {
	out := make(map[error]struct{}, len(seen))
	for k := range seen {
		out[k] = struct{}{}
	}
	return out
}
