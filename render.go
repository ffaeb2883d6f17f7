package errtree

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strconv"
)

// Lines renders the tree rooted at n as a lazy sequence of text chunks.
// Each chunk is one or more lines; concatenating every chunk yields the
// full render. The sequence is one-shot: it may be consumed once, but
// calling Lines again on the same tree produces identical output.
//
// With chain true the cause/context chain of every node is rendered,
// causal root first. The sequence carries no resources; an abandoned
// consumer simply stops pulling.
func (n *Node) Lines(chain bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		if n == nil {
			return
		}
		out := yield
		if limit := MaxLineWidth; limit > 0 {
			out = func(chunk string) bool { return yield(clipLines(chunk, limit)) }
		}
		n.render(out, chain, newPrintContext())
	}
}

// Write renders n to w. Writer errors abort the render and are returned
// as-is.
func Write(w io.Writer, n *Node, chain bool) error {
	if n == nil {
		return ErrNilNode
	}
	var err error
	for chunk := range n.Lines(chain) {
		if _, err = io.WriteString(w, chunk); err != nil {
			break
		}
	}
	return err
}

// Marshal renders n and returns the bytes.
func Marshal(n *Node, chain bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, n, chain); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// render walks the chain of n and emits each link depth-first through
// yield. It returns false as soon as the consumer stops pulling.
func (n *Node) render(yield func(string) bool, chain bool, ctx *printContext) bool {
	for _, link := range chainSequence(n, chain) {
		if link.msg != "" {
			if !ctx.emit(yield, link.msg, "") {
				return false
			}
		}
		exc := link.node
		switch {
		case !exc.group():
			if exc.Stack != "" {
				if !ctx.emit(yield, "Traceback (most recent call last):\n", "") {
					return false
				}
				if !ctx.emit(yield, exc.Stack, "") {
					return false
				}
			}
			if !ctx.emit(yield, exc.summaryText(), "") {
				return false
			}
		case ctx.depth > MaxGroupDepth:
			banner := fmt.Sprintf("... (max_group_depth is %d)\n", MaxGroupDepth)
			if !ctx.emit(yield, banner, "") {
				return false
			}
		default:
			if !exc.renderGroup(yield, chain, ctx) {
				return false
			}
		}
	}
	return true
}

// renderGroup emits one group node: its own traceback and summary, then a
// framed, numbered slot per child, recursing with the shared context.
func (n *Node) renderGroup(yield func(string) bool, chain bool, ctx *printContext) bool {
	// The top-level group opens its own level so that its header lines
	// carry the margin of depth 1, with "+" marking the outermost frame.
	isTopLevel := ctx.depth == 0
	if isTopLevel {
		ctx.depth++
	}

	if n.Stack != "" {
		margin := ""
		if isTopLevel {
			margin = "+"
		}
		if !ctx.emit(yield, "Exception Group Traceback (most recent call last):\n", margin) {
			return false
		}
		if !ctx.emit(yield, n.Stack, "") {
			return false
		}
	}
	if !ctx.emit(yield, n.summaryText(), "") {
		return false
	}

	width := MaxGroupWidth
	if width < 0 {
		width = 0
	}
	numChildren := len(n.Children)
	slots := numChildren
	if numChildren > width {
		slots = width + 1 // last slot is the truncation summary
	}

	ctx.needClose = false
	for i := range slots {
		lastSlot := i == slots-1
		if lastSlot {
			// The closing frame may instead be drawn by a recursive call.
			ctx.needClose = true
		}
		truncated := i >= width
		title := strconv.Itoa(i + 1)
		if truncated {
			title = "..."
		}
		lead := "  "
		if i == 0 {
			lead = "+-"
		}
		if !yield(ctx.indent() + lead + "+---------------- " + title + " ----------------\n") {
			return false
		}
		ctx.depth++
		if !truncated {
			if !n.Children[i].render(yield, chain, ctx) {
				return false
			}
		} else {
			remaining := numChildren - width
			plural := ""
			if remaining > 1 {
				plural = "s"
			}
			if !ctx.emit(yield, fmt.Sprintf("and %d more exception%s\n", remaining, plural), "") {
				return false
			}
		}
		if lastSlot && ctx.needClose {
			if !yield(ctx.indent() + "+------------------------------------\n") {
				return false
			}
			ctx.needClose = false
		}
		ctx.depth--
	}

	if isTopLevel {
		// The slot loop always returns to depth 1 here.
		ctx.depth = 0
	}
	return true
}
