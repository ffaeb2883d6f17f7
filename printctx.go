package errtree

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// printContext is the mutable rendering state threaded through one render
// call. Each top-level render constructs its own; a printContext is never
// shared across concurrent renders.
type printContext struct {
	depth     int
	seen      map[*Node]struct{} // reserved for cycle protection
	needClose bool
}

func newPrintContext() *printContext {
	return &printContext{seen: make(map[*Node]struct{})}
}

// indent returns the leading whitespace for the current group depth.
func (ctx *printContext) indent() string {
	return strings.Repeat(" ", 2*ctx.depth)
}

// emit yields text with every line prefixed by the current indent plus a
// margin column. margin "" selects the default "|" character. At depth 0
// no margin is drawn. Blank lines are prefixed too, so the margin column
// stays unbroken down the left edge of a block.
func (ctx *printContext) emit(yield func(string) bool, text, margin string) bool {
	if margin == "" {
		margin = "|"
	}
	prefix := ctx.indent()
	if ctx.depth > 0 {
		prefix += margin + " "
	}
	return yield(prefixLines(text, prefix))
}

// prefixLines prepends prefix to every line of text, including a trailing
// line without a final newline. No line is skipped.
func prefixLines(text, prefix string) string {
	if prefix == "" || text == "" {
		return text
	}
	var sb strings.Builder
	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line = text[:i+1]
		}
		text = text[len(line):]
		sb.WriteString(prefix)
		sb.WriteString(line)
	}
	return sb.String()
}

// clipLines truncates each line of a chunk to the given display width,
// keeping line terminators intact. Widths of 3 or fewer columns drop the
// "..." marker because it would not fit.
func clipLines(chunk string, width int) string {
	var sb strings.Builder
	for len(chunk) > 0 {
		line := chunk
		if i := strings.IndexByte(chunk, '\n'); i >= 0 {
			line = chunk[:i+1]
		}
		chunk = chunk[len(line):]
		body, nl := strings.CutSuffix(line, "\n")
		if runewidth.StringWidth(body) > width {
			if width <= 3 {
				body = runewidth.Truncate(body, width, "")
			} else {
				body = runewidth.Truncate(body, width, "...")
			}
		}
		sb.WriteString(body)
		if nl {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
