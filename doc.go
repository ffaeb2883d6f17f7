// Package errtree renders trees of chained and grouped errors as nested,
// visually framed text blocks.
//
// A tree is a [Node]: a leaf describes a single error, a group holds an
// ordered list of sub-errors. Every node may also carry a cause link, a
// context link, and preformatted stack text. The central entry points are
// [Write] and [Marshal], which render a node with a box-drawing frame around
// each group, numbered slots for its children, and separator banners between
// the links of a causal chain. [Node.Lines] exposes the same rendering as a
// lazy one-shot sequence of text chunks.
//
// # Building Trees
//
// Trees can be built by hand, but the usual path is [Capture], which walks a
// live error value:
//
//   - Unwrap() []error → group children
//   - Unwrap() error → cause link
//
// Optional interfaces refine the capture:
//
//   - [Labeled] — group message for a multi-error
//   - [Contexted] — context link ("during handling of X, Y occurred")
//   - [ContextSuppressor] — hides the context link from rendering
//   - [Traced] — preformatted stack text for foreign errors
//
// [Group] constructs a labeled multi-error that implements [Labeled] and
// Unwrap() []error, so errors.Is and errors.As traverse its children:
//
//	err := errtree.Group("startup failed", dbErr, cacheErr)
//	errtree.Write(os.Stderr, errtree.Capture(err), true)
//
// [WithStack] attaches call frames to an error; Capture folds them into the
// node's stack text rather than treating the wrapper as a cause.
//
// # Rendering
//
// Rendering is deterministic and pull-based. Chains print oldest link first,
// so the causal root appears above the error it led to. Groups are framed:
//
//	  | startup failed (2 sub-exceptions)
//	  +-+---------------- 1 ----------------
//	    | db: connection refused
//	    +---------------- 2 ----------------
//	    | cache: timeout
//	    +------------------------------------
//
// Wide groups are cut off after [MaxGroupWidth] children with an
// "and N more exceptions" slot; nesting beyond [MaxGroupDepth] collapses to a
// single banner line. Both are process-wide tunables, as is [MaxLineWidth],
// which truncates rendered lines to a display width.
//
// # Reporting
//
// [Handler] writes a fully rendered tree to an error stream, os.Stderr by
// default. [Install] registers a process-wide handler exactly once; it
// refuses to replace a handler somebody else already installed. [Report]
// routes an error through the installed handler:
//
//	if err := run(); err != nil {
//		errtree.Report(err)
//	}
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNilNode] — Write or Marshal called with a nil node
package errtree
