package errtree

// groupError is a labeled multi-error. It exposes its children through
// Unwrap() []error, so errors.Is and errors.As traverse them, and its
// label through [Labeled], so Capture renders it as a group.
type groupError struct {
	label string
	errs  []error
}

func (g *groupError) Error() string      { return g.label }
func (g *groupError) Unwrap() []error    { return g.errs }
func (g *groupError) GroupLabel() string { return g.label }

// Group returns an error grouping errs under a label, dropping nils.
// All nil returns nil. Unlike errors.Join, a single remaining error is
// still wrapped: a group of one renders with its frame.
func Group(label string, errs ...error) error {
	nz := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			nz = append(nz, e)
		}
	}
	if len(nz) == 0 {
		return nil
	}
	return &groupError{label: label, errs: nz}
}
