package matsim

import "fmt"

// ParseError reports a MATSim input that could not be read: a missing or
// unreadable file, malformed XML, or a network without its top-level
// sections.
type ParseError struct {
	Path string // input file
	Kind string // "network" or "plans"
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s file %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
