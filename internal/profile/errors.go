package profile

import "fmt"

// NotFoundError reports that a source does not know the requested profile
// name. It is an expected outcome: the caller falls back to passthrough.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found", e.Name)
}

// ParseError reports a malformed profiles file. A source that hits one
// degrades to empty rather than surfacing it to the user.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing profiles: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing profiles: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
