package processor

import "fmt"

// CreationError reports that a processor could not be built from a profile,
// either because the profile type has no implementation or because the
// backend is unreachable. It drives fallback to passthrough.
type CreationError struct {
	Reason string
	Err    error
}

func (e *CreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("creating processor: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("creating processor: %s", e.Reason)
}

func (e *CreationError) Unwrap() error { return e.Err }

// ProcessingError reports that an otherwise-available processor failed at
// run time. Only the Fallback decorator handles it.
type ProcessingError struct {
	Execution CommandExecution
	Err       error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing output of %q: %v", e.Execution.CommandLine(), e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }
