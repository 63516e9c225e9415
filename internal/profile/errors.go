package profile

import "fmt"

// InlineError represents an unusable inline profile document. Unlike the
// degradable template path, a bad inline profile is a caller mistake and is
// surfaced as an error.
type InlineError struct {
	Message string
	Cause   error
}

func (e *InlineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("inline profile: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("inline profile: %s", e.Message)
}

func (e *InlineError) Unwrap() error {
	return e.Cause
}
