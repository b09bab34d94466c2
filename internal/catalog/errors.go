package catalog

import "fmt"

// ParseError indicates the quiz document as a whole is unusable: the top
// level is not an array, or no valid question survived filtering. Individual
// malformed questions are warnings, not errors.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse quiz document: %s: %v", e.Reason, e.Err)
	}
	return "parse quiz document: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }
