package quiz

import "fmt"

// InvalidParameterError reports a rejected session or search parameter, with
// the offending value so callers can show it back to the user.
type InvalidParameterError struct {
	Parameter string
	Value     any
	Reason    string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Parameter, e.Value, e.Reason)
}

// SessionError reports an operation attempted against a session in the wrong
// state, such as answering after Finish.
type SessionError struct {
	Op     string
	Reason string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session %s: %s", e.Op, e.Reason)
}

// NoCatalogError reports an operation that needs a loaded question catalog
// when none is present.
type NoCatalogError struct {
	Op string
}

func (e *NoCatalogError) Error() string {
	return fmt.Sprintf("%s: no quiz catalog loaded", e.Op)
}
