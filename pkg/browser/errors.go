package browser

import (
	"fmt"
	"time"
)

// SessionStartError indicates the underlying browser or driver could not be
// launched (missing binary, port conflict, driver not installed).
type SessionStartError struct {
	Kind Kind
	Err  error
}

func (e *SessionStartError) Error() string {
	return fmt.Sprintf("failed to start %s session: %v", e.Kind, e.Err)
}

func (e *SessionStartError) Unwrap() error { return e.Err }

// InvalidSessionStateError indicates a command was issued against a session
// that is not in the Ready state.
type InvalidSessionStateError struct {
	Op    string
	State State
}

func (e *InvalidSessionStateError) Error() string {
	return fmt.Sprintf("%s: session is %s, commands require %s", e.Op, e.State, StateReady)
}

// ElementNotFoundError indicates no element matched the selector within the
// configured wait budget.
type ElementNotFoundError struct {
	Selector string
	Timeout  time.Duration
	Err      error
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("no element matching %q within %s", e.Selector, e.Timeout)
}

func (e *ElementNotFoundError) Unwrap() error { return e.Err }

// AmbiguousSelectorError indicates a selector passed to GetOne matched more
// than one element. Callers that want first-of-many semantics must say so by
// calling GetFirst instead.
type AmbiguousSelectorError struct {
	Selector string
	Matches  int
}

func (e *AmbiguousSelectorError) Error() string {
	return fmt.Sprintf("selector %q matched %d elements, expected exactly one", e.Selector, e.Matches)
}

// VisibilityTimeoutError indicates a matching element never became visible
// (present with non-zero rendered size) within the wait budget.
type VisibilityTimeoutError struct {
	Selector string
	Timeout  time.Duration
	Err      error
}

func (e *VisibilityTimeoutError) Error() string {
	return fmt.Sprintf("element %q not visible within %s", e.Selector, e.Timeout)
}

func (e *VisibilityTimeoutError) Unwrap() error { return e.Err }

// StillPresentError indicates an element expected to disappear was still
// matched when the wait budget elapsed.
type StillPresentError struct {
	Selector string
	Timeout  time.Duration
}

func (e *StillPresentError) Error() string {
	return fmt.Sprintf("element %q still present after %s", e.Selector, e.Timeout)
}

// ConditionTimeoutError indicates a WaitFor predicate never held within the
// wait budget.
type ConditionTimeoutError struct {
	Description string
	Timeout     time.Duration
	Attempts    int
}

func (e *ConditionTimeoutError) Error() string {
	return fmt.Sprintf("condition %q not met within %s (%d polls)", e.Description, e.Timeout, e.Attempts)
}
