package errorkit

import "fmt"

// Error is a string based error kind, so sentinel errors can be declared as constants:
//
//	const ErrNotFound errorkit.Error = "not found"
type Error string

func (err Error) Error() string { return string(err) }

// Wrap tags cause with the error kind.
// The result matches both err and cause with errors.Is and errors.As,
// and its message is "[<kind>] <cause>".
// A nil cause gives back the kind itself.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return &kindError{kind: err, cause: cause}
}

// F tags a formatted message with the error kind. The format accepts %w.
func (err Error) F(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

type kindError struct {
	kind  Error
	cause error
}

func (e *kindError) Error() string {
	return "[" + string(e.kind) + "] " + e.cause.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.cause}
}
