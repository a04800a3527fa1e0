// Package apperr defines the error type used across worktrack.
package apperr

// Error is an application error with a user-facing message and an
// optional underlying cause.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap associates an underlying cause with a copy of e.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
	}
}
