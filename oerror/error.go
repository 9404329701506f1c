package oerror

import "fmt"

// SlideError is the error type returned by the slide module for invalid configuration and
// registry misuse.
type SlideError struct {
	Err string
}

// New formats a new SlideError.
func New(format string, args ...interface{}) *SlideError {
	if len(args) == 0 {
		return &SlideError{Err: format}
	}
	return &SlideError{Err: fmt.Sprintf(format, args...)}
}

func (e *SlideError) Error() string {
	return e.Err
}
