package errors

import (
	stderr "errors"
	"fmt"
)

// StartupError is returned once every attempt to bring up a language server instance has failed.
type StartupError struct {
	Attempts int
	Err      error
}

// Error is an implementation of the error interface.
func (s *StartupError) Error() string {
	return fmt.Sprintf("language server failed to start after %d attempt(s): %v", s.Attempts, s.Err)
}

// Unwrap returns the underlying attempt failures.
func (s *StartupError) Unwrap() error {
	return s.Err
}

// IsStartupFailure reports whether a StartupError is part of the error chain.
func IsStartupFailure(e error) bool {
	var se *StartupError
	return stderr.As(e, &se)
}

// StartupAttempts returns the number of attempts made and true if a StartupError is part of the error chain.
func StartupAttempts(e error) (_ int, ok bool) {
	var se *StartupError
	if !stderr.As(e, &se) {
		return 0, false
	}
	return se.Attempts, true
}
