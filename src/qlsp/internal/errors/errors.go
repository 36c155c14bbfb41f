package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

// Is is an alias of the standard library errors.Is.
func Is(err, target error) bool {
	return stderr.Is(err, target)
}

// As is an alias of the standard library errors.As.
func As(err error, target any) bool {
	return stderr.As(err, target)
}

var (
	// ErrHandshakeTimeout reports that the initialize round trip did not complete in time.
	ErrHandshakeTimeout = New("language server initialize timed out")
	// ErrTransportClosed reports that the JSON-RPC transport to the language server has terminated.
	ErrTransportClosed = New("language server transport closed")
	// ErrNotRunning reports that no language server instance is available.
	ErrNotRunning = New("language server not running")
	// ErrServiceClosed reports that the lifecycle service has been shut down.
	ErrServiceClosed = New("language server service closed")
	// ErrRestartLimitExceeded reports that automatic restarts were stopped after too many failures.
	ErrRestartLimitExceeded = New("language server restart limit exceeded")
	// ErrKeyDestroyed reports use of an encryption manager after disposal.
	ErrKeyDestroyed = New("encryption key destroyed")
	// ErrUnknownMethod reports a method missing from the method registry.
	ErrUnknownMethod = New("unknown language server method")
	// ErrMethodKind reports a request sent as a notification or the reverse.
	ErrMethodKind = New("method kind mismatch")
)

// IsUnavailable reports whether the error means no usable language server is present,
// in which case dependents should skip the operation.
func IsUnavailable(e error) bool {
	return stderr.Is(e, ErrNotRunning) ||
		stderr.Is(e, ErrServiceClosed) ||
		stderr.Is(e, ErrRestartLimitExceeded) ||
		stderr.Is(e, ErrTransportClosed) ||
		IsStartupFailure(e)
}
