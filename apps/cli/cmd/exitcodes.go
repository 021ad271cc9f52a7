package cmd

import "errors"

// Exit codes for the areq CLI
const (
	// ExitSuccess indicates the request completed with a non-error status
	ExitSuccess = 0

	// ExitHTTPError indicates the server answered with a 4xx or 5xx status
	ExitHTTPError = 1

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// codedError carries an exit code alongside the error shown to the user.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	return &codedError{code: code, err: err}
}

func exitCode(err error) int {
	var coded *codedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return ExitUsageError
}
