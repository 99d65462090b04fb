package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates problems were found or the configuration is invalid.
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for the run's failure taxonomy.
var (
	// ErrConfig marks fatal configuration problems. It is the only error
	// kind that aborts a run.
	ErrConfig = crdb.New("configuration error")

	// ErrUnknownProfile indicates the requested host profile is not registered.
	ErrUnknownProfile = crdb.New("unknown system profile")

	// ErrMissingConfig indicates a profile requires a config document but none was given.
	ErrMissingConfig = crdb.New("a configuration file must be specified")

	// ErrDataSourceDisabled indicates a data source does not apply to this host.
	ErrDataSourceDisabled = crdb.New("data source is not enabled")

	// ErrDataSourceEvaluation indicates a data source failed to collect telemetry.
	ErrDataSourceEvaluation = crdb.New("error evaluating data source")

	// ErrCheckExecution indicates a check failed to produce a result.
	ErrCheckExecution = crdb.New("error performing check")

	// ErrReplayParse indicates a malformed record in a replay stream.
	ErrReplayParse = crdb.New("malformed replay record")

	// ErrIssuesFound is returned by the check command when the aggregated
	// issue is MAYBE or YES. It carries no diagnostic of its own.
	ErrIssuesFound = crdb.New("issues found")
)

// Re-exports of github.com/cockroachdb/errors.
var (
	New    = crdb.New
	Newf   = crdb.Newf
	Wrap   = crdb.Wrap
	Wrapf  = crdb.Wrapf
	Is     = crdb.Is
	As     = crdb.As
	Mark   = crdb.Mark
	Unwrap = crdb.Unwrap
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string

	// Silent suppresses the diagnostic; only the exit code is reported.
	Silent bool
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError marks err as a configuration error and wraps it in an
// ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	if err != nil && !crdb.Is(err, ErrConfig) {
		err = crdb.Mark(err, ErrConfig)
	}
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: sysdoc --help",
	}
}

// NewIssuesError returns the silent ExitError used when checks found problems.
func NewIssuesError() *ExitError {
	return &ExitError{
		Err:    ErrIssuesFound,
		Code:   ExitUser,
		Silent: true,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
