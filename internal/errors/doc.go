// Package errors provides error handling conventions for the sysdoc CLI.
//
// This package defines the sentinel errors that make up the run's failure
// taxonomy, an ExitError type for CLI exit code handling, and exit code
// constants. Wrapping helpers are thin re-exports of
// github.com/cockroachdb/errors so callers need a single import.
//
// # Sentinel Errors
//
// Only [ErrConfig] aborts a run. The per-pair errors ([ErrDataSourceDisabled],
// [ErrDataSourceEvaluation], [ErrCheckExecution]) and [ErrReplayParse] are
// logged at the pair or line boundary and never escalate:
//
//	if errors.Is(err, sderrors.ErrConfig) {
//	    // fatal, print diagnostic and exit 1
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): run completed and the aggregated issue is NO
//   - ExitUser (1): aggregated issue is MAYBE or YES, or a configuration error
//   - ExitSystem (2): I/O failure outside the run (unwritable output, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and an optional
// suggestion:
//
//	err := sderrors.NewConfigError(errors.Wrap(sderrors.ErrUnknownProfile, "building checks"))
//	var exitErr *sderrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
