// Package logging provides structured logging for the sysdoc CLI using slog.
//
// The package supports both text and JSON output formats, the --log-level
// grammar (critical, error, warning, info, debug, trace), and helpers for
// testing. All loggers are based on the standard library's [log/slog] package.
//
// # Basic Usage
//
//	level, err := logging.ParseLevel("info")
//	if err != nil {
//		return err
//	}
//	logger := logging.New(logging.Config{
//		Level:  level,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("evaluating data source", "data", "sysconf")
//
// # Context
//
// The run logger travels in the context handed to the orchestrator:
//
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("loading data")
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
