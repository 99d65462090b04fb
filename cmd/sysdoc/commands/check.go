package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/sysdoc/internal/doctor"
	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/internal/logging"
	"github.com/thoreinstein/sysdoc/internal/metrics"
	"github.com/thoreinstein/sysdoc/internal/paths"
	"github.com/thoreinstein/sysdoc/internal/profile"
	"github.com/thoreinstein/sysdoc/internal/render"
	"github.com/thoreinstein/sysdoc/internal/result"
)

var (
	checkFile    string
	checkJSON    bool
	checkYAML    bool
	checkMetrics string
)

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "",
		"check telemetry previously captured by 'collect' instead of this host")
	checkCmd.Flags().BoolVarP(&checkJSON, "json", "j", false,
		"output results as JSON")
	checkCmd.Flags().BoolVar(&checkYAML, "yaml", false,
		"output results as YAML")
	checkCmd.Flags().StringVar(&checkMetrics, "metrics", "",
		"write results as a Prometheus textfile to this path")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the host against its system profile",
	Long: `Evaluate every check of the selected profile and print the combined report.

Output modes (mutually exclusive):
  (default)   Wrapped, colorized report
  --json      Machine-readable JSON output
  --yaml      Machine-readable YAML output

Exit codes:
  0 - No issues found
  1 - Issues found, outcome unknown, or invalid configuration`,
	PreRunE: validateCheckFlags,
	RunE:    runCheck,
}

// validateCheckFlags ensures output flags are mutually exclusive.
func validateCheckFlags(_ *cobra.Command, _ []string) error {
	if checkJSON && checkYAML {
		return errors.NewUserError(errors.New("flags --json and --yaml are mutually exclusive"), "")
	}
	return nil
}

func checkFormat() render.Format {
	switch {
	case checkJSON:
		return render.FormatJSON
	case checkYAML:
		return render.FormatYAML
	default:
		return render.FormatText
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	opts, err := runOptions()
	if err != nil {
		return err
	}
	opts.Format = checkFormat()
	if opts.InputFile, err = paths.ExpandHome(checkFile); err != nil {
		return errors.NewUserError(err, "")
	}
	if opts.MetricsFile, err = paths.ExpandHome(checkMetrics); err != nil {
		return errors.NewUserError(err, "")
	}

	runner, err := newRunner(opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if opts.InputFile != "" {
		if err := loadReplay(cmd, runner, opts.InputFile); err != nil {
			return err
		}
	}

	start := time.Now()
	root := runner.Check(ctx)
	elapsed := time.Since(start)
	logger.Debug("check complete", "elapsed", elapsed, "issue", root.Issue, "priority", root.Priority)

	if err := render.NewReporter(cmd.OutOrStdout(), opts.Format).Report(root); err != nil {
		return errors.NewSystemError(err, "")
	}

	if opts.MetricsFile != "" {
		exporter := metrics.New()
		exporter.Record(root, runner.Outcomes(), runner.Stats(), elapsed)
		if err := exporter.WriteTextfile(opts.MetricsFile); err != nil {
			return errors.NewSystemError(err, "Check that the metrics directory exists and is writable")
		}
	}

	if root.Issue != result.IssueNo {
		return errors.NewIssuesError()
	}
	return nil
}

// newRunner builds the profile's pairs into a runner.
func newRunner(opts profile.Options) (*doctor.Runner, error) {
	pairs, err := profile.Build(opts)
	if err != nil {
		return nil, err
	}

	runner := doctor.NewRunner(doctor.NewRoot(), doctor.WithParallelism(opts.Parallelism))
	runner.AddPairs(pairs)
	return runner, nil
}

func loadReplay(cmd *cobra.Command, runner *doctor.Runner, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.NewConfigError(errors.Wrap(err, "opening replay file"))
	}
	defer f.Close()

	stats, err := runner.LoadData(cmd.Context(), f)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	logging.FromContext(cmd.Context()).Info("replay loaded",
		"file", path,
		"loaded", stats.Loaded,
		"skipped", stats.Skipped,
		"malformed", stats.Malformed,
	)
	return nil
}
