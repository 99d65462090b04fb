package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/sysdoc/internal/doctor"
	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/internal/paths"
	"github.com/thoreinstein/sysdoc/pkg/fileutil"
)

var collectFile string

func init() {
	collectCmd.Flags().StringVarP(&collectFile, "file", "f", "",
		"write records to this new file instead of stdout")
	rootCmd.AddCommand(collectCmd)
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Capture telemetry without checking it",
	Long: `Evaluate the data sources of the selected profile and write them as
newline-delimited JSON records, one per distinct data source.

The output can be checked later with 'sysdoc check --file'. An existing
output file is never overwritten.`,
	RunE: runCollect,
}

func runCollect(cmd *cobra.Command, _ []string) error {
	opts, err := runOptions()
	if err != nil {
		return err
	}
	if opts.OutputFile, err = paths.ExpandHome(collectFile); err != nil {
		return errors.NewUserError(err, "")
	}

	if opts.OutputFile != "" {
		// Fail before evaluating anything; collection can be slow.
		if _, err := os.Lstat(opts.OutputFile); err == nil {
			return errors.NewUserError(errors.Wrap(fileutil.ErrFileExists, opts.OutputFile),
				"Choose a new output file")
		}
	}

	runner, err := newRunner(opts)
	if err != nil {
		return err
	}

	lines, err := runner.Collect(cmd.Context())
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	if opts.OutputFile == "" {
		if err := doctor.WriteLines(cmd.OutOrStdout(), lines); err != nil {
			return errors.NewSystemError(err, "")
		}
		return nil
	}

	err = fileutil.AtomicCreateFile(opts.OutputFile, 0644, func(w io.Writer) error {
		return doctor.WriteLines(w, lines)
	})
	switch {
	case errors.Is(err, fileutil.ErrFileExists):
		return errors.NewUserError(err, "Choose a new output file")
	case err != nil:
		return errors.NewSystemError(err, "")
	}
	return nil
}
