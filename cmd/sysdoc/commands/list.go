package commands

import (
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/sysdoc/internal/doctor"
	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/internal/render"
)

var (
	listJSON        bool
	listInteractive bool
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false,
		"output the pairs as JSON")
	listCmd.Flags().BoolVarP(&listInteractive, "interactive", "i", false,
		"browse the pairs with a fuzzy finder")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the checks of the system profile",
	Long: `List each check of the selected profile with the data source it uses.
Nothing is evaluated.`,
	PreRunE: validateListFlags,
	RunE:    runList,
}

func validateListFlags(_ *cobra.Command, _ []string) error {
	if listJSON && listInteractive {
		return errors.NewUserError(errors.New("flags --json and --interactive are mutually exclusive"), "")
	}
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	opts, err := runOptions()
	if err != nil {
		return err
	}

	runner, err := newRunner(opts)
	if err != nil {
		return err
	}
	entries := runner.List()

	switch {
	case listJSON:
		err = render.ListJSON(cmd.OutOrStdout(), entries)
	case listInteractive:
		err = runInteractiveList(cmd.OutOrStdout(), entries)
	default:
		err = render.List(cmd.OutOrStdout(), entries)
	}
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	return nil
}

func runInteractiveList(w io.Writer, entries []doctor.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No checks selected.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", entries[i].Check, entries[i].Data)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			e := entries[i]
			return fmt.Sprintf("Check: %s\nData: %s\nCategory: %s", e.Check, e.Data, e.Category)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive list failed")
	}

	e := entries[idx]
	fmt.Fprintf(w, "Check: %s\n", e.Check)
	fmt.Fprintf(w, "Data: %s\n", e.Data)
	fmt.Fprintf(w, "Category: %s\n", e.Category)
	return nil
}
