package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/sysdoc/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of sysdoc.`,
	// Printing the version needs neither settings nor a profile.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(c *cobra.Command, _ []string) {
		out := c.OutOrStdout()
		fmt.Fprintf(out, "sysdoc version %s\n", cmd.Version)
		fmt.Fprintf(out, "  commit: %s\n", cmd.Commit)
		fmt.Fprintf(out, "  built:  %s\n", cmd.Date)
	},
}
