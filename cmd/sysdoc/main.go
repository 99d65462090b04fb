// Package main is the entry point for the sysdoc CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/thoreinstein/sysdoc/cmd/sysdoc/commands"
	"github.com/thoreinstein/sysdoc/internal/errors"
)

func main() {
	os.Exit(exitCode(os.Stderr, commands.Execute()))
}

// exitCode reports err on w and maps it to the process status.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return errors.ExitSuccess
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return errors.ExitUser
	}

	if !exitErr.Silent {
		if exitErr.Err != nil {
			fmt.Fprintf(w, "Error: %v\n", exitErr.Err)
		}
		if exitErr.Suggestion != "" {
			fmt.Fprintln(w, exitErr.Suggestion)
		}
	}
	return exitErr.Code
}
