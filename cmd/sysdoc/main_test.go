package main

import (
	"bytes"
	"testing"

	"github.com/thoreinstein/sysdoc/internal/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{
			name:     "success",
			err:      nil,
			wantCode: errors.ExitSuccess,
		},
		{
			name:     "issues found is silent",
			err:      errors.NewIssuesError(),
			wantCode: errors.ExitUser,
		},
		{
			name:     "config error prints suggestion",
			err:      errors.NewConfigError(errors.ErrMissingConfig),
			wantCode: errors.ExitUser,
			wantOut:  "Error: a configuration file must be specified\nRun: sysdoc --help\n",
		},
		{
			name:     "wrapped system error",
			err:      errors.Wrap(errors.NewSystemError(errors.New("disk full"), ""), "executing root command"),
			wantCode: errors.ExitSystem,
			wantOut:  "Error: disk full\n",
		},
		{
			name:     "plain error",
			err:      errors.New("unknown flag: --bogus"),
			wantCode: errors.ExitUser,
			wantOut:  "Error: unknown flag: --bogus\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got := exitCode(&buf, tt.err)
			if got != tt.wantCode {
				t.Errorf("exitCode() = %d, want %d", got, tt.wantCode)
			}
			if buf.String() != tt.wantOut {
				t.Errorf("output = %q, want %q", buf.String(), tt.wantOut)
			}
		})
	}
}
