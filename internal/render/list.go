package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/thoreinstein/sysdoc/internal/doctor"
	"github.com/thoreinstein/sysdoc/internal/errors"
)

const listColumn = 30

// List writes the pairs as a two column table of check and data source
// names.
func List(w io.Writer, entries []doctor.Entry) error {
	rule := strings.Repeat("-", listColumn)
	if _, err := fmt.Fprintf(w, "%-*s  %-*s\n", listColumn, "Check", listColumn, "Data"); err != nil {
		return errors.Wrap(err, "writing list")
	}
	if _, err := fmt.Fprintf(w, "%s  %s\n", rule, rule); err != nil {
		return errors.Wrap(err, "writing list")
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%-*s  %-*s\n", listColumn, e.Check, listColumn, e.Data); err != nil {
			return errors.Wrap(err, "writing list")
		}
	}
	return nil
}

// ListJSON writes the pairs as an indented JSON array.
func ListJSON(w io.Writer, entries []doctor.Entry) error {
	if entries == nil {
		entries = []doctor.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(entries), "encoding JSON list")
}
