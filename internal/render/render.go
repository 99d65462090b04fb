// Package render writes result trees and pair listings for people and for
// machines.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/internal/logging"
	"github.com/thoreinstein/sysdoc/internal/result"
)

// Format specifies the output format of a report.
type Format string

const (
	// FormatText produces the wrapped, colorized human report.
	FormatText Format = "text"
	// FormatJSON produces the full tree as JSON.
	FormatJSON Format = "json"
	// FormatYAML produces the full tree as YAML.
	FormatYAML Format = "yaml"
)

// FallbackWidth is the line width used when the output is not a terminal.
const FallbackWidth = 72

// tokenReserve is the room kept after a brief for the longest issue token
// ("UNKNOWN") and a space.
const tokenReserve = 8

// Reporter formats and writes result trees.
type Reporter struct {
	out    io.Writer
	format Format
	width  int

	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithWidth overrides the line width of the text format.
func WithWidth(width int) Option {
	return func(r *Reporter) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithColor forces color on or off for the text format.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.setColor(enabled)
	}
}

// NewReporter creates a Reporter. Width and color follow the terminal
// behind out unless overridden.
func NewReporter(out io.Writer, format Format, opts ...Option) *Reporter {
	r := &Reporter{
		out:    out,
		format: format,
		width:  FallbackWidth,
		green:  color.New(color.FgGreen, color.Bold),
		yellow: color.New(color.FgYellow, color.Bold),
		red:    color.New(color.FgRed),
	}
	if w, ok := logging.TerminalWidth(out); ok && w > tokenReserve {
		r.width = w - tokenReserve
	}
	r.setColor(logging.SupportsColor(out))

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reporter) setColor(enabled bool) {
	for _, c := range []*color.Color{r.green, r.yellow, r.red} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Report writes the tree rooted at root.
func (r *Reporter) Report(root *result.Result) error {
	if root == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(root)
	case FormatYAML:
		return r.reportYAML(root)
	default:
		return r.reportText(root)
	}
}

// reportJSON writes the tree as a single line of JSON.
func (r *Reporter) reportJSON(root *result.Result) error {
	return errors.Wrap(json.NewEncoder(r.out).Encode(root), "encoding JSON report")
}

func (r *Reporter) reportYAML(root *result.Result) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return errors.Wrap(err, "encoding YAML report")
	}
	return errors.Wrap(enc.Close(), "encoding YAML report")
}

// reportText writes the tree in pre-order. Children are indented two
// columns deeper than their parent.
func (r *Reporter) reportText(root *result.Result) error {
	var err error
	root.Walk(func(node *result.Result, depth int) {
		if err != nil {
			return
		}
		err = r.writeNode(node, depth*2)
	})
	return errors.Wrap(err, "writing report")
}

func (r *Reporter) writeNode(node *result.Result, indent int) error {
	brief := Wrap(node.Brief, r.width, indent, indent+2, '.')
	if _, err := fmt.Fprintf(r.out, "%s%s\n", brief, r.issueToken(node.Issue)); err != nil {
		return err
	}

	if node.Detail != "" {
		detail := Wrap(node.Detail, r.width, indent+2, indent+4, ' ')
		if _, err := fmt.Fprintln(r.out, detail); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(r.out, "Level: %s\n", r.priorityToken(node.Priority))
	return err
}

func (r *Reporter) issueToken(i result.Issue) string {
	switch i {
	case result.IssueNo:
		return r.green.Sprint("OK")
	case result.IssueMaybe:
		return r.yellow.Sprint("UNKNOWN")
	case result.IssueYes:
		return r.red.Sprint("NOT OK")
	default:
		return "UNKNOWN"
	}
}

func (r *Reporter) priorityToken(p result.Priority) string {
	switch {
	case p > result.PriorityEmergency || p < result.PriorityDebug:
		return r.yellow.Sprint(p.String())
	case p >= result.PriorityError:
		return r.red.Sprint(p.String())
	case p == result.PriorityWarning:
		return r.yellow.Sprint(p.String())
	default:
		return r.green.Sprint(p.String())
	}
}
