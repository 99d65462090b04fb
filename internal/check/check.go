// Package check defines the pass/fail rules applied to telemetry.
//
// A Check is pure: it receives the portable record of a data source (nil when
// the data could not be resolved) and returns a result node. Checks answer
// "unknown" for a nil record rather than failing.
package check

import (
	"github.com/thoreinstein/sysdoc/internal/datasource"
	"github.com/thoreinstein/sysdoc/internal/result"
)

// Check is a named rule evaluated against telemetry.
type Check interface {
	// Name returns the stable identifier of the check.
	Name() string

	// Apply evaluates the rule. rec is nil when no telemetry is available.
	Apply(rec *datasource.Record) (*result.Result, error)
}

// messages holds the texts a check reports for each outcome.
type messages struct {
	brief   string
	fail    string
	unknown string
	pass    string
}

func (m messages) passed(detail string) *result.Result {
	if detail == "" {
		detail = m.pass
	}
	return result.Pass(m.brief, detail)
}

func (m messages) failed(detail string) *result.Result {
	if detail == "" {
		detail = m.fail
	}
	return result.Fail(m.brief, detail)
}

func (m messages) unknownResult() *result.Result {
	return result.Unknown(m.brief, m.unknown)
}
