package check

import (
	"github.com/thoreinstein/sysdoc/internal/datasource"
	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/internal/result"
)

// Rule reports whether the telemetry satisfies a condition.
type Rule func(rec *datasource.Record) (bool, error)

// RulesEngine passes when every rule holds.
type RulesEngine struct {
	name  string
	rules []Rule
	msg   messages
}

var _ Check = (*RulesEngine)(nil)

// NewRulesEngine creates a rules engine check. brief names the check; fail,
// unknown and pass are the details reported for each outcome.
func NewRulesEngine(name, brief, fail, unknown, pass string) *RulesEngine {
	return &RulesEngine{
		name: name,
		msg: messages{
			brief:   brief,
			fail:    fail,
			unknown: unknown,
			pass:    pass,
		},
	}
}

// AddRule appends a rule.
func (c *RulesEngine) AddRule(r Rule) *RulesEngine {
	c.rules = append(c.rules, r)
	return c
}

// Name returns the check identifier.
func (c *RulesEngine) Name() string {
	return c.name
}

// Apply evaluates the rules in order; the first failing rule decides.
func (c *RulesEngine) Apply(rec *datasource.Record) (*result.Result, error) {
	if rec == nil {
		return c.msg.unknownResult(), nil
	}
	if len(c.rules) == 0 {
		return nil, errors.Newf("rules engine %s has no rules", c.name)
	}

	for i, rule := range c.rules {
		ok, err := rule(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %d", i)
		}
		if !ok {
			return c.msg.failed(""), nil
		}
	}
	return c.msg.passed(""), nil
}

// StreamTriadAtLeast returns a rule requiring STREAM triad bandwidth of at
// least mbps MB/s.
func StreamTriadAtLeast(mbps float64) Rule {
	return func(rec *datasource.Record) (bool, error) {
		var s datasource.Stream
		if err := rec.Decode(&s); err != nil {
			return false, err
		}
		return s.Triad >= mbps, nil
	}
}
