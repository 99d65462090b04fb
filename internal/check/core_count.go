package check

import (
	"fmt"

	"github.com/thoreinstein/sysdoc/internal/datasource"
	"github.com/thoreinstein/sysdoc/internal/result"
)

// CoreCount verifies the host has at least a minimum number of cores.
type CoreCount struct {
	min int
	msg messages
}

var _ Check = (*CoreCount)(nil)

// NewCoreCount creates a core count check against the sysconf data source.
func NewCoreCount(minCores int) *CoreCount {
	return &CoreCount{
		min: minCores,
		msg: messages{
			brief:   "Checking core count",
			unknown: "Unable to perform check",
		},
	}
}

// Name returns the check identifier.
func (c *CoreCount) Name() string {
	return "core_count"
}

// Apply compares the reported core count to the minimum.
func (c *CoreCount) Apply(rec *datasource.Record) (*result.Result, error) {
	if rec == nil {
		return c.msg.unknownResult(), nil
	}

	var s datasource.Sysconf
	if err := rec.Decode(&s); err != nil {
		return nil, err
	}

	detail := fmt.Sprintf("%d cores found, expected at least %d", s.NumCores, c.min)
	if s.NumCores >= c.min {
		return c.msg.passed(detail), nil
	}
	return c.msg.failed(detail), nil
}
