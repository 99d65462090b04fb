package check

import (
	"fmt"

	"github.com/thoreinstein/sysdoc/internal/datasource"
	"github.com/thoreinstein/sysdoc/internal/result"
)

// PercentFree verifies a filesystem has at least a minimum share of free space.
type PercentFree struct {
	filesystem string
	percent    float64
	msg        messages
}

var _ Check = (*PercentFree)(nil)

// NewPercentFree creates a free space check for the filesystem mounted at fs.
func NewPercentFree(fs string, percent float64) *PercentFree {
	return &PercentFree{
		filesystem: fs,
		percent:    percent,
		msg: messages{
			brief:   fmt.Sprintf("Checking free space on %s", fs),
			unknown: "Unable to perform check",
		},
	}
}

// Name returns the check identifier.
func (c *PercentFree) Name() string {
	return "percent_free:" + c.filesystem
}

// Apply compares the available space of the filesystem to the threshold. A
// filesystem missing from the telemetry yields an unknown result.
func (c *PercentFree) Apply(rec *datasource.Record) (*result.Result, error) {
	if rec == nil {
		return c.msg.unknownResult(), nil
	}

	var m datasource.Mounts
	if err := rec.Decode(&m); err != nil {
		return nil, err
	}

	fs, ok := m.Find(c.filesystem)
	if !ok {
		return result.Unknown(c.msg.brief, fmt.Sprintf("Filesystem %s not found", c.filesystem)), nil
	}

	free := fs.PercentFree()
	detail := fmt.Sprintf("%.1f%% free, expected at least %.1f%%", free, c.percent)
	if free >= c.percent {
		return c.msg.passed(detail), nil
	}
	return c.msg.failed(detail), nil
}
