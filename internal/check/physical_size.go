package check

import (
	"fmt"

	"github.com/thoreinstein/sysdoc/internal/datasource"
	"github.com/thoreinstein/sysdoc/internal/result"
)

// PhysicalSize verifies the installed memory is within tolerance of an
// expected size, both in bytes.
type PhysicalSize struct {
	size      uint64
	tolerance uint64
	msg       messages
}

var _ Check = (*PhysicalSize)(nil)

// NewPhysicalSize creates a physical memory size check.
func NewPhysicalSize(size, tolerance uint64) *PhysicalSize {
	return &PhysicalSize{
		size:      size,
		tolerance: tolerance,
		msg: messages{
			brief:   "Checking physical memory size",
			unknown: "Unable to perform check",
		},
	}
}

// Name returns the check identifier.
func (c *PhysicalSize) Name() string {
	return "physical_size"
}

// Apply compares the reported memory size to the expected size.
func (c *PhysicalSize) Apply(rec *datasource.Record) (*result.Result, error) {
	if rec == nil {
		return c.msg.unknownResult(), nil
	}

	var s datasource.Sysconf
	if err := rec.Decode(&s); err != nil {
		return nil, err
	}
	if s.PhysicalMemory == 0 {
		return c.msg.unknownResult(), nil
	}

	var diff uint64
	if s.PhysicalMemory > c.size {
		diff = s.PhysicalMemory - c.size
	} else {
		diff = c.size - s.PhysicalMemory
	}

	detail := fmt.Sprintf("%d bytes found, expected %d +/- %d", s.PhysicalMemory, c.size, c.tolerance)
	if diff <= c.tolerance {
		return c.msg.passed(detail), nil
	}
	return c.msg.failed(detail), nil
}
