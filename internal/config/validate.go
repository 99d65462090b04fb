package config

import (
	"strconv"
	"strings"

	"github.com/thoreinstein/sysdoc/internal/errors"
)

// Validation errors for config document fields.
var (
	// ErrInvalidCoreCount indicates a core count below one.
	ErrInvalidCoreCount = errors.New("num_cores must be >= 1")

	// ErrInvalidFilesystem indicates a percent_free entry without a filesystem.
	ErrInvalidFilesystem = errors.New("filesystem must be an absolute path")

	// ErrInvalidPercent indicates a percentage outside [0, 100].
	ErrInvalidPercent = errors.New("percent must be between 0 and 100")

	// ErrInvalidMemSize indicates a zero expected memory size.
	ErrInvalidMemSize = errors.New("mem_size must be > 0")

	// ErrInvalidTriad indicates a non-positive bandwidth threshold.
	ErrInvalidTriad = errors.New("triad must be > 0")
)

// Validate checks a Document for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(doc *Document) []error {
	if doc == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cc := doc.CPU.CoreCount; cc != nil && cc.NumCores < 1 {
		errs = append(errs, &FieldError{Field: "cpu.core_count.num_cores", Err: ErrInvalidCoreCount})
	}

	for i, pf := range doc.Disk.PercentFree {
		if !strings.HasPrefix(pf.Filesystem, "/") {
			errs = append(errs, &FieldError{Field: fieldIndex("disk.percent_free", i, "filesystem"), Err: ErrInvalidFilesystem})
		}
		if pf.Percent < 0 || pf.Percent > 100 {
			errs = append(errs, &FieldError{Field: fieldIndex("disk.percent_free", i, "percent"), Err: ErrInvalidPercent})
		}
	}

	if ps := doc.Memory.PhysicalSize; ps != nil && ps.MemSize == 0 {
		errs = append(errs, &FieldError{Field: "memory.physical_size.mem_size", Err: ErrInvalidMemSize})
	}

	if st := doc.Performance.Stream; st != nil && st.Triad <= 0 {
		errs = append(errs, &FieldError{Field: "performance.stream.triad", Err: ErrInvalidTriad})
	}

	return errs
}

func fieldIndex(prefix string, i int, field string) string {
	return prefix + "[" + strconv.Itoa(i) + "]." + field
}

// FieldError represents an error for a specific document field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
