package profile

import (
	"log/slog"
	"slices"

	"github.com/thoreinstein/sysdoc/internal/render"
)

// Options is the configuration of one run. It is built once from flags and
// settings and not modified afterwards.
type Options struct {
	// Categories selects the check pairs to build.
	Categories []Category

	// System is the host profile identifier.
	System string

	// ConfigFile is the host config document, required by some profiles.
	ConfigFile string

	// InputFile is a replay stream to load before checking.
	InputFile string

	// OutputFile receives collected records instead of stdout.
	OutputFile string

	// Format selects the check report format.
	Format render.Format

	// LogLevel is the minimum level logged.
	LogLevel slog.Level

	// Parallelism bounds the number of pairs evaluated at once.
	// Zero means GOMAXPROCS.
	Parallelism int

	// MetricsFile receives a Prometheus textfile after a check run.
	MetricsFile string
}

// Has reports whether c is selected.
func (o Options) Has(c Category) bool {
	return slices.Contains(o.Categories, c)
}
