package profile

import (
	"github.com/thoreinstein/sysdoc/internal/check"
	"github.com/thoreinstein/sysdoc/internal/datasource"
	"github.com/thoreinstein/sysdoc/internal/doctor"
)

// MacBookPro102 is the profile of a 2012 MacBook Pro with fixed thresholds.
type MacBookPro102 struct{}

// Name returns the profile identifier.
func (MacBookPro102) Name() string {
	return "MacBookPro10,2"
}

// Build returns the profile's pairs.
func (MacBookPro102) Build(opts Options) ([]*doctor.Pair, error) {
	mounts := datasource.NewMounts()
	stream := datasource.NewStream(0)
	sysconf := datasource.NewSysconf()

	p := &pairs{opts: opts}
	p.add(CPU, check.NewCoreCount(4), sysconf)
	p.add(Filesystem, check.NewPercentFree("/", 5), mounts)
	p.add(Memory, check.NewPhysicalSize(8<<30, 1<<20), sysconf)
	p.add(Performance, streamTriadCheck("stream_triad", 12000,
		"Observed performance is less than 12000 MB/s",
		"Observed performance is more than 12000 MB/s",
	), stream)
	return p.out, nil
}
