package profile

import (
	"fmt"

	"github.com/thoreinstein/sysdoc/internal/check"
	"github.com/thoreinstein/sysdoc/internal/config"
	"github.com/thoreinstein/sysdoc/internal/datasource"
	"github.com/thoreinstein/sysdoc/internal/doctor"
	"github.com/thoreinstein/sysdoc/internal/errors"
)

// LinuxCustom is a generic Linux profile whose thresholds come from the
// host config document. Sections missing from the document add no pairs.
type LinuxCustom struct{}

// Name returns the profile identifier.
func (LinuxCustom) Name() string {
	return "linux_custom"
}

// Build loads the config document and returns the profile's pairs.
func (LinuxCustom) Build(opts Options) ([]*doctor.Pair, error) {
	if opts.ConfigFile == "" {
		return nil, errors.NewConfigError(errors.Wrap(errors.ErrMissingConfig, "linux_custom"))
	}

	doc, err := config.LoadDocument(opts.ConfigFile)
	if err != nil {
		return nil, errors.NewConfigError(err)
	}

	mounts := datasource.NewMounts()
	stream := datasource.NewStream(0)
	sysconf := datasource.NewSysconf()

	p := &pairs{opts: opts}

	if cc := doc.CPU.CoreCount; cc != nil {
		p.add(CPU, check.NewCoreCount(cc.NumCores), sysconf)
	}

	for _, pf := range doc.Disk.PercentFree {
		p.add(Filesystem, check.NewPercentFree(pf.Filesystem, pf.Percent), mounts)
	}

	if ps := doc.Memory.PhysicalSize; ps != nil {
		p.add(Memory, check.NewPhysicalSize(ps.MemSize, ps.Tolerance), sysconf)
	}

	if st := doc.Performance.Stream; st != nil {
		p.add(Performance, streamTriadCheck("stream_triad", st.Triad,
			fmt.Sprintf("Observed performance is less than %g MB/s", st.Triad),
			fmt.Sprintf("Observed performance is more than %g MB/s", st.Triad),
		), stream)
	}

	return p.out, nil
}
