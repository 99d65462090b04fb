package datasource

import (
	"context"
	"os"
	"runtime"

	"github.com/prometheus/procfs"
)

// SysconfName is the record name of the sysconf data source.
const SysconfName = "sysconf"

// Sysconf describes the processor count and memory size of the host.
type Sysconf struct {
	NumCores       int    `json:"nprocessors_onln"`
	PageSize       int    `json:"page_size"`
	PhysicalMemory uint64 `json:"physical_memory"`
}

// NewSysconf creates the sysconf data source. Physical memory is read from
// /proc/meminfo and left at zero where procfs is unavailable.
func NewSysconf() *Source[Sysconf] {
	return NewSource(SysconfName, nil, collectSysconf(procfs.DefaultMountPoint))
}

func collectSysconf(procRoot string) CollectFunc[Sysconf] {
	return func(_ context.Context) (Sysconf, error) {
		s := Sysconf{
			NumCores: runtime.NumCPU(),
			PageSize: os.Getpagesize(),
		}

		fs, err := procfs.NewFS(procRoot)
		if err != nil {
			return s, nil
		}
		mi, err := fs.Meminfo()
		if err != nil || mi.MemTotal == nil {
			return s, nil
		}
		// meminfo reports kB
		s.PhysicalMemory = *mi.MemTotal * 1024
		return s, nil
	}
}
