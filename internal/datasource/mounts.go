package datasource

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/prometheus/procfs"

	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/internal/logging"
)

// MountsName is the record name of the mounted filesystems data source.
const MountsName = "mounts"

// Filesystem is the capacity of one mounted filesystem.
type Filesystem struct {
	MountPoint string `json:"mountpoint"`
	Device     string `json:"device"`
	FSType     string `json:"fstype"`
	TotalBytes uint64 `json:"total_bytes"`
	FreeBytes  uint64 `json:"free_bytes"`
	AvailBytes uint64 `json:"avail_bytes"`
}

// PercentFree returns the share of capacity available to unprivileged users.
func (f Filesystem) PercentFree() float64 {
	if f.TotalBytes == 0 {
		return 0
	}
	return 100 * float64(f.AvailBytes) / float64(f.TotalBytes)
}

// Mounts is the list of mounted filesystems.
type Mounts struct {
	Filesystems []Filesystem `json:"filesystems"`
}

// Find returns the filesystem mounted at mountPoint.
func (m Mounts) Find(mountPoint string) (Filesystem, bool) {
	for _, fs := range m.Filesystems {
		if fs.MountPoint == mountPoint {
			return fs, true
		}
	}
	return Filesystem{}, false
}

// pseudoFS are filesystem types without meaningful capacity.
var pseudoFS = map[string]bool{
	"autofs": true, "binfmt_misc": true, "bpf": true, "cgroup": true,
	"cgroup2": true, "configfs": true, "debugfs": true, "devpts": true,
	"fusectl": true, "hugetlbfs": true, "mqueue": true, "nsfs": true,
	"proc": true, "pstore": true, "securityfs": true, "sysfs": true,
	"tracefs": true,
}

// NewMounts creates the mounted filesystems data source. It is enabled on
// Linux only, where mounts are listed from /proc/self/mountinfo.
func NewMounts() *Source[Mounts] {
	return NewSource(MountsName, func() bool { return runtime.GOOS == "linux" }, collectMounts)
}

func collectMounts(ctx context.Context) (Mounts, error) {
	infos, err := procfs.GetMounts()
	if err != nil {
		return Mounts{}, errors.Wrap(err, "listing mounts")
	}

	logger := logging.FromContext(ctx)
	seen := make(map[string]bool)
	var m Mounts
	for _, mi := range infos {
		if pseudoFS[mi.FSType] || seen[mi.MountPoint] {
			continue
		}
		seen[mi.MountPoint] = true

		fs, err := statFilesystem(mi.MountPoint)
		if err != nil {
			logger.Debug("skipping filesystem", slog.String("mountpoint", mi.MountPoint), slog.Any("error", err))
			continue
		}
		fs.Device = mi.Source
		fs.FSType = mi.FSType
		m.Filesystems = append(m.Filesystems, fs)
	}
	return m, nil
}
