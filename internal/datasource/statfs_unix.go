//go:build linux || darwin

package datasource

import (
	"golang.org/x/sys/unix"

	"github.com/thoreinstein/sysdoc/internal/errors"
)

func statFilesystem(mountPoint string) (Filesystem, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(mountPoint, &st); err != nil {
		return Filesystem{}, errors.Wrapf(err, "statfs %s", mountPoint)
	}

	bsize := uint64(st.Bsize)
	return Filesystem{
		MountPoint: mountPoint,
		TotalBytes: uint64(st.Blocks) * bsize,
		FreeBytes:  uint64(st.Bfree) * bsize,
		AvailBytes: uint64(st.Bavail) * bsize,
	}, nil
}
