//go:build !linux && !darwin

package datasource

import (
	"github.com/thoreinstein/sysdoc/internal/errors"
)

func statFilesystem(mountPoint string) (Filesystem, error) {
	return Filesystem{}, errors.Newf("statfs %s: unsupported platform", mountPoint)
}
