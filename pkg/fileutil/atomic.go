// Package fileutil provides file system helpers for writing reports and
// reading config documents.
package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/thoreinstein/sysdoc/internal/errors"
)

// ErrFileExists is returned by AtomicCreateFile when the target exists.
var ErrFileExists = errors.New("file already exists")

// AtomicCreateFile writes the output of write to a new file at path.
//
// The data is staged in a temp file in the same directory and linked into
// place only once write succeeds, so readers never observe a partial file.
// An existing file at path is never replaced: ErrFileExists is returned
// instead, whether it existed up front or appeared while writing.
func AtomicCreateFile(path string, perm os.FileMode, write func(w io.Writer) error) error {
	if _, err := os.Lstat(path); err == nil {
		return errors.Wrap(ErrFileExists, path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".sysdoc-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "syncing temp file")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	// Link fails with EEXIST rather than replacing the target.
	if err := os.Link(tmpName, path); err != nil {
		if os.IsExist(err) {
			return errors.Wrap(ErrFileExists, path)
		}
		return errors.Wrap(err, "linking temp file")
	}
	return nil
}
