package ouch

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// defaultDirMode is the mode for directories the engine creates that
// are not described by an archive entry (respecting umask).
const defaultDirMode fs.FileMode = 0755

// Target is the filesystem the engine writes extracted content to.
// Implementations other than [Disk] are mainly useful in tests.
type Target interface {
	// CreateDir creates the directory at path, including missing
	// parents. An already existing directory is not an error.
	CreateDir(path string, mode fs.FileMode) error

	// CreateFile creates the file at path and returns a writer for its
	// content. If overwrite is false and the file exists, an error
	// satisfying errors.Is(err, fs.ErrExist) is returned.
	CreateFile(path string, mode fs.FileMode, overwrite bool) (io.WriteCloser, error)

	// CreateSymlink creates a symlink at newname pointing to oldname.
	CreateSymlink(oldname string, newname string, overwrite bool) error

	// Lstat returns the FileInfo for path without following symlinks.
	Lstat(path string) (fs.FileInfo, error)
}

// Disk is a [Target] backed by the local filesystem.
type Disk struct{}

// NewDisk returns a [Target] that writes to the local filesystem.
func NewDisk() *Disk {
	return &Disk{}
}

// CreateDir creates the directory at path, including missing parents.
func (d *Disk) CreateDir(path string, mode fs.FileMode) error {
	if err := os.MkdirAll(path, mode.Perm()); err != nil {
		return errors.Wrapf(err, "cannot create directory %s", path)
	}
	return nil
}

// CreateFile creates the file at path. The parent directory must
// already exist.
func (d *Disk) CreateFile(path string, mode fs.FileMode, overwrite bool) (io.WriteCloser, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, mode.Perm())
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create file %s", path)
	}
	return f, nil
}

// CreateSymlink creates a symlink at newname pointing to oldname.
func (d *Disk) CreateSymlink(oldname string, newname string, overwrite bool) error {
	if overwrite {
		if err := os.Remove(newname); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "cannot remove existing %s", newname)
		}
	}
	if err := os.MkdirAll(filepath.Dir(newname), defaultDirMode.Perm()); err != nil {
		return errors.Wrapf(err, "cannot create parent directory for %s", newname)
	}
	if err := os.Symlink(oldname, newname); err != nil {
		return errors.Wrapf(err, "cannot create symlink %s", newname)
	}
	return nil
}

// Lstat returns the FileInfo for path without following symlinks.
func (d *Disk) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}
