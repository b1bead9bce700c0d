//go:build !norar

package ouch

import (
	"context"
	"io"
	"io/fs"

	"github.com/nwaples/rardecode"
	"github.com/pkg/errors"
)

// rarSupported reports whether the rar extractor is part of the build.
const rarSupported = true

// extractRar is a function pointer to the rar extractor so tests can
// stand in for it.
var extractRar = processRar

// processRar extracts the rar archive at path into dst. The rar
// decoder works on a file path rather than a stream; nested inputs are
// spooled to a temporary file by the caller first.
func processRar(ctx context.Context, path string, dst string, c *Config) (int, error) {
	a, err := rardecode.OpenReader(path, "")
	if err != nil {
		return 0, errors.Wrap(err, "cannot open rar archive")
	}
	defer a.Close()
	return runExtraction(ctx, &rarWalker{r: &a.Reader}, dst, c)
}

// rarWalker is a walker for rar archives
type rarWalker struct {
	r *rardecode.Reader
}

// Type returns the file extension for rar archives
func (rw *rarWalker) Type() string {
	return "rar"
}

// Next returns the next entry in the rar archive
func (rw *rarWalker) Next() (archiveEntry, error) {
	fh, err := rw.r.Next()
	if err != nil {
		return nil, err
	}
	return &rarEntry{fh, rw.r}, nil
}

// rarEntry is an entry in a rar archive
type rarEntry struct {
	f *rardecode.FileHeader
	r io.Reader
}

// Name returns the name of the entry
func (r *rarEntry) Name() string {
	return r.f.Name
}

// Size returns the size of the entry
func (r *rarEntry) Size() int64 {
	return r.f.UnPackedSize
}

// Mode returns the mode of the entry
func (r *rarEntry) Mode() fs.FileMode {
	return r.f.Mode()
}

// Linkname symlinks are not supported
func (r *rarEntry) Linkname() string {
	return ""
}

// IsRegular returns true if the entry is a regular file
func (r *rarEntry) IsRegular() bool {
	return r.f.Mode().IsRegular()
}

// IsDir returns true if the entry is a directory
func (r *rarEntry) IsDir() bool {
	return r.f.IsDir
}

// IsSymlink returns true if the entry is a symlink
func (r *rarEntry) IsSymlink() bool {
	return false
}

// Open returns a reader for the entry
func (r *rarEntry) Open() (io.ReadCloser, error) {
	return io.NopCloser(r.r), nil
}
