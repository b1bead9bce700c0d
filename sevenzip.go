package ouch

import (
	"context"
	"io"
	"io/fs"

	"github.com/bodgit/sevenzip"
	"github.com/pkg/errors"
)

// extractSevenZip extracts a 7z archive from ra into dst. The 7z
// reader needs random access over the complete archive, which is why
// the engine always materializes the decoded bytes before calling it.
func extractSevenZip(ctx context.Context, ra io.ReaderAt, size int64, dst string, c *Config) (int, error) {
	reader, err := sevenzip.NewReader(ra, size)
	if err != nil {
		return 0, errors.Wrap(err, "cannot read 7z archive")
	}
	return runExtraction(ctx, &sevenZipWalker{r: reader}, dst, c)
}

// sevenZipWalker is a walker for 7z archives
type sevenZipWalker struct {
	r  *sevenzip.Reader
	fp int
}

// Type returns the file extension for 7z archives
func (z *sevenZipWalker) Type() string {
	return "7z"
}

// Next returns the next entry in the 7z archive
func (z *sevenZipWalker) Next() (archiveEntry, error) {
	if z.fp >= len(z.r.File) {
		return nil, io.EOF
	}
	defer func() { z.fp++ }()
	return &sevenZipEntry{z.r.File[z.fp]}, nil
}

// sevenZipEntry is an entry in a 7z archive
type sevenZipEntry struct {
	f *sevenzip.File
}

// Name returns the name of the entry
func (z *sevenZipEntry) Name() string {
	return z.f.Name
}

// Size returns the size of the entry
func (z *sevenZipEntry) Size() int64 {
	return z.f.FileInfo().Size()
}

// Mode returns the mode of the entry
func (z *sevenZipEntry) Mode() fs.FileMode {
	return z.f.FileInfo().Mode()
}

// Linkname returns the linkname of the entry
// Remark: 7z does not support symlinks
func (z *sevenZipEntry) Linkname() string {
	return ""
}

// IsRegular returns true if the entry is a regular file
func (z *sevenZipEntry) IsRegular() bool {
	return z.f.FileInfo().Mode().IsRegular()
}

// IsDir returns true if the entry is a directory
func (z *sevenZipEntry) IsDir() bool {
	return z.f.FileInfo().Mode().IsDir()
}

// IsSymlink returns true if the entry is a symlink
// Remark: 7z does not support symlinks
func (z *sevenZipEntry) IsSymlink() bool {
	return false
}

// Open returns a reader for the entry
func (z *sevenZipEntry) Open() (io.ReadCloser, error) {
	return z.f.Open()
}
