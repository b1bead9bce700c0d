package ouch

import (
	"archive/zip"
	"context"
	"io"
	"io/fs"

	"github.com/pkg/errors"
)

// extractZip extracts a zip archive from ra into dst. Zip stores a
// trailing index, so the source must support random access; the caller
// provides either the archive file itself or a fully buffered image.
func extractZip(ctx context.Context, ra io.ReaderAt, size int64, dst string, c *Config) (int, error) {
	reader, err := zip.NewReader(ra, size)
	if err != nil {
		return 0, errors.Wrap(err, "cannot read zip archive")
	}
	return runExtraction(ctx, &zipWalker{zr: reader}, dst, c)
}

// zipWalker is a walker for zip archives
type zipWalker struct {
	zr *zip.Reader
	fp int
}

// Type returns the file extension for zip archives
func (z *zipWalker) Type() string {
	return "zip"
}

// Next returns the next entry in the zip archive
func (z *zipWalker) Next() (archiveEntry, error) {
	if z.fp >= len(z.zr.File) {
		return nil, io.EOF
	}
	defer func() { z.fp++ }()
	return &zipEntry{z.zr.File[z.fp]}, nil
}

// zipEntry is an entry in a zip archive
type zipEntry struct {
	zf *zip.File
}

// Name returns the name of the entry
func (z *zipEntry) Name() string {
	return z.zf.FileHeader.Name
}

// Size returns the size of the entry
func (z *zipEntry) Size() int64 {
	return int64(z.zf.FileHeader.UncompressedSize64)
}

// Mode returns the mode of the entry
func (z *zipEntry) Mode() fs.FileMode {
	return z.zf.FileHeader.Mode()
}

// Linkname returns the link target of the entry, which zip stores as
// the file content
func (z *zipEntry) Linkname() string {
	rc, err := z.zf.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	return string(data)
}

// IsRegular returns true if the entry is a regular file
func (z *zipEntry) IsRegular() bool {
	return z.zf.FileHeader.Mode().Type() == 0
}

// IsDir returns true if the entry is a directory
func (z *zipEntry) IsDir() bool {
	return z.zf.FileHeader.Mode().Type() == fs.ModeDir
}

// IsSymlink returns true if the entry is a symlink
func (z *zipEntry) IsSymlink() bool {
	return z.zf.FileHeader.Mode().Type() == fs.ModeSymlink
}

// Open returns a reader for the entry
func (z *zipEntry) Open() (io.ReadCloser, error) {
	return z.zf.Open()
}
