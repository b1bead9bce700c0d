package ouch

import (
	"io"
	"io/fs"
)

// archiveWalker is an interface that represents an entry iterator over
// an archive
type archiveWalker interface {
	Type() string
	Next() (archiveEntry, error)
}

// archiveEntry is an interface that represents a single file in an
// archive
type archiveEntry interface {
	IsDir() bool
	IsRegular() bool
	IsSymlink() bool
	Linkname() string
	Mode() fs.FileMode
	Name() string
	Open() (io.ReadCloser, error)
	Size() int64
}
