package ouch

import (
	"compress/gzip"
	"io"
)

// decompressGzipStream returns an io.Reader that decompresses src with
// the gzip algorithm.
func decompressGzipStream(src io.Reader) (io.Reader, error) {
	return gzip.NewReader(src)
}
