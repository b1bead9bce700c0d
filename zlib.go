package ouch

import (
	"compress/zlib"
	"io"
)

// decompressZlibStream returns an io.Reader that decompresses src with
// the zlib algorithm.
func decompressZlibStream(src io.Reader) (io.Reader, error) {
	return zlib.NewReader(src)
}
