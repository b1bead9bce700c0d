package ouch

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// decompressZstdStream returns an io.Reader that decompresses src with
// the zstandard algorithm.
func decompressZstdStream(src io.Reader) (io.Reader, error) {
	return zstd.NewReader(src)
}
