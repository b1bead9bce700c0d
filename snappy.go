package ouch

import (
	"io"

	"github.com/klauspost/compress/snappy"
)

// decompressSnappyStream returns an io.Reader that decompresses src
// with the snappy frame format.
func decompressSnappyStream(src io.Reader) (io.Reader, error) {
	return snappy.NewReader(src), nil
}
