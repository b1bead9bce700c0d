package ouch

import (
	"io"

	"github.com/andybalholm/brotli"
)

// decompressBrotliStream returns an io.Reader that decompresses src
// with the brotli algorithm.
func decompressBrotliStream(src io.Reader) (io.Reader, error) {
	return brotli.NewReader(src), nil
}
