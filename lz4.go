package ouch

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// decompressLz4Stream returns an io.Reader that decompresses src with
// the lz4 frame format.
func decompressLz4Stream(src io.Reader) (io.Reader, error) {
	return lz4.NewReader(src), nil
}
