package ouch

import (
	"io"

	"github.com/ulikunitz/xz"
)

// decompressXzStream returns an io.Reader that decompresses src with
// the xz algorithm.
func decompressXzStream(src io.Reader) (io.Reader, error) {
	return xz.NewReader(src)
}
