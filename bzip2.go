package ouch

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

// decompressBzip2Stream returns an io.Reader that decompresses src with
// the bzip2 algorithm.
func decompressBzip2Stream(src io.Reader) (io.Reader, error) {
	return bzip2.NewReader(src, nil)
}
