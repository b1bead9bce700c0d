package ouch

import (
	"io"

	"github.com/pkg/errors"
)

// decompressorFunc returns a reader that decompresses src.
type decompressorFunc func(src io.Reader) (io.Reader, error)

// decompressors maps each layerable format to its stream constructor.
// Archive formats have no entry here; the [Formats] split keeps them
// out of the chaining loop altogether.
var decompressors = map[Compression]decompressorFunc{
	Gzip:   decompressGzipStream,
	Bzip:   decompressBzip2Stream,
	Lz4:    decompressLz4Stream,
	Lzma:   decompressXzStream,
	Snappy: decompressSnappyStream,
	Zstd:   decompressZstdStream,
	Brotli: decompressBrotliStream,
	Zlib:   decompressZlibStream,
}

// chainDecoders wraps src with one streaming decompressor per layer.
// Layers are listed outermost first, so the first wrapper strips the
// outermost layer and every following wrapper consumes the previous
// wrapper's output. Reading from the returned reader yields the fully
// decoded byte stream.
func chainDecoders(src io.Reader, layers []Compression) (io.Reader, error) {
	reader := src
	for _, layer := range layers {
		decompress, ok := decompressors[layer]
		if !ok {
			return nil, errors.Wrap(ErrUnknownFormat, layer.String())
		}
		next, err := decompress(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot decompress %s stream", layer)
		}
		reader = next
	}
	return reader, nil
}
