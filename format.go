package ouch

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Compression is a pure byte-stream compression transform. Compression
// formats are layerable: any sequence of them can wrap a payload or an
// archive.
type Compression int

const (
	Gzip Compression = iota
	Bzip
	Lz4
	Lzma
	Snappy
	Zstd
	Brotli
	Zlib
)

// String returns the common name of the compression format.
func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Bzip:
		return "bzip2"
	case Lz4:
		return "lz4"
	case Lzma:
		return "xz"
	case Snappy:
		return "snappy"
	case Zstd:
		return "zstd"
	case Brotli:
		return "brotli"
	case Zlib:
		return "zlib"
	}
	return "unknown"
}

// Archive is a format that yields a set of named entries rather than a
// byte stream. An archive format is only valid as the innermost
// transform of a chain. ArchiveNone marks a chain of pure compression
// layers.
type Archive int

const (
	ArchiveNone Archive = iota
	Tar
	Zip
	Rar
	SevenZip
)

// String returns the common name of the archive format.
func (a Archive) String() string {
	switch a {
	case Tar:
		return "tar"
	case Zip:
		return "zip"
	case Rar:
		return "rar"
	case SevenZip:
		return "7z"
	}
	return "none"
}

// Formats describes the transforms applied when a file was produced,
// outermost first. The archive tag, if any, is always the innermost
// transform; keeping it out of the layer slice makes an archive inside
// the decoder-chaining loop unrepresentable.
type Formats struct {
	Layers  []Compression
	Archive Archive
}

// Empty reports whether the descriptor holds no transform at all.
func (f Formats) Empty() bool {
	return len(f.Layers) == 0 && f.Archive == ArchiveNone
}

// Count returns the number of transforms in the descriptor.
func (f Formats) Count() int {
	n := len(f.Layers)
	if f.Archive != ArchiveNone {
		n++
	}
	return n
}

// String returns the descriptor as a dotted extension chain, innermost
// first, e.g. "tar.gz" for a gzip compressed tar archive.
func (f Formats) String() string {
	var parts []string
	if f.Archive != ArchiveNone {
		parts = append(parts, f.Archive.String())
	}
	for i := len(f.Layers) - 1; i >= 0; i-- {
		parts = append(parts, f.Layers[i].String())
	}
	return strings.Join(parts, ".")
}

// extensionFormats maps a single recognized file extension to the
// transform fragment it stands for. Combined extensions like tgz expand
// to their full chain, outermost first.
var extensionFormats = map[string]Formats{
	"gz":   {Layers: []Compression{Gzip}},
	"bz":   {Layers: []Compression{Bzip}},
	"bz2":  {Layers: []Compression{Bzip}},
	"lz4":  {Layers: []Compression{Lz4}},
	"xz":   {Layers: []Compression{Lzma}},
	"lzma": {Layers: []Compression{Lzma}},
	"sz":   {Layers: []Compression{Snappy}},
	"zst":  {Layers: []Compression{Zstd}},
	"br":   {Layers: []Compression{Brotli}},
	"zz":   {Layers: []Compression{Zlib}},
	"tar":  {Archive: Tar},
	"zip":  {Archive: Zip},
	"rar":  {Archive: Rar},
	"7z":   {Archive: SevenZip},
	"tgz":  {Layers: []Compression{Gzip}, Archive: Tar},
	"tbz":  {Layers: []Compression{Bzip}, Archive: Tar},
	"tbz2": {Layers: []Compression{Bzip}, Archive: Tar},
	"tlz4": {Layers: []Compression{Lz4}, Archive: Tar},
	"txz":  {Layers: []Compression{Lzma}, Archive: Tar},
	"tzst": {Layers: []Compression{Zstd}, Archive: Tar},
}

// ParseFormats resolves the transform chain of path from its file
// extensions. Extensions are consumed right to left, outermost
// transform first, until an unrecognized extension is reached. An
// archive extension is only accepted as the innermost recognized
// transform.
func ParseFormats(path string) (Formats, error) {
	name := filepath.Base(path)

	var raw []string
	for {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		if _, ok := extensionFormats[ext]; !ok {
			break
		}
		raw = append(raw, ext)
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	if len(raw) == 0 {
		return Formats{}, errors.Wrap(ErrUnknownFormat, filepath.Base(path))
	}

	var out Formats
	for i, ext := range raw {
		frag := extensionFormats[ext]
		if frag.Archive != ArchiveNone && i != len(raw)-1 {
			return Formats{}, errors.Wrapf(ErrArchiveNotInnermost, "%s in %s", frag.Archive, filepath.Base(path))
		}
		out.Layers = append(out.Layers, frag.Layers...)
		out.Archive = frag.Archive
	}
	return out, nil
}

// StripFormats removes all recognized format extensions from name. The
// result is used to propose the per-archive output directory or the
// decompressed file name.
func StripFormats(name string) string {
	for {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		if _, ok := extensionFormats[ext]; !ok {
			return name
		}
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
}
