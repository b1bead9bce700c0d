package ouch

import "github.com/pkg/errors"

var (
	// ErrUnknownFormat is returned when no transform chain can be
	// resolved for a file name.
	ErrUnknownFormat = errors.New("cannot determine archive format")

	// ErrArchiveNotInnermost is returned when an archive format appears
	// anywhere but as the innermost transform of a chain.
	ErrArchiveNotInnermost = errors.New("archive format must be the innermost transform")

	// ErrNotCompiledIn is returned when the extractor for a requested
	// format was excluded from the build.
	ErrNotCompiledIn = errors.New("format support not compiled into this build")

	// ErrReadLimitExceeded is returned when the input exceeds the
	// configured maximum input size.
	ErrReadLimitExceeded = errors.New("read limit exceeded")
)
