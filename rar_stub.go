//go:build norar

package ouch

import (
	"context"

	"github.com/pkg/errors"
)

// rarSupported reports whether the rar extractor is part of the build.
const rarSupported = false

// extractRar fails immediately; rar support was excluded from this
// build. The engine checks rarSupported before any I/O, so the error
// surfaces without touching the filesystem.
var extractRar = func(ctx context.Context, path string, dst string, c *Config) (int, error) {
	return 0, errors.Wrap(ErrNotCompiledIn, "rar")
}
