package ouch

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// runExtraction drains the walker into dst and returns the number of
// entries written. Any mid-extraction failure leaves the entries
// written so far on disk; there is no rollback.
func runExtraction(ctx context.Context, w archiveWalker, dst string, c *Config) (int, error) {
	c.Logger().Info("start extraction", "type", w.Type(), "dst", dst)

	var count int
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		ae, err := w.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, errors.Wrapf(err, "cannot read %s entry", w.Type())
		}

		path, err := safeEntryPath(dst, ae.Name())
		if err != nil {
			return count, err
		}

		switch {
		case ae.IsDir():
			if err := c.Target().CreateDir(path, ae.Mode()); err != nil {
				return count, err
			}

		case ae.IsSymlink():
			if err := c.Target().CreateSymlink(ae.Linkname(), path, true); err != nil {
				return count, err
			}

		case ae.IsRegular():
			if err := writeEntry(ae, path, c); err != nil {
				return count, err
			}

		default:
			c.Logger().Warn("skipping unsupported entry", "name", ae.Name(), "mode", ae.Mode().String())
			continue
		}

		count++
		c.statusf("%q extracted. (%d bytes)", ae.Name(), ae.Size())
	}
}

// writeEntry copies one regular archive entry to path, creating the
// parent directory if the archive did not list it.
func writeEntry(ae archiveEntry, path string, c *Config) error {
	src, err := ae.Open()
	if err != nil {
		return errors.Wrapf(err, "cannot open %s", ae.Name())
	}
	defer src.Close()

	if err := c.Target().CreateDir(filepath.Dir(path), defaultDirMode); err != nil {
		return err
	}

	mode := ae.Mode().Perm()
	if mode == 0 {
		mode = defaultFileMode
	}
	dst, err := c.Target().CreateFile(path, mode, true)
	if err != nil {
		return err
	}
	if _, err := io.Copy(limitWriter(dst, c.MaxExtractionSize()), src); err != nil {
		dst.Close()
		return errors.Wrapf(err, "cannot write %s", ae.Name())
	}
	return dst.Close()
}

// safeEntryPath joins an archive entry name onto the extraction root
// and rejects names that would escape it.
func safeEntryPath(dst string, name string) (string, error) {
	if filepath.IsAbs(name) {
		return "", errors.Errorf("entry with absolute path: %q", name)
	}
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("entry path escapes extraction root: %q", name)
	}
	return filepath.Join(dst, clean), nil
}
