package ouch

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/boot-sandre/ouch/telemetry"
)

// now is a function point that returns time.Now to the caller.
var now = time.Now

// Decompress reconstructs the original content of the file at src,
// whose transform chain is described by formats (outermost first).
// A decoded archive is extracted under outputDir into the proposed
// outputPath subdirectory; a pure compression chain is written to
// outputPath as a single file. The returned count is the number of
// files produced.
//
// outputDir is caller-owned and must already exist; Decompress never
// creates it.
func Decompress(ctx context.Context, src string, formats Formats, outputDir string, outputPath string, c *Config) (int, error) {
	if c == nil {
		c = NewConfig()
	}
	if formats.Empty() {
		return 0, errors.Wrap(ErrUnknownFormat, src)
	}

	// fail before any I/O when the requested extractor is not part of
	// the build
	if formats.Archive == Rar && !rarSupported {
		return 0, errors.Wrap(ErrNotCompiledIn, "rar")
	}

	td := &telemetry.Data{ExtractedType: formats.String()}
	defer c.TelemetryHook()(ctx, td)
	defer captureDuration(td, now())

	f, err := os.Open(src)
	if err != nil {
		return 0, fail(c, td, "cannot open input", err)
	}
	defer f.Close()

	// A sole zip archive is read in place: zip keeps its index at the
	// end of the file, so random access over the original file avoids
	// materializing the whole archive in memory. Any other zip input
	// has to go through the in-memory path below.
	if formats.Archive == Zip && len(formats.Layers) == 0 {
		info, err := f.Stat()
		if err != nil {
			return 0, fail(c, td, "cannot stat input", err)
		}
		td.InputSize = info.Size()

		files, err := smartUnpack(func(dst string) (int, error) {
			return extractZip(ctx, f, info.Size(), dst, c)
		}, outputDir, outputPath, c)
		if err != nil {
			return 0, fail(c, td, "cannot unpack zip archive", err)
		}
		td.ExtractedFiles = int64(files)
		c.accessiblef("Successfully decompressed archive in %s (%d files).", outputDir, files)
		return files, nil
	}

	limited := newLimitErrorReader(bufio.NewReaderSize(f, c.BufferCapacity()), c.MaxInputSize())
	defer func() { td.InputSize = int64(limited.ReadBytes()) }()

	reader, err := chainDecoders(limited, formats.Layers)
	if err != nil {
		return 0, fail(c, td, "cannot build decoder chain", err)
	}

	var files int
	switch formats.Archive {

	case ArchiveNone:
		// pure compression chain: copy the decoded stream into a
		// single output file
		w, err := askToCreateFile(c, outputPath)
		if err != nil {
			return 0, fail(c, td, "cannot create output file", err)
		}
		if w == nil {
			c.statusf("Skipping %s, output file not created.", outputPath)
			return 0, nil
		}
		if _, err := io.Copy(limitWriter(w, c.MaxExtractionSize()), reader); err != nil {
			w.Close()
			return 0, fail(c, td, "cannot decompress", err)
		}
		if err := w.Close(); err != nil {
			return 0, fail(c, td, "cannot finish output file", err)
		}
		files = 1

	case Tar:
		files, err = smartUnpack(func(dst string) (int, error) {
			return extractTar(ctx, reader, dst, c)
		}, outputDir, outputPath, c)
		if err != nil {
			return 0, fail(c, td, "cannot unpack tar archive", err)
		}

	case Zip:
		// a nested zip needs random access over the decoded stream, so
		// it is buffered completely; the buffer size is file controlled
		if ok, err := confirmInMemory(c, src, formats, "zip"); err != nil || !ok {
			return 0, err
		}
		buf, err := drain(reader)
		if err != nil {
			return 0, fail(c, td, "cannot buffer decoded zip archive", err)
		}
		files, err = smartUnpack(func(dst string) (int, error) {
			return extractZip(ctx, bytes.NewReader(buf), int64(len(buf)), dst, c)
		}, outputDir, outputPath, c)
		if err != nil {
			return 0, fail(c, td, "cannot unpack zip archive", err)
		}

	case SevenZip:
		// the 7z reader always needs the complete archive image
		if ok, err := confirmInMemory(c, src, formats, "7z"); err != nil || !ok {
			return 0, err
		}
		buf, err := drain(reader)
		if err != nil {
			return 0, fail(c, td, "cannot buffer decoded 7z archive", err)
		}
		files, err = smartUnpack(func(dst string) (int, error) {
			return extractSevenZip(ctx, bytes.NewReader(buf), int64(len(buf)), dst, c)
		}, outputDir, outputPath, c)
		if err != nil {
			return 0, fail(c, td, "cannot unpack 7z archive", err)
		}

	case Rar:
		// the rar decoder wants a real file: a sole rar archive is
		// opened in place, a nested one is spooled to a temporary file
		// that is removed whether extraction succeeds or not
		archivePath := src
		if formats.Count() > 1 {
			tmp, err := os.CreateTemp("", "ouch-*.rar")
			if err != nil {
				return 0, fail(c, td, "cannot create temporary file", err)
			}
			defer os.Remove(tmp.Name())
			if _, err := io.Copy(tmp, reader); err != nil {
				tmp.Close()
				return 0, fail(c, td, "cannot spool decoded rar archive", err)
			}
			if err := tmp.Close(); err != nil {
				return 0, fail(c, td, "cannot spool decoded rar archive", err)
			}
			archivePath = tmp.Name()
		}
		files, err = smartUnpack(func(dst string) (int, error) {
			return extractRar(ctx, archivePath, dst, c)
		}, outputDir, outputPath, c)
		if err != nil {
			return 0, fail(c, td, "cannot unpack rar archive", err)
		}
	}

	td.ExtractedFiles = int64(files)
	c.accessiblef("Successfully decompressed archive in %s (%d files).", outputDir, files)
	return files, nil
}

// smartUnpack creates the dedicated per-archive subdirectory at
// outputPath and runs unpack with it as extraction root. outputDir is
// caller-owned and must already exist; finding it missing is a bug in
// the caller, not a runtime condition.
func smartUnpack(unpack func(dst string) (int, error), outputDir string, outputPath string, c *Config) (int, error) {
	if _, err := c.Target().Lstat(outputDir); err != nil {
		panic(fmt.Sprintf("ouch: output directory %s does not exist", outputDir))
	}

	if _, err := c.Target().Lstat(outputPath); err == nil {
		// tolerated: extraction proceeds into the existing directory
		c.Logger().Info("output directory already exists", "path", outputPath)
	} else {
		if err := c.Target().CreateDir(outputPath, defaultDirMode); err != nil {
			return 0, err
		}
		c.statusf("Directory %s created.", outputPath)
	}

	return unpack(outputPath)
}

// confirmInMemory routes the unbounded buffering of a nested archive
// through the interactive guard. A sole archive needs no confirmation.
func confirmInMemory(c *Config, src string, formats Formats, kind string) (bool, error) {
	if formats.Count() == 1 {
		return true, nil
	}
	c.Logger().Warn("archive will be loaded completely into memory", "type", kind, "input", src)
	c.statusf("Decompressing a nested %s archive requires loading it completely into memory; this can consume a lot of RAM.", kind)
	return userWantsToContinue(c, src, "the whole archive will be loaded into memory")
}

// drain reads the remainder of the decoder chain into memory.
func drain(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fail records err in the telemetry data, logs it and returns the
// wrapped error.
func fail(c *Config, td *telemetry.Data, msg string, err error) error {
	td.ExtractionErrors++
	td.LastError = errors.Wrap(err, msg)
	c.Logger().Error(msg, "error", err)
	return td.LastError
}

// captureDuration captures the duration of the decompression.
func captureDuration(td *telemetry.Data, start time.Time) {
	td.ExtractionDuration = now().Sub(start)
}
