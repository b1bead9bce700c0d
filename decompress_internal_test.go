package ouch

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// stubRarExtractor swaps the rar extractor for the duration of a test
// and records the archive path it was handed.
func stubRarExtractor(t *testing.T, files int, inspect func(path string)) *string {
	t.Helper()

	orig := extractRar
	t.Cleanup(func() { extractRar = orig })

	var gotPath string
	extractRar = func(ctx context.Context, path string, dst string, c *Config) (int, error) {
		gotPath = path
		if inspect != nil {
			inspect(path)
		}
		return files, nil
	}
	return &gotPath
}

func TestDecompressRarUsesOriginalPath(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "backup.rar")
	if err := os.WriteFile(src, []byte("pretend rar bytes"), 0644); err != nil {
		t.Fatalf("cannot write test file: %v", err)
	}
	outputDir := t.TempDir()

	gotPath := stubRarExtractor(t, 5, nil)

	cfg := NewConfig(WithStatusWriter(io.Discard))
	files, err := Decompress(context.Background(), src, Formats{Archive: Rar}, outputDir, filepath.Join(outputDir, "backup"), cfg)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if files != 5 {
		t.Errorf("Decompress() = %d files, want 5", files)
	}
	if *gotPath != src {
		t.Errorf("extractor got path %q, want the original input %q", *gotPath, src)
	}
}

func TestDecompressNestedRarSpoolsToTempFile(t *testing.T) {
	payload := []byte("pretend rar bytes, reachable only after gunzip")

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("cannot gzip payload: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot finish gzip payload: %v", err)
	}

	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "backup.rar.gz")
	if err := os.WriteFile(src, buf.Bytes(), 0644); err != nil {
		t.Fatalf("cannot write test file: %v", err)
	}
	outputDir := t.TempDir()

	var spooled []byte
	gotPath := stubRarExtractor(t, 2, func(path string) {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("cannot read spooled file: %v", err)
			return
		}
		spooled = data
	})

	cfg := NewConfig(WithStatusWriter(io.Discard))
	formats := Formats{Layers: []Compression{Gzip}, Archive: Rar}
	files, err := Decompress(context.Background(), src, formats, outputDir, filepath.Join(outputDir, "backup"), cfg)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if files != 2 {
		t.Errorf("Decompress() = %d files, want 2", files)
	}
	if *gotPath == src {
		t.Error("extractor got the original input path, want a spooled temporary file")
	}
	if !bytes.Equal(spooled, payload) {
		t.Errorf("spooled content = %q, want the decoded payload", spooled)
	}
	if _, err := os.Stat(*gotPath); !os.IsNotExist(err) {
		t.Errorf("temporary file %q still exists after extraction", *gotPath)
	}
}

func TestDecompressNestedRarSpoolRemovedOnFailure(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte("broken rar")); err != nil {
		t.Fatalf("cannot gzip payload: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot finish gzip payload: %v", err)
	}

	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "backup.rar.gz")
	if err := os.WriteFile(src, buf.Bytes(), 0644); err != nil {
		t.Fatalf("cannot write test file: %v", err)
	}
	outputDir := t.TempDir()

	orig := extractRar
	t.Cleanup(func() { extractRar = orig })
	var gotPath string
	extractRar = func(ctx context.Context, path string, dst string, c *Config) (int, error) {
		gotPath = path
		return 0, os.ErrInvalid
	}

	cfg := NewConfig(WithStatusWriter(io.Discard))
	formats := Formats{Layers: []Compression{Gzip}, Archive: Rar}
	if _, err := Decompress(context.Background(), src, formats, outputDir, filepath.Join(outputDir, "backup"), cfg); err == nil {
		t.Fatal("Decompress() expected error from failing extractor")
	}
	if _, err := os.Stat(gotPath); !os.IsNotExist(err) {
		t.Errorf("temporary file %q still exists after failed extraction", gotPath)
	}
}

func TestSmartUnpackExistingDirectoryTolerated(t *testing.T) {
	outputDir := t.TempDir()
	outputPath := filepath.Join(outputDir, "sub")
	if err := os.Mkdir(outputPath, 0755); err != nil {
		t.Fatalf("cannot pre-create directory: %v", err)
	}

	c := NewConfig(WithStatusWriter(io.Discard))
	files, err := smartUnpack(func(dst string) (int, error) {
		if dst != outputPath {
			t.Errorf("unpack got dst %q, want %q", dst, outputPath)
		}
		return 3, nil
	}, outputDir, outputPath, c)
	if err != nil {
		t.Fatalf("smartUnpack() error = %v", err)
	}
	if files != 3 {
		t.Errorf("smartUnpack() = %d, want 3", files)
	}
}

func TestSafeEntryPath(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		want    string
		wantErr bool
	}{
		{"plain name", "a.txt", filepath.Join("root", "a.txt"), false},
		{"nested name", "dir/a.txt", filepath.Join("root", "dir", "a.txt"), false},
		{"cleaned dot segments", "dir/./a.txt", filepath.Join("root", "dir", "a.txt"), false},
		{"absolute path", "/etc/passwd", "", true},
		{"parent traversal", "../escape", "", true},
		{"nested parent traversal", "dir/../../escape", "", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := safeEntryPath("root", test.entry)
			if (err != nil) != test.wantErr {
				t.Fatalf("safeEntryPath(%q) error = %v, wantErr %v", test.entry, err, test.wantErr)
			}
			if !test.wantErr && got != test.want {
				t.Errorf("safeEntryPath(%q) = %q, want %q", test.entry, got, test.want)
			}
		})
	}
}
