package ouch

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestDiskCreateDir(t *testing.T) {
	d := NewDisk()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a", "b", "c")

	if err := d.CreateDir(path, 0755); err != nil {
		t.Fatalf("CreateDir() error = %v", err)
	}

	// creating the same directory again is not an error
	if err := d.CreateDir(path, 0755); err != nil {
		t.Errorf("CreateDir() on existing directory error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Errorf("CreateDir() did not create a directory: %v", err)
	}
}

func TestDiskCreateFile(t *testing.T) {
	d := NewDisk()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file")
	content := []byte("content")

	w, err := d.CreateFile(path, 0644, false)
	if err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}
	if _, err := w.Write(content); err != nil {
		t.Fatalf("cannot write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot close: %v", err)
	}

	// without overwrite an existing file is refused
	if _, err := d.CreateFile(path, 0644, false); !errors.Is(err, fs.ErrExist) {
		t.Errorf("CreateFile() error = %v, want fs.ErrExist", err)
	}

	// with overwrite the file is truncated
	w, err = d.CreateFile(path, 0644, true)
	if err != nil {
		t.Fatalf("CreateFile() with overwrite error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read back: %v", err)
	}
	if !bytes.Equal(data, []byte{}) {
		t.Errorf("file content = %q, want empty", data)
	}
}

func TestDiskCreateSymlink(t *testing.T) {
	d := NewDisk()
	tmpDir := t.TempDir()
	link := filepath.Join(tmpDir, "sub", "link")

	if err := d.CreateSymlink("target", link, false); err != nil {
		t.Fatalf("CreateSymlink() error = %v", err)
	}
	got, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink() error = %v", err)
	}
	if got != "target" {
		t.Errorf("Readlink() = %q, want %q", got, "target")
	}

	// with overwrite an existing link is replaced
	if err := d.CreateSymlink("other", link, true); err != nil {
		t.Fatalf("CreateSymlink() with overwrite error = %v", err)
	}
	if got, _ := os.Readlink(link); got != "other" {
		t.Errorf("Readlink() = %q, want %q", got, "other")
	}
}
