package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"testing"
)

// Both implementations must behave identically for the operations the
// pipeline performs.
func testFileSystem(t *testing.T, fsys FileSystem, root string) {
	t.Helper()

	dir := filepath.Join(root, "out", "run1")
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if !fsys.Exists(dir) {
		t.Errorf("Exists(%q) = false after MkdirAll", dir)
	}

	path := filepath.Join(dir, "data.txt")
	if fsys.Exists(path) {
		t.Errorf("Exists(%q) = true before write", path)
	}

	if err := fsys.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("ReadFile = %q, want hello", got)
	}

	info, err := fsys.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != 5 {
		t.Errorf("Size() = %d, want 5", info.Size())
	}

	// Create truncates and Close commits.
	w, err := fsys.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := io.WriteString(w, "replaced"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := fsys.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	got, err = io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "replaced" {
		t.Errorf("reopened content = %q, want replaced", got)
	}

	// Missing files report fs.ErrNotExist.
	_, err = fsys.ReadFile(filepath.Join(root, "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing) err = %v, want fs.ErrNotExist", err)
	}
	_, err = fsys.Open(filepath.Join(root, "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(missing) err = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem(t *testing.T) {
	testFileSystem(t, OSFileSystem{}, t.TempDir())
}

func TestMemoryFileSystem(t *testing.T) {
	testFileSystem(t, NewMemoryFileSystem(), "mem")
}

func TestMemoryFileSystemIsolation(t *testing.T) {
	m := NewMemoryFileSystem()
	data := []byte("original")
	if err := m.WriteFile("f.txt", data, 0644); err != nil {
		t.Fatal(err)
	}
	data[0] = 'X'

	got, err := m.ReadFile("f.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "original" {
		t.Errorf("stored data aliased the caller's slice: %q", got)
	}
	got[0] = 'Y'
	again, _ := m.ReadFile("f.txt")
	if string(again) != "original" {
		t.Errorf("returned data aliased the store: %q", again)
	}
}
