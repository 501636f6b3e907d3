package store

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
)

func TestWriteAndRead(t *testing.T) {
	s := NewFileStore()
	path := filepath.Join(t.TempDir(), ".env")

	if err := s.Write(path, "A=1\nB=2\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := s.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != "A=1\nB=2\n" {
		t.Errorf("Read = %q", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestReadNotFound(t *testing.T) {
	s := NewFileStore()

	_, err := s.Read(filepath.Join(t.TempDir(), "missing.env"))
	if !errors.Is(err, eserrors.ErrNotFound) {
		t.Errorf("Read missing file = %v, expected ErrNotFound", err)
	}
}

func TestReadPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits not enforced in this environment")
	}

	s := NewFileStore()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("A=1"), 0000); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	_, err := s.Read(path)
	if !errors.Is(err, eserrors.ErrPermissionDenied) {
		t.Errorf("Read unreadable file = %v, expected ErrPermissionDenied", err)
	}
}

func TestEnsureExistsCreatesParentsAndFile(t *testing.T) {
	s := NewFileStore()
	path := filepath.Join(t.TempDir(), "nested", "dir", ".env")

	if err := s.EnsureExists(path); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}

	got, err := s.Read(path)
	if err != nil {
		t.Fatalf("Read after EnsureExists failed: %v", err)
	}
	if got != "" {
		t.Errorf("new file is not empty: %q", got)
	}
}

func TestEnsureExistsLeavesExistingFile(t *testing.T) {
	s := NewFileStore()
	path := filepath.Join(t.TempDir(), ".env")

	if err := s.Write(path, "KEEP=me"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := s.EnsureExists(path); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}

	got, err := s.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != "KEEP=me" {
		t.Errorf("EnsureExists modified existing file: %q", got)
	}
}
