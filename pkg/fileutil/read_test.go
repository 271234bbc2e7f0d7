package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestReadFileWithLimit(t *testing.T) {
	dir := t.TempDir()

	small := filepath.Join(dir, "profiles.ini")
	if err := os.WriteFile(small, []byte("[Profile0]\nName=default\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFileWithLimit(small)
	if err != nil {
		t.Fatalf("ReadFileWithLimit() error = %v", err)
	}
	if string(got) != "[Profile0]\nName=default\n" {
		t.Errorf("content = %q", got)
	}

	big := filepath.Join(dir, "big.ini")
	if err := os.WriteFile(big, make([]byte, MaxFileSize+1), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFileWithLimit(big); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}

	_, err = ReadFileWithLimit(filepath.Join(dir, "missing.ini"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}
