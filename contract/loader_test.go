package contract

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeZip(t *testing.T, path, entry string, data []byte) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create(entry)
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
}

func TestLoadPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.wasm")
	if err := os.WriteFile(path, emptyModule, 0o644); err != nil {
		t.Fatal(err)
	}

	code, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(code.Bytes(), emptyModule) {
		t.Errorf("Load() = %x, want %x", code.Bytes(), emptyModule)
	}
}

func TestLoadZipArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.zip")
	writeZip(t, path, "token.wasm", emptyModule)

	code, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(code.Bytes(), emptyModule) {
		t.Errorf("Load() = %x, want %x", code.Bytes(), emptyModule)
	}
}

func TestLoadZipCustomExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.zip")
	writeZip(t, path, "token.bin", emptyModule)

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error when token.wasm entry is absent")
	}

	code, err := LoadWithExtension(path, ".bin")
	if err != nil {
		t.Fatalf("LoadWithExtension() error = %v", err)
	}
	if !bytes.Equal(code.Bytes(), emptyModule) {
		t.Errorf("LoadWithExtension() = %x, want %x", code.Bytes(), emptyModule)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.wasm")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}
