package keyring

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
)

func TestFileKeyStore_SetGetRoundTrip(t *testing.T) {
	fks := NewFileKeyStore(t.TempDir())

	key, err := fks.SetKey()
	if err != nil {
		t.Fatalf("SetKey: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("expected 32-byte key, got %d", len(key))
	}

	got, err := fks.GetKey()
	if err != nil {
		t.Fatalf("GetKey: %v", err)
	}
	if hex.EncodeToString(got) != hex.EncodeToString(key) {
		t.Fatal("GetKey returned a different key")
	}
}

func TestFileKeyStore_KeyFilePermissions(t *testing.T) {
	dir := t.TempDir()
	fks := NewFileKeyStore(dir)
	if _, err := fks.SetKey(); err != nil {
		t.Fatalf("SetKey: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, keyFileName))
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != keyFileMode {
		t.Errorf("expected mode %o, got %o", keyFileMode, info.Mode().Perm())
	}
}

func TestFileKeyStore_CreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	fks := NewFileKeyStore(dir)
	if _, err := fks.SetKey(); err != nil {
		t.Fatalf("SetKey: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected config dir created: %v", err)
	}
}

func TestFileKeyStore_GetKeyMissing(t *testing.T) {
	fks := NewFileKeyStore(t.TempDir())
	if _, err := fks.GetKey(); err == nil {
		t.Fatal("expected error for missing key file")
	}
}

func TestFileKeyStore_GetKeyRejectsBadContents(t *testing.T) {
	dir := t.TempDir()
	fks := NewFileKeyStore(dir)

	if err := os.WriteFile(filepath.Join(dir, keyFileName), []byte("not-hex"), keyFileMode); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := fks.GetKey(); err == nil {
		t.Fatal("expected error for non-hex key file")
	}

	short := hex.EncodeToString([]byte("short"))
	if err := os.WriteFile(filepath.Join(dir, keyFileName), []byte(short), keyFileMode); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := fks.GetKey(); err == nil {
		t.Fatal("expected error for wrong key length")
	}
}

func TestFileKeyStore_DeleteKey(t *testing.T) {
	dir := t.TempDir()
	fks := NewFileKeyStore(dir)
	if _, err := fks.SetKey(); err != nil {
		t.Fatalf("SetKey: %v", err)
	}
	if err := fks.DeleteKey(); err != nil {
		t.Fatalf("DeleteKey: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, keyFileName)); !os.IsNotExist(err) {
		t.Fatal("expected key file removed")
	}
}
