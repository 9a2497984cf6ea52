package browser

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDetectFormatFirefox(t *testing.T) {
	dir := t.TempDir()
	dbPath := createFirefoxFixture(t, dir, []firefoxRow{
		{Name: "a", Value: "1", Host: "example.com", Path: "/", Expiry: time.Now().Add(time.Hour).Unix()},
	})

	format, err := DetectFormat(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatFirefox {
		t.Errorf("expected FormatFirefox, got %v", format)
	}
}

func TestDetectFormatChrome(t *testing.T) {
	dir := t.TempDir()
	dbPath := createChromeFixture(t, dir, []chromeRow{
		{Name: "a", Value: "1", HostKey: "example.com", Path: "/", ExpiresUTC: toChromeMicros(time.Now().Add(time.Hour).Unix())},
	})

	format, err := DetectFormat(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatChrome {
		t.Errorf("expected FormatChrome, got %v", format)
	}
}

func TestDetectFormatNetscape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.txt")
	content := "# Netscape HTTP Cookie File\n.example.com\tTRUE\t/\tFALSE\t0\tsid\tabc\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write cookie file: %v", err)
	}

	format, err := DetectFormat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatNetscape {
		t.Errorf("expected FormatNetscape, got %v", format)
	}
}

func TestDetectFormatNetscapeCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.txt")
	content := "# HTTP Cookie File\r\n.example.com\tTRUE\t/\tFALSE\t0\tsid\tabc\r\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write cookie file: %v", err)
	}

	format, err := DetectFormat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatNetscape {
		t.Errorf("expected FormatNetscape, got %v", format)
	}
}

func TestDetectFormatUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.bin")
	if err := os.WriteFile(path, []byte("hello world, definitely not cookies"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	format, err := DetectFormat(path)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if format != FormatUnknown {
		t.Errorf("expected FormatUnknown, got %v", format)
	}
}

func TestDetectFormatMissingFile(t *testing.T) {
	if _, err := DetectFormat(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDetectFormatDirectory(t *testing.T) {
	if _, err := DetectFormat(t.TempDir()); err == nil {
		t.Fatal("expected error for directory path")
	}
}
