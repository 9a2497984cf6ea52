package browser

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/warpdl/cookiejar/pkg/logger"
)

func TestImportFirefox(t *testing.T) {
	dir := t.TempDir()
	future := time.Now().Add(24 * time.Hour).Unix()
	past := time.Now().Add(-24 * time.Hour).Unix()

	dbPath := createFirefoxFixture(t, dir, []firefoxRow{
		{Name: "sid", Value: "abc123", Host: ".example.com", Path: "/", Expiry: future, IsSecure: 1, IsHttpOnly: 1},
		{Name: "pref", Value: "dark", Host: "example.com", Path: "/", Expiry: future},
		{Name: "sub", Value: "s", Host: "api.example.com", Path: "/v1", Expiry: future},
		{Name: "stale", Value: "x", Host: ".example.com", Path: "/", Expiry: past},
		{Name: "other", Value: "y", Host: ".other.org", Path: "/", Expiry: future},
	})

	cookies, source, err := Import(dbPath, "example.com", logger.NewNopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.Format != FormatFirefox {
		t.Errorf("expected Firefox format, got %v", source.Format)
	}
	if source.Browser != "Firefox" {
		t.Errorf("expected browser Firefox, got %q", source.Browser)
	}
	if len(cookies) != 3 {
		t.Fatalf("expected 3 cookies, got %d", len(cookies))
	}

	found := make(map[string]bool)
	for _, c := range cookies {
		found[c.Name] = true
	}
	for _, name := range []string{"sid", "pref", "sub"} {
		if !found[name] {
			t.Errorf("expected cookie %q in import result", name)
		}
	}
	if found["stale"] || found["other"] {
		t.Error("expired or foreign cookies should be filtered out")
	}

	for _, c := range cookies {
		if c.Name == "sid" {
			if !c.Secure || !c.HttpOnly {
				t.Error("sid should keep Secure and HttpOnly flags")
			}
			if c.Expires.Unix() != future {
				t.Errorf("expected expiry %d, got %d", future, c.Expires.Unix())
			}
		}
	}
}

func TestImportChrome(t *testing.T) {
	dir := t.TempDir()
	future := time.Now().Add(24 * time.Hour).Unix()

	dbPath := createChromeFixture(t, dir, []chromeRow{
		{Name: "token", Value: "tok", HostKey: ".example.com", Path: "/", ExpiresUTC: toChromeMicros(future), IsSecure: 1},
		{Name: "enc", Value: "", HostKey: ".example.com", Path: "/", ExpiresUTC: toChromeMicros(future)},
		{Name: "other", Value: "o", HostKey: ".other.org", Path: "/", ExpiresUTC: toChromeMicros(future)},
	})

	cookies, source, err := Import(dbPath, "example.com", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.Format != FormatChrome {
		t.Errorf("expected Chrome format, got %v", source.Format)
	}
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie (encrypted and foreign skipped), got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "token" || c.Value != "tok" {
		t.Errorf("unexpected cookie %s=%s", c.Name, c.Value)
	}
	if c.Expires.Unix() != future {
		t.Errorf("Chrome timestamp not converted: expected %d, got %d", future, c.Expires.Unix())
	}
	if !c.Secure {
		t.Error("expected Secure flag to survive import")
	}
}

func TestImportNetscape(t *testing.T) {
	dir := t.TempDir()
	future := time.Now().Add(24 * time.Hour).Unix()
	past := time.Now().Add(-24 * time.Hour).Unix()

	content := strings.Join([]string{
		"# Netscape HTTP Cookie File",
		"# https://curl.se/docs/http-cookies.html",
		"",
		".example.com\tTRUE\t/\tFALSE\t" + formatUnix(future) + "\tsid\tabc",
		"#HttpOnly_.example.com\tTRUE\t/\tTRUE\t" + formatUnix(future) + "\ttoken\txyz",
		".example.com\tTRUE\t/\tFALSE\t" + formatUnix(past) + "\tstale\told",
		".other.org\tTRUE\t/\tFALSE\t" + formatUnix(future) + "\tforeign\tf",
	}, "\n") + "\n"

	path := filepath.Join(dir, "cookies.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write cookie file: %v", err)
	}

	log := logger.NewMockLogger()
	cookies, source, err := Import(path, "example.com", log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.Format != FormatNetscape {
		t.Errorf("expected Netscape format, got %v", source.Format)
	}
	if len(cookies) != 2 {
		t.Fatalf("expected 2 cookies, got %d", len(cookies))
	}

	var gotHTTPOnly bool
	for _, c := range cookies {
		if c.Name == "stale" || c.Name == "foreign" {
			t.Errorf("cookie %q should have been filtered out", c.Name)
		}
		if c.Name == "token" && c.HttpOnly {
			gotHTTPOnly = true
		}
	}
	if !gotHTTPOnly {
		t.Error("expected #HttpOnly_ prefix to set HttpOnly on token")
	}

	if len(log.WarningCalls) == 0 {
		t.Error("expected a warning for the expired cookie")
	}
}

func TestImportFileNotFound(t *testing.T) {
	_, _, err := Import(filepath.Join(t.TempDir(), "nope.sqlite"), "example.com", nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	_, _, err := Import(path, "example.com", nil)
	if err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestImportUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage")
	if err := os.WriteFile(path, []byte("not a cookie store\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	_, _, err := Import(path, "example.com", nil)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestMatchesDomain(t *testing.T) {
	tests := []struct {
		cookieDomain string
		want         bool
	}{
		{"example.com", true},
		{".example.com", true},
		{"api.example.com", true},
		{"deep.api.example.com", true},
		{"other.org", false},
		{"badexample.com", false},
		{"example.com.evil.org", false},
	}
	for _, tt := range tests {
		got := matchesDomain(tt.cookieDomain, "example.com", ".example.com")
		if got != tt.want {
			t.Errorf("matchesDomain(%q) = %v, want %v", tt.cookieDomain, got, tt.want)
		}
	}
}

func formatUnix(v int64) string {
	return strconv.FormatInt(v, 10)
}
