package browser

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

type firefoxRow struct {
	Name       string
	Value      string
	Host       string
	Path       string
	Expiry     int64
	IsSecure   int
	IsHttpOnly int
}

// createFirefoxFixture creates a temp SQLite file with the moz_cookies
// schema and returns its path.
func createFirefoxFixture(t *testing.T, dir string, rows []firefoxRow) string {
	t.Helper()
	dbPath := filepath.Join(dir, "cookies.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE moz_cookies (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL,
        value TEXT NOT NULL,
        host TEXT NOT NULL,
        path TEXT NOT NULL DEFAULT '/',
        expiry INTEGER NOT NULL DEFAULT 0,
        isSecure INTEGER NOT NULL DEFAULT 0,
        isHttpOnly INTEGER NOT NULL DEFAULT 0
    )`)
	if err != nil {
		t.Fatalf("failed to create moz_cookies table: %v", err)
	}

	stmt, err := db.Prepare(`INSERT INTO moz_cookies (name, value, host, path, expiry, isSecure, isHttpOnly) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		t.Fatalf("failed to prepare insert: %v", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.Name, r.Value, r.Host, r.Path, r.Expiry, r.IsSecure, r.IsHttpOnly); err != nil {
			t.Fatalf("failed to insert row: %v", err)
		}
	}
	return dbPath
}

type chromeRow struct {
	Name       string
	Value      string
	HostKey    string
	Path       string
	ExpiresUTC int64
	IsSecure   int
	IsHttpOnly int
}

// createChromeFixture creates a temp SQLite file with the Chrome cookies
// schema and returns its path. ExpiresUTC is in Chrome microseconds.
func createChromeFixture(t *testing.T, dir string, rows []chromeRow) string {
	t.Helper()
	dbPath := filepath.Join(dir, "Cookies")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE cookies (
        name TEXT NOT NULL,
        value TEXT NOT NULL,
        host_key TEXT NOT NULL,
        path TEXT NOT NULL DEFAULT '/',
        expires_utc INTEGER NOT NULL DEFAULT 0,
        is_secure INTEGER NOT NULL DEFAULT 0,
        is_httponly INTEGER NOT NULL DEFAULT 0
    )`)
	if err != nil {
		t.Fatalf("failed to create cookies table: %v", err)
	}

	stmt, err := db.Prepare(`INSERT INTO cookies (name, value, host_key, path, expires_utc, is_secure, is_httponly) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		t.Fatalf("failed to prepare insert: %v", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.Name, r.Value, r.HostKey, r.Path, r.ExpiresUTC, r.IsSecure, r.IsHttpOnly); err != nil {
			t.Fatalf("failed to insert row: %v", err)
		}
	}
	return dbPath
}

// toChromeMicros converts a Unix timestamp to Chrome epoch microseconds.
func toChromeMicros(unix int64) int64 {
	return (unix + chromeEpochOffsetSeconds) * 1_000_000
}
