package browser

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/warpdl/cookiejar/pkg/cookiejar"
)

// chromeEpochOffsetSeconds is the number of seconds between the Windows NT
// epoch (1601-01-01 00:00:00 UTC) and the Unix epoch (1970-01-01 00:00:00 UTC).
const chromeEpochOffsetSeconds int64 = 11_644_473_600

// chromeToUnix converts a Chrome timestamp (microseconds since 1601-01-01)
// to Unix seconds.
func chromeToUnix(chromeUSec int64) int64 {
	return (chromeUSec / 1_000_000) - chromeEpochOffsetSeconds
}

// parseChrome reads cookies for the given domain from a Chrome Cookies
// SQLite file. Only unencrypted cookies (non-empty value) are returned. The
// dbPath must point to a copied (not in-use) database.
func parseChrome(dbPath, domain string) ([]cookiejar.Cookie, error) {
	dsn := fmt.Sprintf("file:%s?immutable=1", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("browser: cannot open Chrome cookie database: %w", err)
	}
	defer db.Close()

	now := time.Now().Unix()
	dotDomain := "." + domain
	wildcardDomain := "%." + domain
	nowChrome := (now + chromeEpochOffsetSeconds) * 1_000_000

	rows, err := db.Query(`
        SELECT name, value, host_key, path, expires_utc, is_secure, is_httponly
        FROM cookies
        WHERE (host_key = ? OR host_key = ? OR host_key LIKE ?)
          AND value != ''
          AND expires_utc > ?
        ORDER BY path DESC, name ASC
    `, domain, dotDomain, wildcardDomain, nowChrome)
	if err != nil {
		return nil, fmt.Errorf("browser: failed to query Chrome cookies: %w", err)
	}
	defer rows.Close()

	var cookies []cookiejar.Cookie
	for rows.Next() {
		var (
			name, value, hostKey, path string
			expiresUTC                 int64
			isSecure, isHttpOnly       int
		)
		if err := rows.Scan(&name, &value, &hostKey, &path, &expiresUTC, &isSecure, &isHttpOnly); err != nil {
			return nil, fmt.Errorf("browser: failed to scan Chrome cookie row: %w", err)
		}
		cookies = append(cookies, cookiejar.Cookie{
			Name:     name,
			Value:    value,
			Domain:   hostKey,
			Path:     path,
			Expires:  time.Unix(chromeToUnix(expiresUTC), 0),
			Secure:   isSecure != 0,
			HttpOnly: isHttpOnly != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("browser: failed to iterate Chrome cookie rows: %w", err)
	}

	return cookies, nil
}
