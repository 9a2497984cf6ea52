package browser

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/warpdl/cookiejar/pkg/cookiejar"
)

// parseFirefox reads cookies for the given domain from a Firefox
// cookies.sqlite file. The dbPath must point to a copied (not in-use)
// database. Expired cookies are skipped.
func parseFirefox(dbPath, domain string) ([]cookiejar.Cookie, error) {
	dsn := fmt.Sprintf("file:%s?immutable=1", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("browser: cannot open Firefox cookie database: %w", err)
	}
	defer db.Close()

	now := time.Now().Unix()
	dotDomain := "." + domain
	wildcardDomain := "%." + domain

	rows, err := db.Query(`
        SELECT name, value, host, path, expiry, isSecure, isHttpOnly
        FROM moz_cookies
        WHERE (host = ? OR host = ? OR host LIKE ?)
          AND expiry > ?
        ORDER BY path DESC, name ASC
    `, domain, dotDomain, wildcardDomain, now)
	if err != nil {
		return nil, fmt.Errorf("browser: failed to query Firefox cookies: %w", err)
	}
	defer rows.Close()

	var cookies []cookiejar.Cookie
	for rows.Next() {
		var (
			name, value, host, path string
			expiry                  int64
			isSecure, isHttpOnly    int
		)
		if err := rows.Scan(&name, &value, &host, &path, &expiry, &isSecure, &isHttpOnly); err != nil {
			return nil, fmt.Errorf("browser: failed to scan Firefox cookie row: %w", err)
		}
		cookies = append(cookies, cookiejar.Cookie{
			Name:     name,
			Value:    value,
			Domain:   host,
			Path:     path,
			Expires:  time.Unix(expiry, 0),
			Secure:   isSecure != 0,
			HttpOnly: isHttpOnly != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("browser: failed to iterate Firefox cookie rows: %w", err)
	}

	return cookies, nil
}
