package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/warpdl/cookiejar/pkg/cookiejar"
	"github.com/warpdl/cookiejar/pkg/logger"
	"github.com/warpdl/cookiejar/pkg/netscape"
)

// Import reads cookies for the given domain from the browser cookie store at
// sourcePath. It detects the store format, copies SQLite stores out from
// under the owning browser, and returns the matching records together with
// source metadata. A nil log discards diagnostics.
func Import(sourcePath, domain string, log logger.Logger) ([]cookiejar.Cookie, *Source, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	format, err := DetectFormat(sourcePath)
	if err != nil {
		return nil, nil, err
	}

	source := &Source{
		Path:   sourcePath,
		Format: format,
	}

	var cookies []cookiejar.Cookie
	switch format {
	case FormatFirefox:
		source.Browser = "Firefox"
		cookies, err = importSQLite(sourcePath, domain, parseFirefox)
	case FormatChrome:
		source.Browser = "Chrome"
		cookies, err = importSQLite(sourcePath, domain, parseChrome)
	case FormatNetscape:
		source.Browser = "Netscape"
		cookies, err = importNetscape(sourcePath, domain, log)
	default:
		return nil, nil, fmt.Errorf("browser: unsupported cookie store format at %s", sourcePath)
	}
	if err != nil {
		return nil, nil, err
	}

	log.Info("imported %d cookies for %s from %s store", len(cookies), domain, source.Browser)
	return cookies, source, nil
}

// importSQLite copies a SQLite cookie store safely and parses it with the
// given schema parser.
func importSQLite(sourcePath, domain string, parser func(string, string) ([]cookiejar.Cookie, error)) ([]cookiejar.Cookie, error) {
	tempDir, cleanup, err := safeCopy(sourcePath)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	copiedPath := filepath.Join(tempDir, filepath.Base(sourcePath))
	return parser(copiedPath, domain)
}

// importNetscape loads a Netscape cookie file and keeps the records that
// match the domain and have not expired.
func importNetscape(sourcePath, domain string, log logger.Logger) ([]cookiejar.Cookie, error) {
	f, err := os.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("browser: cannot open Netscape cookie file: %w", err)
	}
	defer f.Close()

	jar := cookiejar.New()
	if err := netscape.Read(f, jar); err != nil {
		return nil, err
	}

	now := time.Now()
	dotDomain := "." + domain
	var cookies []cookiejar.Cookie
	for _, c := range jar.Cookies() {
		if !matchesDomain(c.Domain, domain, dotDomain) {
			continue
		}
		if c.Expired(now) {
			log.Warning("skipping expired cookie %q for %s", c.Name, c.Domain)
			continue
		}
		cookies = append(cookies, c)
	}
	return cookies, nil
}

// matchesDomain checks if a cookie domain matches the target domain:
// exact match, dot-prefixed match, or subdomain match.
func matchesDomain(cookieDomain, domain, dotDomain string) bool {
	if cookieDomain == domain || cookieDomain == dotDomain {
		return true
	}
	return strings.HasSuffix(cookieDomain, dotDomain)
}
