// Package browser imports cookies from browser cookie stores into a jar.
// It supports the Firefox moz_cookies SQLite schema, the Chrome cookies
// SQLite schema (unencrypted values only), and Netscape text cookie files.
//
// Cookie values are never logged or formatted into error messages; only
// names, domains, and source paths may appear in diagnostics.
package browser

// Format identifies the layout of a browser cookie store.
type Format int

const (
	// FormatUnknown means the store format could not be detected.
	FormatUnknown Format = iota
	// FormatFirefox means the store uses the Firefox moz_cookies SQLite schema.
	FormatFirefox
	// FormatChrome means the store uses the Chrome cookies SQLite schema.
	// Only unencrypted cookies (non-empty value) are usable.
	FormatChrome
	// FormatNetscape means the store is a Netscape tab-separated text file.
	FormatNetscape
)

// Source describes where cookies were imported from.
type Source struct {
	// Path is the filesystem path to the cookie store file.
	Path string
	// Format is the detected store format.
	Format Format
	// Browser is the detected browser name ("Firefox", "Chrome", "Netscape").
	Browser string
}
