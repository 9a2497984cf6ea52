// Package cookiejar implements a client-side HTTP cookie jar: parsing of
// Set-Cookie header text, ordered storage of cookie records, merging of jars
// with recency/non-emptiness precedence, and building of the outgoing Cookie
// request header line.
//
// A Jar is a plain in-memory value with no internal synchronization.
// Concurrent mutation must be serialized by the caller, typically by keeping
// one jar per client session.
package cookiejar

import "time"

// Cookie represents a single HTTP cookie record: one name/value pair plus
// its domain/path/expiry/flag attributes.
type Cookie struct {
	// Name is the cookie name. A usable cookie always has a non-empty name;
	// the header parser never emits a record without one.
	Name string
	// Value is the cookie value. An empty value marks the cookie as cleared.
	Value string
	// Domain is the cookie domain. Empty matches the request domain
	// implicitly; callers may substitute a configured default domain.
	Domain string
	// Path is the cookie path scope. Empty matches any path.
	Path string
	// Expires is the expiration time. The zero value means a session cookie
	// that never expires by time.
	Expires time.Time
	// Secure indicates the cookie is only sent over an encrypted channel.
	Secure bool
	// HttpOnly indicates the cookie is not accessible via client-side scripts.
	HttpOnly bool
}

// Key returns the (name, domain, path) identity key used for deduplication.
// Two records with the same key occupy the same cookie slot; only one
// survives a merge.
func (c Cookie) Key() string {
	return c.Name + "\x00" + c.Domain + "\x00" + c.Path
}

// Session reports whether the cookie has no concrete expiration.
func (c Cookie) Session() bool {
	return c.Expires.IsZero()
}

// Expired reports whether the cookie has a concrete expiration strictly
// earlier than now. Session cookies never expire by time.
func (c Cookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && c.Expires.Before(now)
}

// expiresAfter reports whether expiration a ranks strictly later than b,
// with the zero (session) time ranked after any concrete timestamp so a
// session cookie is never displaced by a stale one.
func expiresAfter(a, b time.Time) bool {
	if a.IsZero() {
		return !b.IsZero()
	}
	if b.IsZero() {
		return false
	}
	return a.After(b)
}
