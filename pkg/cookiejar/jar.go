package cookiejar

import (
	"strings"
	"time"
)

// Jar is an ordered collection of cookie records associated with one client
// session. Insertion order is preserved for deterministic output; duplicate
// (name, domain, path) keys are only collapsed by Merge, which CookieLine
// applies before building the outgoing header.
type Jar struct {
	cookies       []Cookie
	defaultDomain string
}

// New returns an empty jar.
func New() *Jar {
	return &Jar{}
}

// NewWithDomain returns an empty jar whose default domain is used when
// parsed header text carries an empty Domain attribute.
func NewWithDomain(domain string) *Jar {
	return &Jar{defaultDomain: domain}
}

// SetDefaultDomain sets the jar's default domain.
func (j *Jar) SetDefaultDomain(domain string) {
	j.defaultDomain = domain
}

// DefaultDomain returns the jar's default domain.
func (j *Jar) DefaultDomain() string {
	return j.defaultDomain
}

// Len returns the number of stored records.
func (j *Jar) Len() int {
	return len(j.cookies)
}

// Grow reserves capacity for n additional records.
func (j *Jar) Grow(n int) {
	if n <= 0 {
		return
	}
	if cap(j.cookies)-len(j.cookies) < n {
		grown := make([]Cookie, len(j.cookies), len(j.cookies)+n)
		copy(grown, j.cookies)
		j.cookies = grown
	}
}

// Clear removes all records.
func (j *Jar) Clear() {
	j.cookies = j.cookies[:0]
}

// Cookies returns a copy of the stored records in insertion order.
func (j *Jar) Cookies() []Cookie {
	out := make([]Cookie, len(j.cookies))
	copy(out, j.cookies)
	return out
}

// Find returns the index of the first record with the given name.
func (j *Jar) Find(name string) (int, bool) {
	for i, c := range j.cookies {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// FindKey returns the index of the first record matching key's
// (name, domain, path) identity.
func (j *Jar) FindKey(key Cookie) (int, bool) {
	for i, c := range j.cookies {
		if c.Name == key.Name && c.Domain == key.Domain && c.Path == key.Path {
			return i, true
		}
	}
	return -1, false
}

// Get returns the value of the first record with a non-empty value for the
// given name, or the empty string.
func (j *Jar) Get(name string) string {
	for _, c := range j.cookies {
		if c.Name == name && c.Value != "" {
			return c.Value
		}
	}
	return ""
}

// Set appends a name/value record. It never overwrites in place;
// deduplication is Merge's job.
func (j *Jar) Set(name, value string) {
	j.cookies = append(j.cookies, Cookie{Name: name, Value: value})
}

// SetCookie appends a record.
func (j *Jar) SetCookie(c Cookie) {
	j.cookies = append(j.cookies, c)
}

// SetString parses one raw Set-Cookie header value and appends the resulting
// records. It returns false when the text is fatally malformed, in which
// case the jar is unchanged.
func (j *Jar) SetString(raw string) bool {
	cookies, ok := ParseSetCookie(raw, j.defaultDomain)
	if !ok {
		return false
	}
	j.cookies = append(j.cookies, cookies...)
	return true
}

// Remove removes all records with the given name.
func (j *Jar) Remove(name string) {
	kept := j.cookies[:0]
	for _, c := range j.cookies {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	j.cookies = kept
}

// CookieLine builds the value of an outgoing Cookie request header. The jar
// is self-merged to collapse duplicate slots, then records with an empty
// value, secure records on an insecure channel, and records expired at call
// time are skipped. The survivors are joined as "name=value; name=value".
// It returns the empty string when no record survives.
func (j *Jar) CookieLine(secure bool) string {
	if len(j.cookies) == 0 {
		return ""
	}

	now := time.Now()
	var b strings.Builder
	for _, c := range Merge(j, nil).cookies {
		if c.Value == "" {
			continue
		}
		if c.Secure && !secure {
			continue
		}
		if c.Expired(now) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(c.Name)
		b.WriteByte('=')
		b.WriteString(c.Value)
	}
	return b.String()
}
