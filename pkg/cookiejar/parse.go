package cookiejar

import (
	"strings"
	"time"
)

// httpDateLayouts are the date formats accepted for the Expires attribute.
// Servers in the wild emit RFC 1123, the dash-separated RFC 850 variants,
// and occasionally asctime.
var httpDateLayouts = []string{
	time.RFC1123,
	"Mon, 02-Jan-2006 15:04:05 MST",
	"Mon, 02-Jan-06 15:04:05 MST",
	time.RFC850,
	time.ANSIC,
}

// parseHTTPDate parses an HTTP date string. It returns the zero time and
// false when the string matches none of the accepted layouts.
func parseHTTPDate(s string) (time.Time, bool) {
	for _, layout := range httpDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// isCtl reports whether c is an ASCII control octet.
func isCtl(c byte) bool {
	return c < 0x20 || c == 0x7f
}

// isChar reports whether c is a printable ASCII octet valid inside header
// names and values. Tab and other control octets are not valid.
func isChar(c byte) bool {
	return c < 0x80 && !isCtl(c)
}

// isSeparator reports whether c is an RFC 2616 separator (tspecial).
func isSeparator(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/',
		'[', ']', '?', '=', '{', '}', ' ', '\t':
		return true
	}
	return false
}

// parser states for ParseSetCookie.
type parseState int

const (
	stateNameStart parseState = iota
	stateName
	stateValueStart
	stateValue
	stateBad
)

// ParseSetCookie parses the raw value of one Set-Cookie response header into
// zero or more cookie records. A single line may encode multiple name/value
// pairs sharing one set of attributes; every returned record carries the
// same domain, path, expiry and flags.
//
// It never panics on malformed input: ok is false when the line is fatally
// malformed (the returned slice is then nil), and true otherwise. A line
// holding only attributes yields zero records with ok still true. When the
// Domain attribute is present but empty, defaultDomain is substituted.
func ParseSetCookie(raw, defaultDomain string) (cookies []Cookie, ok bool) {
	var (
		state   = stateNameStart
		name    string
		value   string
		names   []string
		pairs   = make(map[string]string)
		pending Cookie
	)

	commit := func() {
		if _, seen := pairs[name]; !seen {
			names = append(names, name)
		}
		pairs[name] = value
		name, value = "", ""
	}

	// flag consumes a bare (valueless) token; only secure and httponly are
	// legal there.
	flag := func() bool {
		switch name {
		case "secure":
			pending.Secure = true
		case "httponly":
			pending.HttpOnly = true
		default:
			return false
		}
		name = ""
		return true
	}

	for i := 0; i < len(raw) && state != stateBad; i++ {
		c := raw[i]
		switch state {
		case stateNameStart:
			switch {
			case isSeparator(c):
				// skip padding, empty tokens, and stray separators
			case isChar(c):
				name = string(c)
				state = stateName
			default:
				state = stateBad
			}
		case stateName:
			switch {
			case c == ';':
				if flag() {
					state = stateNameStart
				} else {
					state = stateBad
				}
			case c == '=':
				state = stateValueStart
			case !isChar(c):
				state = stateBad
			case isSeparator(c) && c != '_':
				name = ""
				state = stateNameStart
			default:
				name += string(c)
			}
		case stateValueStart:
			switch {
			case c == ';':
				commit()
				state = stateNameStart
			case c == '"' || c == '\'':
				// quotes around values are stripped
			case isChar(c):
				value = string(c)
				state = stateValue
			default:
				state = stateBad
			}
		case stateValue:
			switch {
			case c == ';' || c == '"' || c == '\'':
				commit()
				state = stateNameStart
			case isChar(c):
				value += string(c)
			default:
				state = stateBad
			}
		}
	}

	switch state {
	case stateBad:
		return nil, false
	case stateName:
		if name != "" {
			flag()
		}
	case stateValue:
		if value != "" {
			commit()
		}
	}

	// Resolve the attribute entries; whatever remains in the mapping is a
	// real name/value pair.
	out := names[:0]
	for _, n := range names {
		switch strings.ToLower(n) {
		case "expires":
			// An unparseable date is a recoverable per-attribute failure:
			// the attribute is ignored and the line still parses.
			if t, dok := parseHTTPDate(pairs[n]); dok {
				pending.Expires = t
			}
		case "domain":
			pending.Domain = pairs[n]
			if pending.Domain == "" {
				pending.Domain = defaultDomain
			}
		case "path":
			pending.Path = pairs[n]
		default:
			out = append(out, n)
			continue
		}
		delete(pairs, n)
	}

	for _, n := range out {
		c := pending
		c.Name = n
		c.Value = pairs[n]
		cookies = append(cookies, c)
	}
	return cookies, true
}
