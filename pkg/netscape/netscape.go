// Package netscape reads and writes the Netscape HTTP cookie-file format,
// the tab-separated plaintext persistence format shared with curl and other
// command-line HTTP tooling.
package netscape

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/warpdl/cookiejar/pkg/cookiejar"
)

// fileHeader is the memo block written at the top of a freshly created
// cookie file, matching what libcurl emits.
const fileHeader = "# Netscape HTTP Cookie File\n" +
	"# http://curl.haxx.se/docs/http-cookies.html\n" +
	"# This file was generated by libcurl! Edit at your own risk.\n\n"

// httpOnlyPrefix marks HttpOnly cookies in curl-compatible files.
const httpOnlyPrefix = "#HttpOnly_"

// ErrMalformedLine is returned when a non-comment line holds fewer than the
// seven tab-separated columns the format requires. The whole load fails.
var ErrMalformedLine = errors.New("netscape: malformed cookie line")

// Write writes one tab-separated line per stored record to w. An empty
// stored domain is substituted with the jar's default domain; the second
// column records whether the stored domain was non-empty. HttpOnly records
// are written with the #HttpOnly_ domain prefix.
func Write(w io.Writer, jar *cookiejar.Jar) error {
	bw := bufio.NewWriter(w)
	for _, c := range jar.Cookies() {
		domain := c.Domain
		flag := "TRUE"
		if domain == "" {
			domain = jar.DefaultDomain()
			flag = "FALSE"
		}
		if c.HttpOnly {
			domain = httpOnlyPrefix + domain
		}

		secure := "FALSE"
		if c.Secure {
			secure = "TRUE"
		}

		var expires int64
		if !c.Session() {
			expires = c.Expires.Unix()
		}

		fields := []string{
			domain, flag, c.Path, secure,
			strconv.FormatInt(expires, 10),
			c.Name, c.Value,
		}
		if _, err := bw.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			return fmt.Errorf("netscape: write cookie line: %w", err)
		}
	}
	return bw.Flush()
}

// Save appends the jar's records to the file at path on fs, creating it if
// needed. The libcurl memo header is emitted only when the file is newly
// created or empty. Failure to open the destination is returned unretried.
func Save(fs afero.Fs, path string, jar *cookiejar.Jar) error {
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("netscape: cannot open cookie file for writing: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("netscape: cannot stat cookie file: %w", err)
	}
	if info.Size() == 0 {
		if _, err := f.WriteString(fileHeader); err != nil {
			return fmt.Errorf("netscape: write file header: %w", err)
		}
	}
	return Write(f, jar)
}

// Read parses cookie lines from r and appends the records to jar. Blank
// lines and comments are skipped; a #HttpOnly_ domain prefix sets the
// HttpOnly flag. Consecutive tabs are collapsed when splitting, and any line
// with fewer than seven columns fails the whole read: jar may then hold a
// partial prefix of the file and must be discarded by the caller.
func Read(r io.Reader, jar *cookiejar.Jar) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		httpOnly := false
		if strings.HasPrefix(line, httpOnlyPrefix) {
			httpOnly = true
			line = line[len(httpOnlyPrefix):]
		} else if strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool { return r == '\t' })
		if len(fields) < 7 {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

		expires, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: bad expiry %q", ErrMalformedLine, fields[4])
		}

		c := cookiejar.Cookie{
			Name:     fields[5],
			Value:    fields[6],
			Domain:   fields[0],
			Path:     fields[2],
			Secure:   strings.EqualFold(fields[3], "TRUE"),
			HttpOnly: httpOnly,
		}
		if expires != 0 {
			c.Expires = time.Unix(expires, 0)
		}
		jar.SetCookie(c)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("netscape: read cookie file: %w", err)
	}
	return nil
}

// Load reads the file at path on fs into jar. The jar is only modified on
// full success: an open failure or a malformed record leaves it unchanged.
func Load(fs afero.Fs, path string, jar *cookiejar.Jar) error {
	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("netscape: cannot open cookie file: %w", err)
	}
	defer f.Close()

	scratch := cookiejar.New()
	if err := Read(f, scratch); err != nil {
		return err
	}
	for _, c := range scratch.Cookies() {
		jar.SetCookie(c)
	}
	return nil
}
