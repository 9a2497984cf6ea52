package cmd

const DESCRIPTION = `
cookiejar is a toolbox for client-side HTTP cookies. It parses
Set-Cookie header text, merges cookie files with well-defined
precedence, builds outgoing Cookie header lines, converts between
the Netscape/curl cookie-file format and an encrypted store, and
imports cookies from browser databases.
`

const (
	ShowDescription = `The show command loads a Netscape-format cookie file and
prints every stored record with its attributes.

Example:
        cookiejar show cookies.txt

`
	LineDescription = `The line command loads a Netscape-format cookie file,
deduplicates it, and prints the value of the outgoing
Cookie request header. Secure cookies are included only
with --secure; expired and cleared cookies are skipped.

Example:
        cookiejar line --secure cookies.txt

`
	MergeDescription = `The merge command combines two Netscape-format cookie files
into one, keeping a single record per (name, domain, path)
with the most future-reaching expiration, preferring
non-empty values.

Example:
        cookiejar merge old.txt new.txt -o merged.txt

`
	ImportDescription = `The import command reads cookies for a domain from a browser
cookie store (Firefox or Chrome SQLite database, or a Netscape
text file) and writes them to a Netscape-format cookie file.

Example:
        cookiejar import --domain example.com -o cookies.txt ~/.mozilla/firefox/xyz/cookies.sqlite

`
	SealDescription = `The seal command converts a Netscape-format cookie file into
an AES-256-GCM encrypted store. The key is taken from the
COOKIEJAR_STORE_KEY environment variable (hex) or from the
OS keyring, falling back to a key file in the user config
directory.

Example:
        cookiejar seal cookies.txt -o cookies.sealed

`
	UnsealDescription = `The unseal command decrypts a sealed cookie store and writes
its records to a Netscape-format cookie file.

Example:
        cookiejar unseal cookies.sealed -o cookies.txt

`
)
