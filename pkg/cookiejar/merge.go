package cookiejar

import "sort"

// Merge combines two jars into a new jar holding at most one record per
// (name, domain, path) key. Either argument may be nil, so Merge(j, nil) is
// the self-merge used to deduplicate a jar.
//
// All records are stable-sorted by expiration descending, with session
// cookies ranked ahead of any concrete timestamp. The sorted list is then
// folded into the result: a candidate claims an unoccupied slot outright; an
// empty-valued candidate never displaces an occupied slot; a non-empty value
// always replaces an empty placeholder; otherwise a strictly later
// expiration is required to replace. Each slot thus converges to the
// longest-lived non-empty entry. The result keeps the post-sort order and
// inherits a's default domain.
func Merge(a, b *Jar) *Jar {
	var na, nb int
	if a != nil {
		na = len(a.cookies)
	}
	if b != nil {
		nb = len(b.cookies)
	}

	work := make([]Cookie, 0, na+nb)
	if a != nil {
		work = append(work, a.cookies...)
	}
	if b != nil {
		work = append(work, b.cookies...)
	}
	sort.SliceStable(work, func(i, j int) bool {
		return expiresAfter(work[i].Expires, work[j].Expires)
	})

	out := New()
	if a != nil {
		out.defaultDomain = a.defaultDomain
	}
	out.cookies = make([]Cookie, 0, len(work))

	slots := make(map[string]int, len(work))
	for _, c := range work {
		i, taken := slots[c.Key()]
		if !taken {
			slots[c.Key()] = len(out.cookies)
			out.cookies = append(out.cookies, c)
			continue
		}
		if c.Value == "" {
			continue
		}
		if cur := out.cookies[i]; cur.Value != "" && !expiresAfter(c.Expires, cur.Expires) {
			continue
		}
		out.cookies[i] = c
	}
	return out
}
