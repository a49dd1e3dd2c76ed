package scraper

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether s parses as an absolute URL carrying both a
// scheme and a host. It never returns an error: malformed input is simply
// invalid. Used to gate the fetch target and to filter every resolved
// link and image URL.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// resolveURL joins a possibly-relative reference against the page base
// per RFC 3986. Returns "" when the reference cannot be parsed.
func resolveURL(base *url.URL, ref string) string {
	parsed, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	return base.ResolveReference(parsed).String()
}

// isExternal reports whether the resolved URL points at a different
// network location than the page it was found on.
func isExternal(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host != base.Host
}
