package scraper

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// StrictPolicy strips all markup; safe for concurrent use.
	sanitizer    = bluemonday.StrictPolicy()
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// NormalizeText strips any stray markup from extracted text, collapses
// every whitespace run to a single space, and trims the ends. The result
// is stable: normalizing an already-normalized string returns it unchanged.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	// Sanitize escapes entities while stripping tags; unescape restores
	// the plain-text characters.
	cleaned := html.UnescapeString(sanitizer.Sanitize(text))
	cleaned = whitespaceRE.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
