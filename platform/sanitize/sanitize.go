// Package sanitize turns HTML snippets into plain text for non-HTML outputs.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// StripHTML removes HTML tags, decodes entities and collapses whitespace.
// Link text is kept, the link target is dropped.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = html.UnescapeString(result)
	// Re-strip after entity decode to catch encoded tags
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(result, " "))
}
