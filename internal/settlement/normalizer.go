package settlement

import "strings"

// Normalize collapses the per-page text of a settlement document into a
// single line suitable for pattern matching. All whitespace runs (including
// newlines and page breaks) become single spaces, so a label and its value
// split across a line wrap still match single-line patterns.
func Normalize(pages []string) string {
	joined := strings.Join(pages, " ")
	return strings.Join(strings.Fields(joined), " ")
}
