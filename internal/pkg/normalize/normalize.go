package normalize

import (
	"strings"
	"unicode"
)

// Label canonicalizes a free-text session label so that labels differing only
// in case or spacing compare equal. Returns ok=false when the input is empty
// or whitespace-only.
func Label(s string) (string, bool) {
	folded := strings.ToLower(strings.TrimSpace(s))
	if folded == "" {
		return "", false
	}
	return collapseWhitespace(folded), true
}

// BaseCourse extracts the course identity shared by numbered or dashed session
// labels ("Strategy 1", "Strategy 2" and "Strategy – Capstone" all map to
// "strategy"). The label is normalized, then cut at the first occurrence of a
// whitespace run followed by a digit, or any of '-', '–' (en dash), ':'.
// Returns ok=false when the input, or the portion before the cut, is empty.
func BaseCourse(s string) (string, bool) {
	label, ok := Label(s)
	if !ok {
		return "", false
	}

	cut := len(label)
	runes := []rune(label)
	for i, r := range runes {
		if r == '-' || r == '–' || r == ':' {
			cut = i
			break
		}
		if unicode.IsSpace(r) {
			// Look past the whitespace run for a digit.
			j := i
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			if j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				cut = i
				break
			}
		}
	}

	base := strings.TrimSpace(string(runes[:cut]))
	if base == "" {
		return "", false
	}
	return collapseWhitespace(base), true
}

// collapseWhitespace replaces every internal whitespace run with a single space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
