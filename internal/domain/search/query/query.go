package query

import "strings"

// MaxLength is the maximum number of bytes of a raw query that are considered.
const MaxLength = 256

// metacharacters are stripped so that a query is always matched as a literal substring.
const metacharacters = `\^$.*+?()[]{}|`

// Query is a sanitized, case-insensitive search query.
type Query struct {
	raw   string
	text  string
	lower string
}

// New sanitizes raw and returns the resulting query.
func New(raw string) Query {
	if len(raw) > MaxLength {
		raw = truncate(raw, MaxLength)
	}
	text := Sanitize(raw)
	return Query{raw: raw, text: text, lower: strings.ToLower(text)}
}

// Sanitize removes regular expression metacharacters from s.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(metacharacters, r) {
			return -1
		}
		return r
	}, s)
}

// Raw returns the query as typed, before sanitization.
func (q Query) Raw() string { return q.raw }

// Text returns the sanitized query.
func (q Query) Text() string { return q.text }

// IsEmpty reports whether nothing is left to match after sanitization.
func (q Query) IsEmpty() bool { return q.text == "" }

// Count returns the number of non-overlapping case-insensitive occurrences of q in s.
func (q Query) Count(s string) int {
	if q.lower == "" {
		return 0
	}
	return strings.Count(strings.ToLower(s), q.lower)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	for n > 0 && n < len(s) && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
