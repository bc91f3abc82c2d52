// Package dates implements the date-formatting directive family:
// format-date and format-unix-timestamp. DSL patterns use Java
// SimpleDateFormat-style tokens (yyyy-MM-dd) per the original directive
// set, translated once per distinct pattern into a Go reference-time
// layout and cached on the ExecutionContext.
package dates

import "strings"

// token is a SimpleDateFormat run and its Go reference-time replacement,
// ordered longest-first so greedy matching never swallows a shorter
// token's prefix (e.g. "yyyy" before "yy").
type token struct {
	from, to string
}

var tokens = []token{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
	{"EEEE", "Monday"},
	{"EEE", "Mon"},
	{"HH", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"ss", "05"},
	{"SSS", "000"},
	{"a", "PM"},
	{"ZZZ", "-0700"},
	{"Z", "-0700"},
	{"zzz", "MST"},
	{"z", "MST"},
	{"'T'", "T"},
}

// translateLayout converts a SimpleDateFormat-style pattern into a Go
// reference-time layout by scanning left to right and matching the
// longest known token at each position; unrecognized runs (including
// literal punctuation like "-" and ":") pass through unchanged.
func translateLayout(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(pattern[i:], t.from) {
				b.WriteString(t.to)
				i += len(t.from)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}
