package wrangle

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// RequireToken pulls the next token in mode from tok, failing with a
// "Missing field" parse error (spec.md §4.4 step 3) tied to directive,
// field and line when none remains.
func RequireToken(tok *Tokenizer, mode Mode, directive, field string, line int) (string, error) {
	v, ok := tok.Next(mode)
	if !ok {
		return "", newMissingFieldError(directive, field, line, Usage(directive))
	}
	return v, nil
}

// OptionalToken pulls the next token in mode, returning ("", false) if the
// line has been fully consumed instead of failing.
func OptionalToken(tok *Tokenizer, mode Mode) (string, bool) {
	return tok.Next(mode)
}

// ResolveDelimiter implements the single-character delimiter escape rule
// in spec.md §4.4/§6: a raw token beginning with '\' is resolved through
// standard string-escape handling (\t, \n, \r, \\, \", ...) and the first
// rune of the resolved string becomes the delimiter; otherwise the first
// rune of the raw token is used directly.
func ResolveDelimiter(raw string) (rune, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty delimiter")
	}
	if raw[0] == '\\' {
		resolved, err := UnescapeString(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid delimiter escape %q: %w", raw, err)
		}
		if resolved == "" {
			return 0, fmt.Errorf("invalid delimiter escape %q: resolves to empty string", raw)
		}
		r, _ := utf8.DecodeRuneInString(resolved)
		return r, nil
	}
	r, _ := utf8.DecodeRuneInString(raw)
	return r, nil
}

// UnescapeString resolves standard string escapes (\t, \n, \r, \\, \", \',
// octal/hex/unicode escapes) in a raw, unquoted token by round-tripping it
// through strconv.Unquote.
func UnescapeString(raw string) (string, error) {
	quoted := `"` + escapeBareQuotes(raw) + `"`
	return strconv.Unquote(quoted)
}

// escapeBareQuotes guards against a literal '"' in raw (not already part
// of a recognized \" escape) breaking the synthetic quoting used by
// UnescapeString.
func escapeBareQuotes(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '"' && (i == 0 || raw[i-1] != '\\') {
			out = append(out, '\\', '"')
			continue
		}
		out = append(out, raw[i])
	}
	return string(out)
}
