package parsefmt

import (
	"fmt"
	"strconv"
	"strings"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("parse-as-fixed-length", "parse-as-fixed-length <column> <widths> [<padding>]", newParseAsFixedLength)
}

// newParseAsFixedLength splits a column into fixed-width fields. Widths are
// a comma-separated list of column widths, validated and parsed once at
// construction time so a malformed recipe fails before any row is read.
// Padding defaults to a single space and is trimmed from each extracted
// field.
func newParseAsFixedLength(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "parse-as-fixed-length", "column", line)
	if err != nil {
		return nil, err
	}
	widthsTok, err := w.RequireToken(tok, w.ModeWhitespace, "parse-as-fixed-length", "widths", line)
	if err != nil {
		return nil, err
	}
	padding := " "
	if p, ok := w.OptionalToken(tok, w.ModeToEOL); ok {
		p = strings.TrimSpace(p)
		if p != "" {
			padding = p
		}
	}
	if len([]rune(padding)) != 1 {
		return nil, w.NewDirectiveError("parse-as-fixed-length", line, "padding must be a single character, got %q", padding)
	}
	padRune := []rune(padding)[0]

	parts := strings.Split(widthsTok, ",")
	widths := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, w.NewDirectiveError("parse-as-fixed-length", line, "invalid width %q: %v", p, err)
		}
		if n <= 0 {
			return nil, w.NewDirectiveError("parse-as-fixed-length", line, "width must be positive, got %d", n)
		}
		widths = append(widths, n)
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(col)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("parse-as-fixed-length: column %q not found", col)
		}
		s, ok := row.GetValueAt(i).String()
		if !ok {
			return w.StepResult{}, fmt.Errorf("parse-as-fixed-length: column %q is not a string", col)
		}
		runes := []rune(s)
		pos := 0
		for idx, width := range widths {
			var field []rune
			end := pos + width
			if pos < len(runes) {
				stop := end
				if stop > len(runes) {
					stop = len(runes)
				}
				field = runes[pos:stop]
			}
			pos = end
			value := strings.Trim(string(field), string(padRune))
			row.Add(fmt.Sprintf("%s_%d", col, idx+1), w.Str(value))
		}
		return w.Keep(row), nil
	}), nil
}
