// Package strcase implements the string-case directive family:
// uppercase, lowercase, titlecase (spec.md §4.5).
package strcase

import (
	"fmt"
	"strings"
	"unicode"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("uppercase", "uppercase <column>", newCaseStep("uppercase", strings.ToUpper))
	w.Register("lowercase", "lowercase <column>", newCaseStep("lowercase", strings.ToLower))
	w.Register("titlecase", "titlecase <column>", newCaseStep("titlecase", titleCase))
}

func newCaseStep(name string, transform func(string) string) w.Constructor {
	return func(tok *w.Tokenizer, line int, text string) (w.Step, error) {
		col, err := w.RequireToken(tok, w.ModeWhitespace, name, "col", line)
		if err != nil {
			return nil, err
		}
		return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
			i := row.Find(col)
			if i < 0 {
				return w.StepResult{}, fmt.Errorf("%s: column %q not found", name, col)
			}
			s, ok := row.GetValueAt(i).String()
			if !ok {
				return w.StepResult{}, fmt.Errorf("%s: column %q is not a string", name, col)
			}
			row.SetValue(i, w.Str(transform(s)))
			return w.Keep(row), nil
		}), nil
	}
}

// titleCase upper-cases the first letter of each whitespace-separated word
// and lower-cases the rest, the same ASCII-oriented behavior the original
// directive implements; no title-casing library is required for this.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	atWordStart := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			atWordStart = true
			b.WriteRune(r)
			continue
		}
		if atWordStart {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		atWordStart = false
	}
	return b.String()
}
