package expr

import (
	"fmt"
	"regexp"
	"strings"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("sed", "sed <column> <expression>", newSed)
}

// newSed implements a stream-editor-style substitution using the
// familiar sed "s/pattern/replacement/flags" form; "g" is the only
// supported flag (replace all occurrences instead of just the first).
func newSed(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "sed", "column", line)
	if err != nil {
		return nil, err
	}
	expr, err := w.RequireToken(tok, w.ModeToEOL, "sed", "expression", line)
	if err != nil {
		return nil, err
	}
	pattern, replacement, global, err := parseSedExpr(expr)
	if err != nil {
		return nil, w.NewDirectiveError("sed", line, "%v", err)
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(col)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("sed: column %q not found", col)
		}
		s, ok := row.GetValueAt(i).String()
		if !ok {
			return w.StepResult{}, fmt.Errorf("sed: column %q is not a string", col)
		}
		re, err := ctx.Regexp(pattern)
		if err != nil {
			return w.StepResult{}, fmt.Errorf("sed: %w", err)
		}
		var result string
		if global {
			result = re.ReplaceAllString(s, replacement)
		} else {
			result = replaceFirst(re, s, replacement)
		}
		row.SetValue(i, w.Str(result))
		return w.Keep(row), nil
	}), nil
}

func replaceFirst(re *regexp.Regexp, s, replacement string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + replacement + s[loc[1]:]
}

// parseSedExpr parses "s/pattern/replacement/flags"; the delimiter is
// always '/'. Escaped delimiters within pattern/replacement (\/) are not
// supported, matching the directive's single-purpose scope here.
func parseSedExpr(expr string) (pattern, replacement string, global bool, err error) {
	expr = strings.TrimSpace(expr)
	if len(expr) < 2 || expr[0] != 's' || expr[1] != '/' {
		return "", "", false, fmt.Errorf("sed expression must be of the form s/pattern/replacement/[g], got %q", expr)
	}
	parts := strings.SplitN(expr[2:], "/", 3)
	if len(parts) != 3 {
		return "", "", false, fmt.Errorf("sed expression must be of the form s/pattern/replacement/[g], got %q", expr)
	}
	return parts[0], parts[1], strings.Contains(parts[2], "g"), nil
}
