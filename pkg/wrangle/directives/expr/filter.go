package expr

import (
	"fmt"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("filter-row-if-matched", "filter-row-if-matched <column> <regex>", newRegexFilter(false))
	// grep shares filter-row-if-matched's constructor but with inverted
	// SKIP polarity: it keeps matches and drops everything else, matching
	// Unix grep semantics rather than "filter if matched".
	w.Register("grep", "grep <column> <pattern>", newRegexFilter(true))
	w.Register("filter-row-if-true", "filter-row-if-true <condition>", newConditionFilter)
}

// newRegexFilter builds filter-row-if-matched (skipInverted=false, SKIP on
// match) and grep (skipInverted=true, SKIP on non-match).
func newRegexFilter(skipInverted bool) w.Constructor {
	directive := "filter-row-if-matched"
	field := "regex"
	if skipInverted {
		directive = "grep"
		field = "pattern"
	}
	return func(tok *w.Tokenizer, line int, text string) (w.Step, error) {
		col, err := w.RequireToken(tok, w.ModeWhitespace, directive, "column", line)
		if err != nil {
			return nil, err
		}
		pattern, err := w.RequireToken(tok, w.ModeToEOL, directive, field, line)
		if err != nil {
			return nil, err
		}

		return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
			i := row.Find(col)
			if i < 0 {
				return w.StepResult{}, fmt.Errorf("%s: column %q not found", directive, col)
			}
			s, ok := row.GetValueAt(i).String()
			if !ok {
				return w.StepResult{}, fmt.Errorf("%s: column %q is not a string", directive, col)
			}
			re, err := ctx.Regexp(pattern)
			if err != nil {
				return w.StepResult{}, fmt.Errorf("%s: %w", directive, err)
			}
			matched := re.MatchString(s)
			skip := matched
			if skipInverted {
				skip = !matched
			}
			if skip {
				return w.Skip(), nil
			}
			return w.Keep(row), nil
		}), nil
	}
}

// newConditionFilter implements filter-row-if-true: SKIP when the
// expression evaluates truthy.
func newConditionFilter(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	condText, err := w.RequireToken(tok, w.ModeToEOL, "filter-row-if-true", "condition", line)
	if err != nil {
		return nil, err
	}
	node, err := parseExpression(condText)
	if err != nil {
		return nil, w.NewDirectiveError("filter-row-if-true", line, "%v", err)
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		v, err := node.eval(row)
		if err != nil {
			return w.StepResult{}, fmt.Errorf("filter-row-if-true: %w", err)
		}
		if truthy(v) {
			return w.Skip(), nil
		}
		return w.Keep(row), nil
	}), nil
}
