package expr

import (
	"fmt"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("fill-null-or-empty", "fill-null-or-empty <column> <fixed-value>", newFillNullOrEmpty)
}

// newFillNullOrEmpty replaces null or empty-string values with a fixed
// literal; an empty fixed literal is rejected at parse time since it
// would make the directive a no-op.
func newFillNullOrEmpty(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "fill-null-or-empty", "column", line)
	if err != nil {
		return nil, err
	}
	fixed, err := w.RequireToken(tok, w.ModeToEOL, "fill-null-or-empty", "fixed-value", line)
	if err != nil {
		return nil, err
	}
	if fixed == "" {
		return nil, w.NewDirectiveError("fill-null-or-empty", line, "fixed value cannot be an empty string")
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(col)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("fill-null-or-empty: column %q not found", col)
		}
		if row.GetValueAt(i).IsEmpty() {
			row.SetValue(i, w.Str(fixed))
		}
		return w.Keep(row), nil
	}), nil
}
