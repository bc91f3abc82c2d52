package columns

import (
	"fmt"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("merge", "merge <first> <second> <new-column> <separator>", newMerge)
}

func newMerge(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	first, err := w.RequireToken(tok, w.ModeWhitespace, "merge", "first", line)
	if err != nil {
		return nil, err
	}
	second, err := w.RequireToken(tok, w.ModeWhitespace, "merge", "second", line)
	if err != nil {
		return nil, err
	}
	dest, err := w.RequireToken(tok, w.ModeWhitespace, "merge", "new-column", line)
	if err != nil {
		return nil, err
	}
	sep, err := w.RequireToken(tok, w.ModeWhitespace, "merge", "separator", line)
	if err != nil {
		return nil, err
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(first)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("merge: column %q not found", first)
		}
		j := row.Find(second)
		if j < 0 {
			return w.StepResult{}, fmt.Errorf("merge: column %q not found", second)
		}
		merged := row.GetValueAt(i).Stringify() + sep + row.GetValueAt(j).Stringify()
		row.Add(dest, w.Str(merged))
		return w.Keep(row), nil
	}), nil
}
