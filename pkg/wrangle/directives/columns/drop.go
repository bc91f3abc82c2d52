package columns

import (
	"fmt"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("drop", "drop <column>", newDrop)
}

func newDrop(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "drop", "column", line)
	if err != nil {
		return nil, err
	}
	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(col)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("drop: column %q not found", col)
		}
		row.RemoveAt(i)
		return w.Keep(row), nil
	}), nil
}
