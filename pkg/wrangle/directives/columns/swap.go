package columns

import (
	"fmt"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("swap", "swap <a> <b>", newSwap)
}

func newSwap(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	a, err := w.RequireToken(tok, w.ModeWhitespace, "swap", "a", line)
	if err != nil {
		return nil, err
	}
	b, err := w.RequireToken(tok, w.ModeWhitespace, "swap", "b", line)
	if err != nil {
		return nil, err
	}
	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		if err := row.Swap(a, b); err != nil {
			return w.StepResult{}, fmt.Errorf("swap: %w", err)
		}
		return w.Keep(row), nil
	}), nil
}
