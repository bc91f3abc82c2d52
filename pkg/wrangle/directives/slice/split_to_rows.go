package slice

import (
	"fmt"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("split-to-rows", "split-to-rows <column> <regex>", newSplitToRows)
}

func newSplitToRows(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "split-to-rows", "column", line)
	if err != nil {
		return nil, err
	}
	pattern, err := w.RequireToken(tok, w.ModeToEOL, "split-to-rows", "regex", line)
	if err != nil {
		return nil, err
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		re, err := ctx.Regexp(pattern)
		if err != nil {
			return w.StepResult{}, fmt.Errorf("split-to-rows: %w", err)
		}
		s, ok := row.GetValue(col).String()
		if !ok {
			return w.StepResult{}, fmt.Errorf("split-to-rows: column %q is not a string", col)
		}
		pieces := re.Split(s, -1)
		out := make([]*w.Row, len(pieces))
		for i, piece := range pieces {
			clone := row.Clone()
			clone.SetValueByName(col, w.Str(piece))
			out[i] = clone
		}
		return w.Many(out...), nil
	}), nil
}
