package slice

import (
	"fmt"
	"strconv"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("split-to-columns", "split-to-columns <column> <regex>", newSplitToColumns)
}

func newSplitToColumns(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "split-to-columns", "column", line)
	if err != nil {
		return nil, err
	}
	pattern, err := w.RequireToken(tok, w.ModeToEOL, "split-to-columns", "regex", line)
	if err != nil {
		return nil, err
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		re, err := ctx.Regexp(pattern)
		if err != nil {
			return w.StepResult{}, fmt.Errorf("split-to-columns: %w", err)
		}
		s, ok := row.GetValue(col).String()
		if !ok {
			return w.StepResult{}, fmt.Errorf("split-to-columns: column %q is not a string", col)
		}
		pieces := re.Split(s, -1)
		for i, piece := range pieces {
			row.Add(col+"_"+strconv.Itoa(i+1), w.Str(piece))
		}
		return w.Keep(row), nil
	}), nil
}
