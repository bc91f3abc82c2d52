// Package slice implements the slicing/splitting directive family:
// indexsplit, split, split-to-rows, split-to-columns, character-cut, and
// cut -c (spec.md §4.5).
package slice

import (
	"fmt"
	"strconv"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("indexsplit", "indexsplit <source> <start> <end> <destination>", newIndexSplit)
}

func newIndexSplit(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	src, err := w.RequireToken(tok, w.ModeWhitespace, "indexsplit", "source", line)
	if err != nil {
		return nil, err
	}
	startStr, err := w.RequireToken(tok, w.ModeWhitespace, "indexsplit", "start", line)
	if err != nil {
		return nil, err
	}
	start, err := strconv.Atoi(startStr)
	if err != nil {
		return nil, w.NewDirectiveError("indexsplit", line, "Invalid start index %q", startStr)
	}
	endStr, err := w.RequireToken(tok, w.ModeWhitespace, "indexsplit", "end", line)
	if err != nil {
		return nil, err
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		return nil, w.NewDirectiveError("indexsplit", line, "Invalid end index %q", endStr)
	}
	dest, err := w.RequireToken(tok, w.ModeWhitespace, "indexsplit", "destination", line)
	if err != nil {
		return nil, err
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		s, ok := row.GetValue(src).String()
		if !ok {
			return w.StepResult{}, fmt.Errorf("indexsplit: column %q is not a string", src)
		}
		lo, hi := clamp(start, end, len(s))
		row.Add(dest, w.Str(s[lo:hi]))
		return w.Keep(row), nil
	}), nil
}

// clamp bounds [start, end) to [0, n], swapping if inverted.
func clamp(start, end, n int) (int, int) {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	return start, end
}
