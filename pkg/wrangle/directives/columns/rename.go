// Package columns implements the column-shape directive family: rename,
// drop, copy, swap, merge, set columns, and flatten (spec.md §4.5).
package columns

import (
	"fmt"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("rename", "rename <old> <new>", newRename)
}

func newRename(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	oldCol, err := w.RequireToken(tok, w.ModeWhitespace, "rename", "old", line)
	if err != nil {
		return nil, err
	}
	newCol, err := w.RequireToken(tok, w.ModeWhitespace, "rename", "new", line)
	if err != nil {
		return nil, err
	}
	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		if err := row.Rename(oldCol, newCol); err != nil {
			return w.StepResult{}, fmt.Errorf("rename: %w", err)
		}
		return w.Keep(row), nil
	}), nil
}
