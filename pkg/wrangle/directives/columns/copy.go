package columns

import (
	"fmt"
	"strings"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("copy", "copy <source> <destination> [force]", newCopy)
}

func newCopy(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	src, err := w.RequireToken(tok, w.ModeWhitespace, "copy", "source", line)
	if err != nil {
		return nil, err
	}
	dest, err := w.RequireToken(tok, w.ModeWhitespace, "copy", "destination", line)
	if err != nil {
		return nil, err
	}
	forceOpt, _ := w.OptionalToken(tok, w.ModeToEOL)
	force := strings.EqualFold(strings.TrimSpace(forceOpt), "true")

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(src)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("copy: source column %q not found", src)
		}
		if j := row.Find(dest); j >= 0 {
			if !force {
				return w.StepResult{}, fmt.Errorf("copy: destination column %q already exists (use force)", dest)
			}
			row.SetValue(j, row.GetValueAt(i))
			return w.Keep(row), nil
		}
		row.Add(dest, row.GetValueAt(i))
		return w.Keep(row), nil
	}), nil
}
