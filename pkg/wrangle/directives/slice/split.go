package slice

import (
	"fmt"
	"strings"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("split", "split <source> <delimiter> <new-column-1> <new-column-2>", newSplit)
}

func newSplit(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	src, err := w.RequireToken(tok, w.ModeWhitespace, "split", "source-column-name", line)
	if err != nil {
		return nil, err
	}
	delimRaw, err := w.RequireToken(tok, w.ModeWhitespace, "split", "delimiter", line)
	if err != nil {
		return nil, err
	}
	delim, err := w.ResolveDelimiter(delimRaw)
	if err != nil {
		return nil, w.NewDirectiveError("split", line, "%v", err)
	}
	first, err := w.RequireToken(tok, w.ModeWhitespace, "split", "new-column-1", line)
	if err != nil {
		return nil, err
	}
	second, err := w.RequireToken(tok, w.ModeWhitespace, "split", "new-column-2", line)
	if err != nil {
		return nil, err
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		s, ok := row.GetValue(src).String()
		if !ok {
			return w.StepResult{}, fmt.Errorf("split: column %q is not a string", src)
		}
		idx := strings.IndexRune(s, delim)
		var head, tail string
		if idx < 0 {
			head = s
		} else {
			head = s[:idx]
			tail = s[idx+len(string(delim)):]
		}
		row.Add(first, w.Str(head))
		row.Add(second, w.Str(tail))
		return w.Keep(row), nil
	}), nil
}
