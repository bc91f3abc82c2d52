package columns

import (
	"fmt"
	"strings"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("set columns", "set columns <name1, name2, ...>", newSetColumns)
}

func newSetColumns(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	raw, err := w.RequireToken(tok, w.ModeToEOL, "set columns", "name1, name2, ...", line)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(raw, ",")
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = strings.TrimSpace(p)
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		if err := row.SetNames(names); err != nil {
			return w.StepResult{}, fmt.Errorf("set columns: %w", err)
		}
		return w.Keep(row), nil
	}), nil
}
