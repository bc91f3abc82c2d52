package expr

import (
	"fmt"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("set column", "set column <column> <expression>", newSetColumn)
}

// newSetColumn evaluates an expression over the row and writes the
// result into column, creating it if absent.
func newSetColumn(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "set column", "column", line)
	if err != nil {
		return nil, err
	}
	exprText, err := w.RequireToken(tok, w.ModeToEOL, "set column", "expression", line)
	if err != nil {
		return nil, err
	}
	node, err := parseExpression(exprText)
	if err != nil {
		return nil, w.NewDirectiveError("set column", line, "%v", err)
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		v, err := node.eval(row)
		if err != nil {
			return w.StepResult{}, fmt.Errorf("set column: %w", err)
		}
		row.SetValueByName(col, v)
		return w.Keep(row), nil
	}), nil
}
