package parsefmt

import (
	"fmt"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("parse-as-xml", "parse-as-xml <column>", newParseAsXML)
}

// newParseAsXML decodes the column's XML string in place into a
// JSONObject-handle value, the XML analogue of parse-as-json, so
// downstream xml-path/json-path steps can navigate it without
// re-parsing the raw string on every access.
func newParseAsXML(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "parse-as-xml", "column", line)
	if err != nil {
		return nil, err
	}
	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(col)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("parse-as-xml: column %q not found", col)
		}
		s, ok := row.GetValueAt(i).String()
		if !ok {
			return w.StepResult{}, fmt.Errorf("parse-as-xml: column %q is not a string", col)
		}
		tree, err := xmlToMap([]byte(s))
		if err != nil {
			return w.StepResult{}, fmt.Errorf("parse-as-xml: %w", err)
		}
		row.SetValue(i, w.JSONObject(tree))
		return w.Keep(row), nil
	}), nil
}
