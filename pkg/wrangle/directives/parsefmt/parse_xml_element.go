package parsefmt

import (
	"fmt"
	"strings"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("parse-xml-element", "parse-xml-element <column> <delete-column>", newParseXMLElement)
}

// newParseXMLElement parses the column's value as an XML fragment and
// appends one dotted-path column per child element, attribute ("@name")
// and non-empty text ("#text") entry of the root element, mirroring
// parse-as-json's one-level expansion contract.
func newParseXMLElement(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "parse-xml-element", "column", line)
	if err != nil {
		return nil, err
	}
	deleteOpt, _ := w.OptionalToken(tok, w.ModeToEOL)
	deleteCol := strings.EqualFold(strings.TrimSpace(deleteOpt), "true")

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(col)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("parse-xml-element: column %q not found", col)
		}
		s, ok := row.GetValueAt(i).String()
		if !ok {
			return w.StepResult{}, fmt.Errorf("parse-xml-element: column %q is not a string", col)
		}
		root, err := xmlToMap([]byte(s))
		if err != nil {
			return w.StepResult{}, fmt.Errorf("parse-xml-element: %w", err)
		}
		var element any
		for _, v := range root {
			element = v
		}
		obj, ok := element.(map[string]any)
		if !ok {
			return w.StepResult{}, fmt.Errorf("parse-xml-element: column %q root element has no child elements or attributes", col)
		}
		for _, k := range sortedKeys(obj) {
			row.Add(col+"."+k, jsonToValue(obj[k]))
		}
		if deleteCol {
			row.RemoveAt(row.Find(col))
		}
		return w.Keep(row), nil
	}), nil
}
