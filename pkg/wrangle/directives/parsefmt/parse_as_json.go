package parsefmt

import (
	"fmt"
	"strings"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("parse-as-json", "parse-as-json <column> <delete-column>", newParseAsJSON)
}

func newParseAsJSON(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "parse-as-json", "column", line)
	if err != nil {
		return nil, err
	}
	deleteOpt, _ := w.OptionalToken(tok, w.ModeToEOL)
	deleteCol := strings.EqualFold(strings.TrimSpace(deleteOpt), "true")

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(col)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("parse-as-json: column %q not found", col)
		}
		decoded, err := decodeJSON(row.GetValueAt(i))
		if err != nil {
			return w.StepResult{}, fmt.Errorf("parse-as-json: %w", err)
		}
		obj, ok := decoded.(map[string]any)
		if !ok {
			return w.StepResult{}, fmt.Errorf("parse-as-json: column %q is not a JSON object", col)
		}
		// Stable, deterministic key order (spec.md §8 "Parse determinism"
		// binds the parser, but a deterministic run still benefits the
		// caller here, so keys are appended in a fixed iteration order).
		for _, k := range sortedKeys(obj) {
			row.Add(col+"."+k, jsonToValue(obj[k]))
		}
		if deleteCol {
			row.RemoveAt(row.Find(col))
		}
		return w.Keep(row), nil
	}), nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
