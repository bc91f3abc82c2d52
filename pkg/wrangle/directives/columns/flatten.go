package columns

import (
	"fmt"
	"strings"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("flatten", "flatten <column>[,<column>,<column>,...]", newFlatten)
}

// newFlatten rejects wildcard ('*') flattening at parse time, matching the
// original directive's behavior (spec.md §4.5, §9).
func newFlatten(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	raw, err := w.RequireToken(tok, w.ModeToEOL, "flatten", "columns", line)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(raw, ",")
	cols := make([]string, len(parts))
	for i, p := range parts {
		c := strings.TrimSpace(p)
		if c == "*" {
			return nil, w.NewDirectiveError("flatten", line,
				"Flatten does not support wildcard ('*') flattening. Please specify column names")
		}
		cols[i] = c
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		for _, col := range cols {
			i := row.Find(col)
			if i < 0 {
				return w.StepResult{}, fmt.Errorf("flatten: column %q not found", col)
			}
			val := row.GetValueAt(i)
			flat, err := flattenValue(val)
			if err != nil {
				return w.StepResult{}, fmt.Errorf("flatten: column %q: %w", col, err)
			}
			row.SetValue(i, flat)
		}
		return w.Keep(row), nil
	}), nil
}

// flattenValue collapses a list/array Value into a single delimited
// string; scalars pass through unchanged.
func flattenValue(v w.Value) (w.Value, error) {
	switch v.Kind() {
	case w.KindList:
		list, _ := v.ListValue()
		parts := make([]string, len(list))
		for i, e := range list {
			parts[i] = e.Stringify()
		}
		return w.Str(strings.Join(parts, ",")), nil
	case w.KindJSONArray:
		data, _ := v.JSON()
		arr, ok := data.([]any)
		if !ok {
			return w.Str(fmt.Sprintf("%v", data)), nil
		}
		parts := make([]string, len(arr))
		for i, e := range arr {
			parts[i] = fmt.Sprintf("%v", e)
		}
		return w.Str(strings.Join(parts, ",")), nil
	default:
		return v, nil
	}
}
