package parsefmt

import (
	"fmt"
	"strconv"
	"strings"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

const startingColumn = "body"

func init() {
	w.Register("set format", "set format csv <delimiter> <skip-empty-lines>", newSetFormat)
}

// newSetFormat implements the "set format csv" sugar as a single step
// that runs the same CSV split helper as parse-as-csv on the fixed "body"
// column and then removes that column.
func newSetFormat(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	// "set" and "format" have already been consumed by the parser before
	// dispatching to this constructor (spec.md §4.4 "set" sub-kind routing).
	kind, err := w.RequireToken(tok, w.ModeWhitespace, "set format", "kind", line)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(kind, "csv") {
		return nil, w.NewDirectiveError("set format", line, "only 'csv' format is supported, got %q", kind)
	}
	delimToken, err := w.RequireToken(tok, w.ModeWhitespace, "set format", "delimiter", line)
	if err != nil {
		return nil, err
	}
	delim, err := w.ResolveDelimiter(delimToken)
	if err != nil {
		return nil, w.NewDirectiveError("set format", line, "invalid delimiter: %v", err)
	}
	skipOpt, _ := w.OptionalToken(tok, w.ModeToEOL)
	skipEmpty, _ := strconv.ParseBool(strings.TrimSpace(skipOpt))

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		if err := splitCSVColumn(row, startingColumn, delim, skipEmpty); err != nil {
			return w.StepResult{}, fmt.Errorf("set format csv: %w", err)
		}
		row.RemoveAt(row.Find(startingColumn))
		return w.Keep(row), nil
	}), nil
}
