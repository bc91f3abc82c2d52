package parsefmt

import (
	"fmt"
	"strconv"
	"strings"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("parse-as-csv", "parse-as-csv <column> <delimiter> <skip-empty-lines>", newParseAsCSV)
}

// splitCSVColumn reads col, splits it on delim, and appends col_1..col_k
// new columns, one per field, optionally skipping empty fields. The
// source column is left in place; callers that want it removed (such as
// "set format csv") chain a drop step afterward.
func splitCSVColumn(row *w.Row, col string, delim rune, skipEmpty bool) error {
	i := row.Find(col)
	if i < 0 {
		return fmt.Errorf("parse-as-csv: column %q not found", col)
	}
	s, ok := row.GetValueAt(i).String()
	if !ok {
		return fmt.Errorf("parse-as-csv: column %q is not a string", col)
	}
	n := 0
	for _, f := range strings.Split(s, string(delim)) {
		if skipEmpty && f == "" {
			continue
		}
		n++
		row.Add(fmt.Sprintf("%s_%d", col, n), w.Str(f))
	}
	return nil
}

func newParseAsCSV(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "parse-as-csv", "column", line)
	if err != nil {
		return nil, err
	}
	delimToken, err := w.RequireToken(tok, w.ModeWhitespace, "parse-as-csv", "delimiter", line)
	if err != nil {
		return nil, err
	}
	delim, err := w.ResolveDelimiter(delimToken)
	if err != nil {
		return nil, w.NewDirectiveError("parse-as-csv", line, "invalid delimiter: %v", err)
	}
	skipOpt, _ := w.OptionalToken(tok, w.ModeToEOL)
	skipEmpty, _ := strconv.ParseBool(strings.TrimSpace(skipOpt))

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		if err := splitCSVColumn(row, col, delim, skipEmpty); err != nil {
			return w.StepResult{}, err
		}
		return w.Keep(row), nil
	}), nil
}
