package dates

import (
	"fmt"
	"strconv"
	"time"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("format-date", "format-date <column> <source-format> <destination-format>", newFormatDate)
	w.Register("format-unix-timestamp", "format-unix-timestamp <column> <destination-format>", newFormatUnixTimestamp)
}

// newFormatDate rewrites a column in place from one date pattern to
// another, both given as SimpleDateFormat-style tokens.
func newFormatDate(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "format-date", "column", line)
	if err != nil {
		return nil, err
	}
	srcPattern, err := w.RequireToken(tok, w.ModeWhitespace, "format-date", "source-format", line)
	if err != nil {
		return nil, err
	}
	dstPattern, err := w.RequireToken(tok, w.ModeToEOL, "format-date", "destination-format", line)
	if err != nil {
		return nil, err
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(col)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("format-date: column %q not found", col)
		}
		s, ok := row.GetValueAt(i).String()
		if !ok {
			return w.StepResult{}, fmt.Errorf("format-date: column %q is not a string", col)
		}
		srcLayout := ctx.CacheLayout(srcPattern, translateLayout)
		dstLayout := ctx.CacheLayout(dstPattern, translateLayout)
		t, err := time.Parse(srcLayout, s)
		if err != nil {
			return w.StepResult{}, fmt.Errorf("format-date: %w", err)
		}
		row.SetValue(i, w.Str(t.Format(dstLayout)))
		return w.Keep(row), nil
	}), nil
}

// newFormatUnixTimestamp rewrites a column in place from a Unix epoch
// (seconds, as an int or numeric string) to a formatted date string.
func newFormatUnixTimestamp(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "format-unix-timestamp", "column", line)
	if err != nil {
		return nil, err
	}
	dstPattern, err := w.RequireToken(tok, w.ModeToEOL, "format-unix-timestamp", "destination-format", line)
	if err != nil {
		return nil, err
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(col)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("format-unix-timestamp: column %q not found", col)
		}
		val := row.GetValueAt(i)
		var epoch int64
		if n, ok := val.Int(); ok {
			epoch = n
		} else if s, ok := val.String(); ok {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return w.StepResult{}, fmt.Errorf("format-unix-timestamp: column %q is not a valid Unix timestamp: %w", col, err)
			}
			epoch = n
		} else {
			return w.StepResult{}, fmt.Errorf("format-unix-timestamp: column %q is not an int or string", col)
		}
		dstLayout := ctx.CacheLayout(dstPattern, translateLayout)
		row.SetValue(i, w.Str(time.Unix(epoch, 0).UTC().Format(dstLayout)))
		return w.Keep(row), nil
	}), nil
}
