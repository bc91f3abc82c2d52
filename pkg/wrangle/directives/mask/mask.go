// Package mask implements the masking directive family: mask-number
// (pattern-based character masking) and mask-shuffle (deterministic
// per-run character permutation).
package mask

import (
	"fmt"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("mask-number", "mask-number <column> <mask-pattern>", newMaskNumber)
	w.Register("mask-shuffle", "mask-shuffle <column>", newMaskShuffle)
}

// newMaskNumber masks a column's string value against a pattern applied
// position by position: '#' passes the source character at that
// position through unchanged, any other pattern character is emitted
// literally in its place. Output length is the shorter of the pattern
// and the source.
func newMaskNumber(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "mask-number", "column", line)
	if err != nil {
		return nil, err
	}
	pattern, err := w.RequireToken(tok, w.ModeToEOL, "mask-number", "mask-pattern", line)
	if err != nil {
		return nil, err
	}
	patternRunes := []rune(pattern)

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(col)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("mask-number: column %q not found", col)
		}
		s, ok := row.GetValueAt(i).String()
		if !ok {
			return w.StepResult{}, fmt.Errorf("mask-number: column %q is not a string", col)
		}
		src := []rune(s)
		n := len(patternRunes)
		if len(src) < n {
			n = len(src)
		}
		out := make([]rune, n)
		for pos := 0; pos < n; pos++ {
			if patternRunes[pos] == '#' {
				out[pos] = src[pos]
			} else {
				out[pos] = patternRunes[pos]
			}
		}
		row.SetValue(i, w.Str(string(out)))
		return w.Keep(row), nil
	}), nil
}

// newMaskShuffle permutes a column's characters using the run-scoped
// random source, so repeated runs with the same RunID shuffle
// identically while distinct runs diverge.
func newMaskShuffle(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	col, err := w.RequireToken(tok, w.ModeWhitespace, "mask-shuffle", "column", line)
	if err != nil {
		return nil, err
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(col)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("mask-shuffle: column %q not found", col)
		}
		s, ok := row.GetValueAt(i).String()
		if !ok {
			return w.StepResult{}, fmt.Errorf("mask-shuffle: column %q is not a string", col)
		}
		runes := []rune(s)
		ctx.Rand().Shuffle(len(runes), func(a, b int) {
			runes[a], runes[b] = runes[b], runes[a]
		})
		row.SetValue(i, w.Str(string(runes)))
		return w.Keep(row), nil
	}), nil
}
