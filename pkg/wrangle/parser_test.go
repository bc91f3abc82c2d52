package wrangle_test

import (
	"errors"
	"testing"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("test-upper", "test-upper <column>", func(tok *w.Tokenizer, line int, text string) (w.Step, error) {
		col, err := w.RequireToken(tok, w.ModeWhitespace, "test-upper", "column", line)
		if err != nil {
			return nil, err
		}
		return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
			i := row.Find(col)
			if i < 0 {
				return w.StepResult{}, errors.New("column not found: " + col)
			}
			s, _ := row.GetValueAt(i).String()
			row.SetValue(i, w.Str(stringsToUpper(s)))
			return w.Keep(row), nil
		}), nil
	})

	w.Register("test-skip-if-empty", "test-skip-if-empty <column>", func(tok *w.Tokenizer, line int, text string) (w.Step, error) {
		col, err := w.RequireToken(tok, w.ModeWhitespace, "test-skip-if-empty", "column", line)
		if err != nil {
			return nil, err
		}
		return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
			if row.GetValue(col).IsEmpty() {
				return w.Skip(), nil
			}
			return w.Keep(row), nil
		}), nil
	})
}

func stringsToUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func TestParseUnknownDirective(t *testing.T) {
	_, err := w.ParseRecipe("bogus a b")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var pe *w.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Line != 1 {
		t.Fatalf("expected line 1, got %d", pe.Line)
	}
}

func TestParseMissingFieldLocalizesLine(t *testing.T) {
	_, err := w.ParseRecipe("test-upper col\ntest-upper\n")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var pe *w.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Line != 2 {
		t.Fatalf("expected line 2, got %d", pe.Line)
	}
}

func TestParseBlankLinesAdvanceCounter(t *testing.T) {
	recipe, err := w.ParseRecipe("test-upper a\n\ntest-upper b\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(recipe.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(recipe.Steps))
	}
	if recipe.Steps[1].Line != 3 {
		t.Fatalf("expected second step on line 3, got %d", recipe.Steps[1].Line)
	}
}

func TestParseDeterministic(t *testing.T) {
	text := "test-upper a\ntest-upper b\n"
	r1, err1 := w.ParseRecipe(text)
	r2, err2 := w.ParseRecipe(text)
	if err1 != nil || err2 != nil {
		t.Fatal(err1, err2)
	}
	if len(r1.Steps) != len(r2.Steps) {
		t.Fatal("parse is not deterministic in step count")
	}
	for i := range r1.Steps {
		if r1.Steps[i].Line != r2.Steps[i].Line || r1.Steps[i].Text != r2.Steps[i].Text {
			t.Fatal("parse is not deterministic in step content")
		}
	}
}
