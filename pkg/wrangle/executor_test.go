package wrangle_test

import (
	"testing"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("test-fanout", "test-fanout <column>", func(tok *w.Tokenizer, line int, text string) (w.Step, error) {
		col, err := w.RequireToken(tok, w.ModeWhitespace, "test-fanout", "column", line)
		if err != nil {
			return nil, err
		}
		return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
			s, _ := row.GetValue(col).String()
			var out []*w.Row
			for i := 0; i < len(s); i++ {
				clone := row.Clone()
				clone.SetValueByName(col, w.Str(string(s[i])))
				out = append(out, clone)
			}
			return w.Many(out...), nil
		}), nil
	})
}

func TestExecuteRowKeep(t *testing.T) {
	recipe, err := w.ParseRecipe("test-upper s\n")
	if err != nil {
		t.Fatal(err)
	}
	row := w.NewRow()
	row.Add("s", w.Str("abc"))
	ctx := w.NewExecutionContext("run-1", nil)
	out, err := w.ExecuteRow(recipe, row, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	got, _ := out[0].GetValue("s").String()
	if got != "ABC" {
		t.Fatalf("expected ABC, got %s", got)
	}
}

func TestExecuteRowSkip(t *testing.T) {
	recipe, err := w.ParseRecipe("test-skip-if-empty s\n")
	if err != nil {
		t.Fatal(err)
	}
	row := w.NewRow()
	row.Add("s", w.Str(""))
	ctx := w.NewExecutionContext("run-1", nil)
	out, err := w.ExecuteRow(recipe, row, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("expected row dropped, got %d", len(out))
	}
}

func TestExecuteRowFanOutOrder(t *testing.T) {
	recipe, err := w.ParseRecipe("test-fanout s\n")
	if err != nil {
		t.Fatal(err)
	}
	row := w.NewRow()
	row.Add("s", w.Str("xyz"))
	ctx := w.NewExecutionContext("run-1", nil)
	out, err := w.ExecuteRow(recipe, row, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(out))
	}
	want := []string{"x", "y", "z"}
	for i, r := range out {
		got, _ := r.GetValue("s").String()
		if got != want[i] {
			t.Fatalf("fan-out order mismatch at %d: got %s want %s", i, got, want[i])
		}
	}
}

func TestRunOrderPreservationAndStepFailureIsolation(t *testing.T) {
	recipe, err := w.ParseRecipe("test-upper s\n")
	if err != nil {
		t.Fatal(err)
	}
	ok1 := w.NewRow()
	ok1.Add("s", w.Str("a"))
	bad := w.NewRow()
	bad.Add("other", w.Str("b"))
	ok2 := w.NewRow()
	ok2.Add("s", w.Str("c"))

	ctx := w.NewExecutionContext("run-1", nil)
	out, failures := w.Run(recipe, []*w.Row{ok1, bad, ok2}, ctx)

	if len(out) != 2 {
		t.Fatalf("expected 2 surviving rows, got %d", len(out))
	}
	if len(failures) != 1 || failures[0].InputIndex != 1 {
		t.Fatalf("expected one failure at index 1, got %+v", failures)
	}
	v0, _ := out[0].GetValue("s").String()
	v1, _ := out[1].GetValue("s").String()
	if v0 != "A" || v1 != "C" {
		t.Fatalf("order not preserved: got %s, %s", v0, v1)
	}
}
