package expr_test

import (
	"testing"

	_ "github.com/wdm0006/wrangle/pkg/wrangle/directives/expr"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func mustExec(t *testing.T, text string, row *w.Row) []*w.Row {
	t.Helper()
	recipe, err := w.ParseRecipe(text)
	if err != nil {
		t.Fatal(err)
	}
	out, err := w.ExecuteRow(recipe, row, w.NewExecutionContext("run", nil))
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestSetColumnEvaluatesArithmetic(t *testing.T) {
	row := w.NewRow()
	row.Add("a", w.Int(2))
	row.Add("b", w.Int(3))
	out := mustExec(t, "set column c a + b * 2", row)
	v, _ := out[0].GetValue("c").Float()
	if v != 8 {
		t.Fatalf("expected 8, got %v", v)
	}
}

func TestFilterRowIfMatchedSkipsOnMatch(t *testing.T) {
	row := w.NewRow()
	row.Add("c", w.Str("xa"))
	out := mustExec(t, "filter-row-if-matched c ^x", row)
	if len(out) != 0 {
		t.Fatalf("expected row to be skipped, got %d rows", len(out))
	}
}

func TestGrepKeepsOnlyMatches(t *testing.T) {
	row := w.NewRow()
	row.Add("c", w.Str("yb"))
	out := mustExec(t, "grep c ^x", row)
	if len(out) != 0 {
		t.Fatalf("expected non-matching row dropped by grep, got %d rows", len(out))
	}

	row2 := w.NewRow()
	row2.Add("c", w.Str("xa"))
	out2 := mustExec(t, "grep c ^x", row2)
	if len(out2) != 1 {
		t.Fatalf("expected matching row kept by grep, got %d rows", len(out2))
	}
}

func TestFilterRowIfTrueSkipsTruthy(t *testing.T) {
	row := w.NewRow()
	row.Add("n", w.Int(5))
	out := mustExec(t, "filter-row-if-true n > 3", row)
	if len(out) != 0 {
		t.Fatalf("expected row skipped, got %d rows", len(out))
	}
}

func TestSedReplacesFirstOccurrence(t *testing.T) {
	row := w.NewRow()
	row.Add("s", w.Str("foo bar foo"))
	out := mustExec(t, "sed s s/foo/baz/", row)
	got, _ := out[0].GetValue("s").String()
	if got != "baz bar foo" {
		t.Fatalf("got %q", got)
	}
}

func TestSedGlobalFlagReplacesAll(t *testing.T) {
	row := w.NewRow()
	row.Add("s", w.Str("foo bar foo"))
	out := mustExec(t, "sed s s/foo/baz/g", row)
	got, _ := out[0].GetValue("s").String()
	if got != "baz bar baz" {
		t.Fatalf("got %q", got)
	}
}

func TestQuantizeAssignsLabel(t *testing.T) {
	row := w.NewRow()
	row.Add("age", w.Int(25))
	out := mustExec(t, "quantize age bucket [0:18)=minor,[18:65)=adult,[65:150]=senior", row)
	got, _ := out[0].GetValue("bucket").String()
	if got != "adult" {
		t.Fatalf("got %q", got)
	}
}

func TestFillNullOrEmptyFillsEmptyString(t *testing.T) {
	row := w.NewRow()
	row.Add("x", w.Str(""))
	out := mustExec(t, "fill-null-or-empty x none", row)
	got, _ := out[0].GetValue("x").String()
	if got != "none" {
		t.Fatalf("got %q", got)
	}
}

func TestFillNullOrEmptyRejectsEmptyLiteral(t *testing.T) {
	_, err := w.ParseRecipe("fill-null-or-empty x ")
	if err == nil {
		t.Fatal("expected parse error for empty fixed literal")
	}
}
