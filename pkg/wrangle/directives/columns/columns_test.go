package columns_test

import (
	"testing"

	_ "github.com/wdm0006/wrangle/pkg/wrangle/directives/columns"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func mustParse(t *testing.T, text string) *w.Recipe {
	t.Helper()
	r, err := w.ParseRecipe(text)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestSwap(t *testing.T) {
	recipe := mustParse(t, "swap a b")
	row := w.NewRow()
	row.Add("a", w.Int(1))
	row.Add("b", w.Str("s"))
	ctx := w.NewExecutionContext("run", nil)

	out, err := w.ExecuteRow(recipe, row, ctx)
	if err != nil {
		t.Fatal(err)
	}
	va, _ := out[0].GetValue("a").String()
	vb, _ := out[0].GetValue("b").Int()
	if va != "s" || vb != 1 {
		t.Fatalf("swap failed: a=%v b=%v", va, vb)
	}
}

func TestSwapMissingColumnIsStepFailure(t *testing.T) {
	recipe := mustParse(t, "swap a b")
	row := w.NewRow()
	row.Add("a", w.Int(1))
	row.Add("c", w.Str("s"))
	ctx := w.NewExecutionContext("run", nil)

	if _, err := w.ExecuteRow(recipe, row, ctx); err == nil {
		t.Fatal("expected step failure for missing column b")
	}
}

func TestRenamePreservesPositionAndLength(t *testing.T) {
	recipe := mustParse(t, "rename a b")
	row := w.NewRow()
	row.Add("x", w.Int(0))
	row.Add("a", w.Int(1))
	ctx := w.NewExecutionContext("run", nil)

	out, err := w.ExecuteRow(recipe, row, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Len() != 2 || out[0].NameAt(1) != "b" {
		t.Fatalf("rename broke shape: len=%d name=%s", out[0].Len(), out[0].NameAt(1))
	}
}

func TestCopyForceFalseOnExistingDestFails(t *testing.T) {
	recipe := mustParse(t, "copy a b")
	row := w.NewRow()
	row.Add("a", w.Int(1))
	row.Add("b", w.Int(2))
	ctx := w.NewExecutionContext("run", nil)

	if _, err := w.ExecuteRow(recipe, row, ctx); err == nil {
		t.Fatal("expected error: dest already exists")
	}
}

func TestMergeConcatenatesStringified(t *testing.T) {
	recipe := mustParse(t, "merge a b c |")
	row := w.NewRow()
	row.Add("a", w.Int(1))
	row.Add("b", w.Str("x"))
	ctx := w.NewExecutionContext("run", nil)

	out, err := w.ExecuteRow(recipe, row, ctx)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := out[0].GetValue("c").String()
	if got != "1|x" {
		t.Fatalf("expected 1|x, got %s", got)
	}
}

func TestFlattenRejectsWildcard(t *testing.T) {
	_, err := w.ParseRecipe("flatten *")
	if err == nil {
		t.Fatal("expected parse error for wildcard flatten")
	}
}

func TestSetColumnsReplacesNames(t *testing.T) {
	recipe := mustParse(t, "set columns x,y")
	row := w.NewRow()
	row.Add("a", w.Int(1))
	row.Add("b", w.Int(2))
	ctx := w.NewExecutionContext("run", nil)

	out, err := w.ExecuteRow(recipe, row, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if out[0].NameAt(0) != "x" || out[0].NameAt(1) != "y" {
		t.Fatalf("set columns failed: %s %s", out[0].NameAt(0), out[0].NameAt(1))
	}
}
