package slice_test

import (
	"testing"

	_ "github.com/wdm0006/wrangle/pkg/wrangle/directives/slice"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func mustExec(t *testing.T, text string, row *w.Row) *w.Row {
	t.Helper()
	recipe, err := w.ParseRecipe(text)
	if err != nil {
		t.Fatal(err)
	}
	out, err := w.ExecuteRow(recipe, row, w.NewExecutionContext("run", nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	return out[0]
}

func TestIndexSplit(t *testing.T) {
	row := w.NewRow()
	row.Add("s", w.Str("abcdef"))
	out := mustExec(t, "indexsplit s 1 4 d", row)
	d, _ := out.GetValue("d").String()
	if d != "bcd" {
		t.Fatalf("expected bcd, got %q", d)
	}
}

func TestIndexSplitClampsBounds(t *testing.T) {
	row := w.NewRow()
	row.Add("s", w.Str("ab"))
	out := mustExec(t, "indexsplit s 0 99 d", row)
	d, _ := out.GetValue("d").String()
	if d != "ab" {
		t.Fatalf("expected ab, got %q", d)
	}
}

func TestSplitFirstOccurrence(t *testing.T) {
	row := w.NewRow()
	row.Add("s", w.Str("a:b:c"))
	out := mustExec(t, "split s : c1 c2", row)
	c1, _ := out.GetValue("c1").String()
	c2, _ := out.GetValue("c2").String()
	if c1 != "a" || c2 != "b:c" {
		t.Fatalf("got c1=%q c2=%q", c1, c2)
	}
}

func TestSplitToRowsFanOut(t *testing.T) {
	recipe, err := w.ParseRecipe("split-to-rows c ,")
	if err != nil {
		t.Fatal(err)
	}
	row := w.NewRow()
	row.Add("c", w.Str("a,b,c"))
	out, err := w.ExecuteRow(recipe, row, w.NewExecutionContext("run", nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(out))
	}
	want := []string{"a", "b", "c"}
	for i, r := range out {
		got, _ := r.GetValue("c").String()
		if got != want[i] {
			t.Fatalf("piece order mismatch at %d: %q", i, got)
		}
	}
}

func TestSplitToColumnsAppends(t *testing.T) {
	row := w.NewRow()
	row.Add("c", w.Str("a,b,c"))
	out := mustExec(t, "split-to-columns c ,", row)
	c1, _ := out.GetValue("c_1").String()
	c2, _ := out.GetValue("c_2").String()
	c3, _ := out.GetValue("c_3").String()
	if c1 != "a" || c2 != "b" || c3 != "c" {
		t.Fatalf("got %q %q %q", c1, c2, c3)
	}
}

func TestCharacterCutRange(t *testing.T) {
	row := w.NewRow()
	row.Add("s", w.Str("abcdef"))
	out := mustExec(t, "character-cut s d -c 2-4", row)
	d, _ := out.GetValue("d").String()
	if d != "bcd" {
		t.Fatalf("expected bcd, got %q", d)
	}
}

func TestCutRejectsDelimitedOption(t *testing.T) {
	_, err := w.ParseRecipe("cut s d -d , -f 1")
	if err == nil {
		t.Fatal("expected parse error for cut -d")
	}
}
