package wrangle_test

import (
	"testing"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func TestRowFindFirstMatch(t *testing.T) {
	r := w.NewRow()
	r.Add("a", w.Int(1))
	r.Add("a", w.Int(2))
	if i := r.Find("a"); i != 0 {
		t.Fatalf("expected first match at 0, got %d", i)
	}
	if i := r.Find("missing"); i != -1 {
		t.Fatalf("expected -1 for missing column, got %d", i)
	}
}

func TestRowSetValuePreservesShape(t *testing.T) {
	r := w.NewRow()
	r.Add("a", w.Int(1))
	r.Add("b", w.Str("x"))
	r.SetValue(0, w.Int(99))
	if r.Len() != 2 {
		t.Fatalf("SetValue changed column count: %d", r.Len())
	}
	if r.NameAt(0) != "a" {
		t.Fatalf("SetValue changed column order: %s", r.NameAt(0))
	}
	v, _ := r.GetValueAt(0).Int()
	if v != 99 {
		t.Fatalf("SetValue did not replace value, got %d", v)
	}
}

func TestRowSwapSymmetry(t *testing.T) {
	r := w.NewRow()
	r.Add("a", w.Int(1))
	r.Add("b", w.Str("s"))

	if err := r.Swap("a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := r.Swap("a", "b"); err != nil {
		t.Fatal(err)
	}
	va, _ := r.GetValue("a").Int()
	vb, _ := r.GetValue("b").String()
	if va != 1 || vb != "s" {
		t.Fatalf("double swap is not identity: a=%d b=%s", va, vb)
	}
}

func TestRowSwapMissingColumnFails(t *testing.T) {
	r := w.NewRow()
	r.Add("a", w.Int(1))
	r.Add("c", w.Str("s"))
	if err := r.Swap("a", "b"); err == nil {
		t.Fatal("expected error for missing column b")
	}
}

func TestRowRoundTripCopyThenDrop(t *testing.T) {
	r := w.NewRow()
	r.Add("a", w.Int(42))
	before := r.Clone()

	r.Add("c", r.GetValue("a"))
	r.RemoveByName("c")

	if before.Len() != r.Len() {
		t.Fatalf("copy+drop changed row length: %d vs %d", before.Len(), r.Len())
	}
	for i := 0; i < before.Len(); i++ {
		if before.NameAt(i) != r.NameAt(i) {
			t.Fatalf("copy+drop changed column %d name", i)
		}
	}
}
