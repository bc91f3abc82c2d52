package mask_test

import (
	"sort"
	"testing"

	_ "github.com/wdm0006/wrangle/pkg/wrangle/directives/mask"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func mustExec(t *testing.T, text string, row *w.Row) *w.Row {
	t.Helper()
	recipe, err := w.ParseRecipe(text)
	if err != nil {
		t.Fatal(err)
	}
	out, err := w.ExecuteRow(recipe, row, w.NewExecutionContext("run-1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	return out[0]
}

func TestMaskNumberRevealsOnlyHashPositions(t *testing.T) {
	row := w.NewRow()
	row.Add("ssn", w.Str("123-45-6789"))
	out := mustExec(t, "mask-number ssn XXX-XX-####", row)
	got, _ := out.GetValue("ssn").String()
	if got != "XXX-XX-6789" {
		t.Fatalf("got %q", got)
	}
}

func TestMaskShuffleIsDeterministicPerRunID(t *testing.T) {
	ctx1 := w.NewExecutionContext("same-run-id", nil)
	ctx2 := w.NewExecutionContext("same-run-id", nil)
	recipe, err := w.ParseRecipe("mask-shuffle name")
	if err != nil {
		t.Fatal(err)
	}

	row1 := w.NewRow()
	row1.Add("name", w.Str("abcdefgh"))
	out1, err := w.ExecuteRow(recipe, row1, ctx1)
	if err != nil {
		t.Fatal(err)
	}

	row2 := w.NewRow()
	row2.Add("name", w.Str("abcdefgh"))
	out2, err := w.ExecuteRow(recipe, row2, ctx2)
	if err != nil {
		t.Fatal(err)
	}

	got1, _ := out1[0].GetValue("name").String()
	got2, _ := out2[0].GetValue("name").String()
	if got1 != got2 {
		t.Fatalf("expected same-RunID shuffles to match, got %q vs %q", got1, got2)
	}

	chars1 := []byte(got1)
	chars2 := []byte("abcdefgh")
	sort.Slice(chars1, func(i, j int) bool { return chars1[i] < chars1[j] })
	sort.Slice(chars2, func(i, j int) bool { return chars2[i] < chars2[j] })
	if string(chars1) != string(chars2) {
		t.Fatalf("shuffle is not a permutation of the original characters: %q", got1)
	}
}
