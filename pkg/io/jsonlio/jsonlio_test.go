package jsonlio_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/wdm0006/wrangle/pkg/io/jsonlio"
	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func TestReaderDecodesNativeTypes(t *testing.T) {
	r := jsonlio.NewReaderFrom(strings.NewReader(`{"name":"Ada","age":30,"active":true}`+"\n"), jsonlio.ReaderOptions{})
	row, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	name, _ := row.GetValue("name").String()
	age, _ := row.GetValue("age").Int()
	active, _ := row.GetValue("active").Bool()
	if name != "Ada" || age != 30 || !active {
		t.Fatalf("got name=%q age=%v active=%v", name, age, active)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderOrdersKeysDeterministically(t *testing.T) {
	r := jsonlio.NewReaderFrom(strings.NewReader(`{"zebra":1,"apple":2,"mango":3}`+"\n"), jsonlio.ReaderOptions{})
	row, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	names := row.Names()
	want := []string{"apple", "mango", "zebra"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("got names %v, want %v", names, want)
		}
	}
}

func TestStreamReaderChunksJSONL(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/rows.jsonl"
	data := `{"n":1}` + "\n" + `{"n":2}` + "\n" + `{"n":3}` + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	sr, closer, err := jsonlio.NewStreamReader(path, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	total := 0
	for {
		chunk, err := sr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		total += len(chunk)
	}
	if total != 3 {
		t.Fatalf("expected 3 rows, got %d", total)
	}
}

func TestWriteAllThenReadBack(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/out.jsonl"

	r := jsonlio.NewReaderFrom(strings.NewReader(`{"name":"Ada","age":30}`+"\n"), jsonlio.ReaderOptions{})
	row, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}

	if err := jsonlio.WriteAll(path, []*w.Row{row}); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	back := jsonlio.NewReaderFrom(f, jsonlio.ReaderOptions{})
	got, err := back.Next()
	if err != nil {
		t.Fatal(err)
	}
	name, _ := got.GetValue("name").String()
	age, _ := got.GetValue("age").Int()
	if name != "Ada" || age != 30 {
		t.Fatalf("got name=%q age=%v", name, age)
	}
}

func TestStreamWriterThenReadBack(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/stream_out.jsonl"

	sw, err := jsonlio.NewStreamWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	row := w.NewRow()
	row.Add("n", w.Int(1))
	if err := sw.Write([]*w.Row{row}); err != nil {
		t.Fatal(err)
	}
	if err := sw.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	back := jsonlio.NewReaderFrom(f, jsonlio.ReaderOptions{})
	got, err := back.Next()
	if err != nil {
		t.Fatal(err)
	}
	n, _ := got.GetValue("n").Int()
	if n != 1 {
		t.Fatalf("got %v", n)
	}
}
