// Package jsonlio reads and writes newline-delimited JSON rows for the
// wrangling engine, adapted from the teacher's typed-Frame JSONL reader
// down to the engine's untyped Row: each decoded JSON object becomes one
// Row, with native int/float/bool/string Values (nested objects and
// arrays kept as JSON handles) instead of the teacher's
// column-kind-directed coercion, since Row has no upfront schema to
// coerce against.
package jsonlio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	iox "github.com/wdm0006/wrangle/pkg/io/ioutils"
	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

type ReaderOptions struct{}

type Reader struct {
	dec *json.Decoder
}

func Open(path string, opt ReaderOptions) (*Reader, io.Closer, error) {
	f, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, nil, err
	}
	return NewReaderFrom(f, opt), f, nil
}

func NewReaderFrom(r io.Reader, opt ReaderOptions) *Reader {
	return &Reader{dec: json.NewDecoder(bufio.NewReader(r))}
}

// Next decodes the next JSON object into a Row, with keys appended in
// sorted order for determinism across runs (JSON object key order is not
// preserved by encoding/json). Returns io.EOF once the stream is exhausted.
func (r *Reader) Next() (*w.Row, error) {
	var m map[string]any
	if err := r.dec.Decode(&m); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	row := w.NewRow()
	for _, k := range keys {
		row.Add(k, jsonToValue(m[k]))
	}
	return row, nil
}

func jsonToValue(v any) w.Value {
	switch t := v.(type) {
	case nil:
		return w.Null()
	case bool:
		return w.Bool(t)
	case float64:
		if t == float64(int64(t)) {
			return w.Int(int64(t))
		}
		return w.Float(t)
	case string:
		return w.Str(t)
	case map[string]any:
		return w.JSONObject(t)
	case []any:
		return w.JSONArray(t)
	default:
		return w.Str(fmt.Sprintf("%v", t))
	}
}
