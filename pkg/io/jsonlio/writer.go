package jsonlio

import (
	"bufio"
	"encoding/json"

	iox "github.com/wdm0006/wrangle/pkg/io/ioutils"
	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

// WriteAll writes rows as newline-delimited JSON objects, one per line,
// with each Value rendered back to its native JSON shape.
func WriteAll(path string, rows []*w.Row) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	bw := bufio.NewWriter(out)
	enc := json.NewEncoder(bw)
	for _, row := range rows {
		if err := enc.Encode(rowToMap(row)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func rowToMap(row *w.Row) map[string]any {
	m := make(map[string]any, row.Len())
	for i := 0; i < row.Len(); i++ {
		m[row.NameAt(i)] = valueToAny(row.GetValueAt(i))
	}
	return m
}

func valueToAny(v w.Value) any {
	switch v.Kind() {
	case w.KindNull:
		return nil
	case w.KindBool:
		b, _ := v.Bool()
		return b
	case w.KindInt:
		n, _ := v.Int()
		return n
	case w.KindFloat:
		f, _ := v.Float()
		return f
	case w.KindString:
		s, _ := v.String()
		return s
	case w.KindBytes:
		b, _ := v.ByteSlice()
		return string(b)
	case w.KindList:
		l, _ := v.ListValue()
		out := make([]any, len(l))
		for i, e := range l {
			out[i] = valueToAny(e)
		}
		return out
	case w.KindMap:
		m, _ := v.MapValue()
		out := make(map[string]any, len(m))
		for k, e := range m {
			out[k] = valueToAny(e)
		}
		return out
	case w.KindJSONObject, w.KindJSONArray:
		data, _ := v.JSON()
		return data
	default:
		return v.Stringify()
	}
}
