package parsefmt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("json-path", "json-path <source> <destination> <path>", newPathStep("json-path", decodeForJSONPath))
	w.Register("xml-path", "xml-path <source> <destination> <path>", newPathStep("xml-path", decodeForXMLPath))
}

// newPathStep builds json-path/xml-path, which differ only in how a raw
// string-kind source column is decoded before the path is walked; once
// decoded, both navigate the same generic map[string]any/[]any/scalar
// tree. destination is created if absent and overwritten if present.
func newPathStep(directive string, decode func(w.Value) (any, error)) w.Constructor {
	return func(tok *w.Tokenizer, line int, text string) (w.Step, error) {
		src, err := w.RequireToken(tok, w.ModeWhitespace, directive, "source", line)
		if err != nil {
			return nil, err
		}
		dest, err := w.RequireToken(tok, w.ModeWhitespace, directive, "destination", line)
		if err != nil {
			return nil, err
		}
		pathExpr, err := w.RequireToken(tok, w.ModeToEOL, directive, "path", line)
		if err != nil {
			return nil, err
		}
		segments, err := parsePath(pathExpr)
		if err != nil {
			return nil, w.NewDirectiveError(directive, line, "%v", err)
		}

		return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
			i := row.Find(src)
			if i < 0 {
				return w.StepResult{}, fmt.Errorf("%s: column %q not found", directive, src)
			}
			tree, err := decode(row.GetValueAt(i))
			if err != nil {
				return w.StepResult{}, fmt.Errorf("%s: %w", directive, err)
			}
			result, err := navigate(tree, segments)
			if err != nil {
				return w.StepResult{}, fmt.Errorf("%s: %w", directive, err)
			}
			row.SetValueByName(dest, jsonToValue(result))
			return w.Keep(row), nil
		}), nil
	}
}

// decodeForJSONPath type-switches the source value the way JsPath.java's
// path evaluator does: JSON handles and native map/list values navigate
// directly, and a string column is parsed as JSON text on demand.
func decodeForJSONPath(v w.Value) (any, error) {
	switch v.Kind() {
	case w.KindJSONObject, w.KindJSONArray:
		data, _ := v.JSON()
		return data, nil
	case w.KindMap:
		m, _ := v.MapValue()
		return mapValueToAny(m), nil
	case w.KindList:
		l, _ := v.ListValue()
		return listValueToAny(l), nil
	case w.KindString:
		s, _ := v.String()
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("value is not JSON-shaped (kind=%s)", v.Kind())
	}
}

func decodeForXMLPath(v w.Value) (any, error) {
	switch v.Kind() {
	case w.KindJSONObject:
		data, _ := v.JSON()
		return data, nil
	case w.KindString:
		s, _ := v.String()
		tree, err := xmlToMap([]byte(s))
		if err != nil {
			return nil, err
		}
		return tree, nil
	default:
		return nil, fmt.Errorf("value is not XML-shaped (kind=%s)", v.Kind())
	}
}

func mapValueToAny(m map[string]w.Value) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = valueToAny(v)
	}
	return out
}

func listValueToAny(l []w.Value) []any {
	out := make([]any, len(l))
	for i, v := range l {
		out[i] = valueToAny(v)
	}
	return out
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
		return listValueToAny(l)
	case w.KindMap:
		m, _ := v.MapValue()
		return mapValueToAny(m)
	case w.KindJSONObject, w.KindJSONArray:
		data, _ := v.JSON()
		return data
	default:
		return v.Stringify()
	}
}

type pathSegment struct {
	key     string // "" when this segment is a bare index
	indices []int
}

// parsePath parses dotted field access with trailing bracket indices,
// e.g. "items[0].name" or "[2].value".
func parsePath(expr string) ([]pathSegment, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty path expression")
	}
	raw := strings.Split(expr, ".")
	segments := make([]pathSegment, 0, len(raw))
	for _, part := range raw {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty path segment in %q", expr)
		}
		key := part
		var indices []int
		for {
			open := strings.IndexByte(key, '[')
			if open < 0 {
				break
			}
			close := strings.IndexByte(key[open:], ']')
			if close < 0 {
				return nil, fmt.Errorf("unterminated '[' in path segment %q", part)
			}
			close += open
			idxStr := key[open+1 : close]
			idx, err := strconv.Atoi(idxStr)
			if err != nil {
				return nil, fmt.Errorf("invalid index %q in path segment %q", idxStr, part)
			}
			indices = append(indices, idx)
			key = key[:open] + key[close+1:]
		}
		segments = append(segments, pathSegment{key: key, indices: indices})
	}
	return segments, nil
}

func navigate(data any, segments []pathSegment) (any, error) {
	cur := data
	for _, seg := range segments {
		if seg.key != "" {
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("cannot index field %q into non-object value", seg.key)
			}
			v, ok := m[seg.key]
			if !ok {
				return nil, fmt.Errorf("field %q not found", seg.key)
			}
			cur = v
		}
		for _, idx := range seg.indices {
			list, ok := cur.([]any)
			if !ok {
				return nil, fmt.Errorf("cannot index [%d] into non-array value", idx)
			}
			if idx < 0 || idx >= len(list) {
				return nil, fmt.Errorf("index [%d] out of range (len=%d)", idx, len(list))
			}
			cur = list[idx]
		}
	}
	return cur, nil
}
