// Package parsefmt implements the parsing/extraction directive family:
// parse-as-csv, parse-as-json, parse-xml-element, parse-as-fixed-length,
// parse-as-xml, json-path, xml-path, and "set format csv" sugar
// (spec.md §4.5, §6).
package parsefmt

import (
	"encoding/json"
	"fmt"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

// jsonToValue converts a decoded encoding/json value (nil, bool, float64,
// string, []any, map[string]any) into the engine's Value, preserving the
// map/array shapes as opaque JSON handles so a later json-path or
// parse-as-json application can walk them without re-decoding.
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

// decodeJSON returns the column value as a decoded JSON tree
// (map[string]any or []any), decoding a string column on demand.
func decodeJSON(v w.Value) (any, error) {
	switch v.Kind() {
	case w.KindJSONObject, w.KindJSONArray:
		data, _ := v.JSON()
		return data, nil
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
