package wrangle

import (
	"fmt"
	"strconv"
)

// Kind tags the runtime type carried by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBytes
	KindList
	KindMap
	KindJSONArray
	KindJSONObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindJSONArray:
		return "json-array"
	case KindJSONObject:
		return "json-object"
	default:
		return "unknown"
	}
}

// Value is the heterogeneous, explicitly-tagged union carried by a Row
// column. Steps branch on Kind and reject variants they cannot act on.
//
// JSONArray/JSONObject are distinct from List/Map: they are opaque handles
// produced by JSON-aware steps (parse-as-json, parse-as-xml) that preserve
// the original decoded Go value (any of []any / map[string]any / string /
// float64 / bool / nil, per encoding/json's own conventions) so a
// subsequent json-path/parse-as-json application can walk it without a
// second decode.
type Value struct {
	kind Kind

	b    bool
	i    int64
	f    float64
	s    string
	by   []byte
	list []Value
	m    map[string]Value
	json any
}

func Null() Value                    { return Value{kind: KindNull} }
func Bool(v bool) Value               { return Value{kind: KindBool, b: v} }
func Int(v int64) Value               { return Value{kind: KindInt, i: v} }
func Float(v float64) Value           { return Value{kind: KindFloat, f: v} }
func Str(v string) Value              { return Value{kind: KindString, s: v} }
func Bytes(v []byte) Value            { return Value{kind: KindBytes, by: v} }
func List(v []Value) Value            { return Value{kind: KindList, list: v} }
func Map(v map[string]Value) Value    { return Value{kind: KindMap, m: v} }
func JSONArray(v any) Value           { return Value{kind: KindJSONArray, json: v} }
func JSONObject(v any) Value          { return Value{kind: KindJSONObject, json: v} }

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsNull() bool  { return v.kind == KindNull }

func (v Value) Bool() (bool, bool)           { return v.b, v.kind == KindBool }
func (v Value) Int() (int64, bool)           { return v.i, v.kind == KindInt }
func (v Value) Float() (float64, bool)       { return v.f, v.kind == KindFloat }
func (v Value) String() (string, bool)       { return v.s, v.kind == KindString }
func (v Value) ByteSlice() ([]byte, bool)    { return v.by, v.kind == KindBytes }
func (v Value) ListValue() ([]Value, bool)   { return v.list, v.kind == KindList }
func (v Value) MapValue() (map[string]Value, bool) { return v.m, v.kind == KindMap }
func (v Value) JSON() (any, bool) {
	if v.kind == KindJSONArray || v.kind == KindJSONObject {
		return v.json, true
	}
	return nil, false
}

// Stringify renders any Value as a string, the representation used by
// string-concatenating directives such as merge and by string-oriented
// directives fed a non-string column.
func (v Value) Stringify() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindBytes:
		return string(v.by)
	case KindList:
		return fmt.Sprintf("%v", v.list)
	case KindMap:
		return fmt.Sprintf("%v", v.m)
	case KindJSONArray, KindJSONObject:
		return fmt.Sprintf("%v", v.json)
	default:
		return ""
	}
}

// IsEmpty reports null or the zero-length string, matching the
// fill-null-or-empty directive's "empty" predicate.
func (v Value) IsEmpty() bool {
	if v.IsNull() {
		return true
	}
	if v.kind == KindString {
		return v.s == ""
	}
	return false
}

// Numeric coerces ints and floats to a float64 for arithmetic; strings are
// not implicitly coerced per spec.md §6 ("no implicit numeric coercion").
func (v Value) Numeric() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}
