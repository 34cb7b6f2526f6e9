// File: json.go
// Title: One-Line JSON
// Description: Encodes results as single-line JSON with ", " and ": "
//              separators and without escaping non-ASCII text. Values with
//              no JSON form, such as sets, structs and tuple keys, fail so
//              that callers fall back to text.
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package helptext

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/literal"
)

var errNoJSON = errors.New("value has no JSON form")

func jsonLine(v any) (string, error) {
	var sb strings.Builder
	if err := writeJSON(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeJSON(sb *strings.Builder, v any) error {
	switch x := v.(type) {
	case nil:
		sb.WriteString("null")
		return nil
	case bool:
		sb.WriteString(strconv.FormatBool(x))
		return nil
	case string:
		return writeJSONString(sb, x)
	case int:
		sb.WriteString(strconv.Itoa(x))
		return nil
	case *big.Int:
		sb.WriteString(x.String())
		return nil
	case float64:
		sb.WriteString(jsonFloat(x))
		return nil
	case literal.Set:
		return errNoJSON
	case literal.Tuple:
		return writeJSONArray(sb, x)
	case []any:
		return writeJSONArray(sb, x)
	case literal.Dict:
		entries := make([]component.Entry, len(x))
		for i, p := range x {
			entries[i] = component.Entry{Key: p.Key, Value: p.Value}
		}
		return writeJSONObject(sb, entries)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		sb.WriteString(strconv.FormatBool(rv.Bool()))
	case reflect.String:
		return writeJSONString(sb, rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sb.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		sb.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		sb.WriteString(jsonFloat(rv.Float()))
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return writeJSONArray(sb, items)
	case reflect.Map:
		entries := make([]component.Entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, component.Entry{Key: iter.Key().Interface(), Value: iter.Value().Interface()})
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return component.Stringify(entries[i].Key) < component.Stringify(entries[j].Key)
		})
		return writeJSONObject(sb, entries)
	default:
		return errNoJSON
	}
	return nil
}

func writeJSONArray(sb *strings.Builder, items []any) error {
	sb.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		if err := writeJSON(sb, item); err != nil {
			return err
		}
	}
	sb.WriteByte(']')
	return nil
}

func writeJSONObject(sb *strings.Builder, entries []component.Entry) error {
	sb.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		key, err := jsonKey(e.Key)
		if err != nil {
			return err
		}
		if err := writeJSONString(sb, key); err != nil {
			return err
		}
		sb.WriteString(": ")
		if err := writeJSON(sb, e.Value); err != nil {
			return err
		}
	}
	sb.WriteByte('}')
	return nil
}

// jsonKey converts a mapping key to its JSON object key. Only strings,
// numbers, booleans and nil qualify.
func jsonKey(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case nil, bool, int, float64, *big.Int:
		return jsonLine(x)
	}
	switch reflect.ValueOf(k).Kind() {
	case reflect.String:
		return reflect.ValueOf(k).String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Bool:
		return jsonLine(k)
	}
	return "", errNoJSON
}

func writeJSONString(sb *strings.Builder, s string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	sb.Write(bytes.TrimRight(buf.Bytes(), "\n"))
	return nil
}

func jsonFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return literal.FormatFloat(f)
}
