// File: value.go
// Title: Literal Value Types
// Description: Container types produced by the parser (Tuple, Dict, Set),
//              key identity for dict keys and set members, and Format which
//              renders a value back into literal source text.
// Version: v0.1.0
// Created: 2026-09-04
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-04 v0.1.0: Initial implementation

package literal

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Tuple is an immutable ordered sequence, written (a, b) or a, b
type Tuple []any

// Set is an unordered collection of distinct keyable values, kept in
// insertion order
type Set []any

// Pair is one entry of a Dict
type Pair struct {
	Key   any
	Value any
}

// Dict is a mapping that keeps its entries in insertion order
type Dict []Pair

// Get returns the value stored under key
func (d Dict) Get(key any) (any, bool) {
	k, ok := hashKey(key)
	if !ok {
		return nil, false
	}
	for _, p := range d {
		if pk, _ := hashKey(p.Key); pk == k {
			return p.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in insertion order
func (d Dict) Keys() []any {
	keys := make([]any, len(d))
	for i, p := range d {
		keys[i] = p.Key
	}
	return keys
}

// Contains reports whether v is a member of the set
func (s Set) Contains(v any) bool {
	k, ok := hashKey(v)
	if !ok {
		return false
	}
	for _, m := range s {
		if mk, _ := hashKey(m); mk == k {
			return true
		}
	}
	return false
}

// hashKey returns the identity of a value used for dict keys and set
// members. Equal numbers share a key regardless of type (1, 1.0, True).
// Lists, dicts and sets have no key.
func hashKey(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "n", true
	case bool:
		if x {
			return "i:1", true
		}
		return "i:0", true
	case int:
		return "i:" + strconv.Itoa(x), true
	case *big.Int:
		return "i:" + x.String(), true
	case float64:
		if !math.IsInf(x, 0) && !math.IsNaN(x) && x == math.Trunc(x) {
			bf := new(big.Float).SetFloat64(x)
			bi, _ := bf.Int(nil)
			return "i:" + bi.String(), true
		}
		return "f:" + strconv.FormatFloat(x, 'g', -1, 64), true
	case string:
		return "s:" + x, true
	case Tuple:
		parts := make([]string, len(x))
		for i, e := range x {
			k, ok := hashKey(e)
			if !ok {
				return "", false
			}
			parts[i] = k
		}
		return "t(" + strings.Join(parts, ",") + ")", true
	default:
		return "", false
	}
}

// Format renders a parsed value as literal source text. Parsing the result
// yields an equal value for every finite value the parser produces.
func Format(v any) string {
	var sb strings.Builder
	format(&sb, v)
	return sb.String()
}

func format(sb *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
		sb.WriteString("None")
	case bool:
		if x {
			sb.WriteString("True")
		} else {
			sb.WriteString("False")
		}
	case int:
		sb.WriteString(strconv.Itoa(x))
	case *big.Int:
		sb.WriteString(x.String())
	case float64:
		sb.WriteString(FormatFloat(x))
	case string:
		sb.WriteString(strconv.Quote(x))
	case []any:
		sb.WriteByte('[')
		formatItems(sb, x)
		sb.WriteByte(']')
	case Tuple:
		sb.WriteByte('(')
		formatItems(sb, x)
		if len(x) == 1 {
			sb.WriteByte(',')
		}
		sb.WriteByte(')')
	case Set:
		if len(x) == 0 {
			sb.WriteString("set()")
			return
		}
		sb.WriteByte('{')
		formatItems(sb, x)
		sb.WriteByte('}')
	case Dict:
		sb.WriteByte('{')
		for i, p := range x {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, p.Key)
			sb.WriteString(": ")
			format(sb, p.Value)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString(strconv.Quote(fmt.Sprint(x)))
	}
}

func formatItems(sb *strings.Builder, items []any) {
	for i, e := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		format(sb, e)
	}
}

// FormatFloat renders a float so that it reads back as a float: integral
// values keep a trailing ".0".
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
