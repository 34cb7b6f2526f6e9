// File: values.go
// Title: Value Helpers
// Description: Identity comparison of components, the textual form of
//              mapping keys and key lookup with dash normalization.
// Version: v0.1.1
// Created: 2026-09-09
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-09 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: FindKey matches keys with dashes against underscores

package component

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strings"

	"github.com/msto63/zunder/foundation/ocl/literal"
)

// Same reports whether a and b are the same component. Reference types
// compare by identity, other values by equality; values that cannot be
// compared are never the same.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}
	if !va.Type().Comparable() {
		return false
	}
	defer func() { _ = recover() }() // interface fields holding uncomparable values
	return a == b
}

// Stringify returns the text a key token is compared against
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil, bool, int, float64, *big.Int, literal.Tuple, []any, literal.Dict, literal.Set:
		return literal.Format(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatNameSet renders names as {'a', 'b'}
func formatNameSet(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}

// FormatNameSet renders sorted names as {'a', 'b'}
func FormatNameSet(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return formatNameSet(sorted)
}

// FindKey returns the index of the string key matching arg, or -1. An exact
// match wins over one found by turning dashes into underscores.
func FindKey(entries []Entry, arg string) int {
	normalized := strings.ReplaceAll(arg, "-", "_")
	matches := []func(k string) bool{
		func(k string) bool { return k == arg },
		func(k string) bool { return k == normalized },
		func(k string) bool { return strings.ReplaceAll(k, "-", "_") == normalized },
	}
	for _, match := range matches {
		for i, e := range entries {
			if k, ok := e.Key.(string); ok && match(k) {
				return i
			}
		}
	}
	return -1
}
