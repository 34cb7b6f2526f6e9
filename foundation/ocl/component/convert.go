// File: convert.go
// Title: Argument Conversion
// Description: Converts parsed literal values to the parameter types of
//              Go functions. Failures are reported as ArgumentError so the
//              engine can tell them apart from errors raised by targets.
// Version: v0.1.0
// Created: 2026-09-09
// Modified: 2026-10-13
//
// Change History:
// - 2026-09-09 v0.1.0: Initial implementation

package component

import (
	"encoding"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"time"

	zderror "github.com/msto63/zunder/foundation/core/error"
	"github.com/msto63/zunder/foundation/ocl/literal"
)

// ArgumentError reports bound values that do not fit a callable.
// It is a binding failure, not an error of the target.
type ArgumentError struct {
	Err *zderror.Error
}

func (e *ArgumentError) Error() string {
	return e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func argumentError(code zderror.Code, format string, args ...any) *ArgumentError {
	return &ArgumentError{Err: zderror.Newf(format, args...).
		WithCode(code).
		WithOperation("component.Invoke")}
}

var (
	bigIntType        = reflect.TypeOf((*big.Int)(nil))
	durationType      = reflect.TypeOf(time.Duration(0))
	textUnmarshalType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Convert converts v to type t
func Convert(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("None is not a valid %s", t)
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		out := reflect.New(t).Elem()
		out.Set(rv)
		return out, nil
	}

	if s, ok := v.(string); ok {
		if out, ok, err := fromString(s, t); ok {
			return out, err
		}
	}

	switch {
	case t == bigIntType:
		if b, ok := toBigInt(v); ok {
			return reflect.ValueOf(b), nil
		}
	case t == durationType:
		if n, ok := v.(int); ok {
			return reflect.ValueOf(time.Duration(n)), nil
		}
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if b, ok := toBigInt(v); ok && b.IsInt64() {
			out := reflect.New(t).Elem()
			if !out.OverflowInt(b.Int64()) {
				out.SetInt(b.Int64())
				return out, nil
			}
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if b, ok := toBigInt(v); ok && b.IsUint64() {
			out := reflect.New(t).Elem()
			if !out.OverflowUint(b.Uint64()) {
				out.SetUint(b.Uint64())
				return out, nil
			}
		}
	case reflect.Float32, reflect.Float64:
		if f, ok := toFloat(v); ok {
			out := reflect.New(t).Elem()
			out.SetFloat(f)
			return out, nil
		}
	case reflect.String:
		switch v.(type) {
		case int, float64, *big.Int, bool:
			out := reflect.New(t).Elem()
			out.SetString(literal.Format(v))
			return out, nil
		}
	case reflect.Slice:
		if items, ok := sequenceOf(v); ok {
			out := reflect.MakeSlice(t, len(items), len(items))
			for i, item := range items {
				ev, err := Convert(item, t.Elem())
				if err != nil {
					return reflect.Value{}, fmt.Errorf("item %d: %w", i, err)
				}
				out.Index(i).Set(ev)
			}
			return out, nil
		}
	case reflect.Map:
		if d, ok := v.(literal.Dict); ok {
			out := reflect.MakeMapWithSize(t, len(d))
			for _, p := range d {
				kv, err := Convert(p.Key, t.Key())
				if err != nil {
					return reflect.Value{}, fmt.Errorf("key %s: %w", literal.Format(p.Key), err)
				}
				ev, err := Convert(p.Value, t.Elem())
				if err != nil {
					return reflect.Value{}, fmt.Errorf("value of %s: %w", literal.Format(p.Key), err)
				}
				out.SetMapIndex(kv, ev)
			}
			return out, nil
		}
	case reflect.Pointer:
		ev, err := Convert(v, t.Elem())
		if err == nil {
			p := reflect.New(t.Elem())
			p.Elem().Set(ev)
			return p, nil
		}
	}

	return reflect.Value{}, fmt.Errorf("cannot use %s (%T) as %s", literal.Format(v), v, t)
}

// fromString handles targets that read their value from text
func fromString(s string, t reflect.Type) (reflect.Value, bool, error) {
	if t == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return reflect.Value{}, true, err
		}
		return reflect.ValueOf(d), true, nil
	}
	if reflect.PointerTo(t).Implements(textUnmarshalType) {
		p := reflect.New(t)
		if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return reflect.Value{}, true, err
		}
		return p.Elem(), true, nil
	}
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(s).Convert(t), true, nil
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return reflect.Value{}, true, fmt.Errorf("%q is not a boolean", s)
		}
		return reflect.ValueOf(b).Convert(t), true, nil
	}
	return reflect.Value{}, false, nil
}

// readsText reports whether values of t are best taken from the raw token
func readsText(t reflect.Type) bool {
	if t == durationType {
		return true
	}
	if t.Kind() == reflect.String {
		return true
	}
	return reflect.PointerTo(t).Implements(textUnmarshalType)
}

func toBigInt(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case int:
		return big.NewInt(int64(x)), true
	case *big.Int:
		return x, true
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			b, _ := big.NewFloat(x).Int(nil)
			return b, true
		}
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case float64:
		return x, true
	case *big.Int:
		f, _ := new(big.Float).SetInt(x).Float64()
		return f, true
	}
	return 0, false
}

func sequenceOf(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case literal.Tuple:
		return x, true
	case literal.Set:
		return x, true
	}
	return nil, false
}
