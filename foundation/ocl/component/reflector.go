// File: reflector.go
// Title: Reflective Inspector
// Description: Default Inspector. Registered components describe
//              themselves; plain Go values are inspected with reflection:
//              funcs are routines, slices and arrays are sequences, maps are
//              mappings, and the exported fields and methods of structs are
//              members.
// Version: v0.1.0
// Created: 2026-09-10
// Modified: 2026-10-13
//
// Change History:
// - 2026-09-10 v0.1.0: Initial implementation

package component

import (
	"context"
	"reflect"
	"runtime"
	"sort"
	"strings"

	zderror "github.com/msto63/zunder/foundation/core/error"
	"github.com/msto63/zunder/foundation/ocl/literal"
	"github.com/msto63/zunder/foundation/utils/stringx"
)

// TagName is the struct tag that renames or hides a field
const TagName = "zunder"

// hookMethods are interface hooks, not members
var hookMethods = map[string]bool{
	"Members": true, "Doc": true, "DescribeMethod": true,
	"CallSpec": true, "Call": true, "Await": true,
	"String": true, "Error": true,
}

// Reflector is the default Inspector
type Reflector struct{}

// NewReflector creates the default Inspector
func NewReflector() *Reflector {
	return &Reflector{}
}

var _ Inspector = (*Reflector)(nil)

// Classify returns the kind of c
func (r *Reflector) Classify(c any) Kind {
	switch c.(type) {
	case nil:
		return KindLeaf
	case *Func:
		return KindInvocable
	case Callable:
		return KindCallableValue
	case string, literal.Set, Membered:
		return KindLeaf
	case literal.Dict:
		return KindMapping
	case literal.Tuple, []any:
		return KindSequence
	}

	switch v := container(reflect.ValueOf(c)); v.Kind() {
	case reflect.Func:
		if !v.IsNil() {
			return KindInvocable
		}
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		return KindMapping
	}
	return KindLeaf
}

// container dereferences pointers to slices, arrays and maps
func container(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		switch v.Elem().Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			v = v.Elem()
		default:
			return v
		}
	}
	return v
}

// Signature returns the call signature of c
func (r *Reflector) Signature(c any) (Spec, bool) {
	switch x := c.(type) {
	case *Func:
		return x.spec, true
	case Callable:
		return x.CallSpec(), true
	}
	if f, ok := r.wrapFunc(c); ok {
		return f.spec, true
	}
	return Spec{}, false
}

// Invoke calls c with bound values
func (r *Reflector) Invoke(ctx context.Context, c any, args []any, kwargs map[string]any) (any, error) {
	switch x := c.(type) {
	case *Func:
		return x.Call(ctx, args, kwargs)
	case Callable:
		return x.Call(ctx, args, kwargs)
	}
	if f, ok := r.wrapFunc(c); ok {
		return f.Call(ctx, args, kwargs)
	}
	return nil, &ArgumentError{Err: zderror.Newf("%T is not callable", c).
		WithCode(zderror.CodeInternal).
		WithOperation("component.Invoke")}
}

// wrapFunc registers a plain Go func on the fly
func (r *Reflector) wrapFunc(c any) (*Func, bool) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, false
	}
	f, err := NewFunc(funcName(v), c)
	if err != nil {
		return nil, false
	}
	return f, true
}

// funcName returns the short name of a function value
func funcName(v reflect.Value) string {
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return "func"
	}
	name := rf.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

// Elements returns the items of a sequence
func (r *Reflector) Elements(c any) []any {
	switch x := c.(type) {
	case []any:
		return x
	case literal.Tuple:
		return x
	}
	v := container(reflect.ValueOf(c))
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil
	}
	items := make([]any, v.Len())
	for i := range items {
		items[i] = v.Index(i).Interface()
	}
	return items
}

// Entries returns the entries of a mapping. Go maps are ordered by key text.
func (r *Reflector) Entries(c any) []Entry {
	if d, ok := c.(literal.Dict); ok {
		entries := make([]Entry, len(d))
		for i, p := range d {
			entries[i] = Entry{Key: p.Key, Value: p.Value}
		}
		return entries
	}
	v := container(reflect.ValueOf(c))
	if v.Kind() != reflect.Map {
		return nil
	}
	entries := make([]Entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, Entry{Key: iter.Key().Interface(), Value: iter.Value().Interface()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return Stringify(entries[i].Key) < Stringify(entries[j].Key)
	})
	return entries
}

// Member returns the member called name. Struct members also answer to
// their Go name.
func (r *Reflector) Member(c any, name string) (any, bool) {
	for _, m := range r.members(c) {
		if m.Name == name || (m.goName != "" && m.goName == name) {
			return m.Value, true
		}
	}
	return nil, false
}

// Members lists the members of c
func (r *Reflector) Members(c any, verbose bool) []Member {
	var out []Member
	for _, m := range r.members(c) {
		if !verbose && strings.HasPrefix(m.Name, "_") {
			continue
		}
		out = append(out, m.Member)
	}
	return out
}

type namedMember struct {
	Member
	goName string
}

func (r *Reflector) members(c any) []namedMember {
	switch x := c.(type) {
	case nil, *Func:
		return nil
	case Membered:
		var out []namedMember
		for _, m := range x.Members() {
			out = append(out, namedMember{Member: m})
		}
		return out
	case string:
		return stringMembers(x)
	}
	return structMembers(c)
}

// structMembers lists exported fields and methods
func structMembers(c any) []namedMember {
	v := reflect.ValueOf(c)
	var out []namedMember

	sv := v
	if sv.Kind() == reflect.Pointer && !sv.IsNil() {
		sv = sv.Elem()
	}
	if sv.Kind() == reflect.Struct {
		t := sv.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Anonymous {
				continue
			}
			name := stringx.ToSnakeCase(field.Name)
			if tag, ok := field.Tag.Lookup(TagName); ok {
				if tag == "-" {
					continue
				}
				name = strings.Split(tag, ",")[0]
			}
			out = append(out, namedMember{
				Member: Member{Name: name, Value: sv.Field(i).Interface()},
				goName: field.Name,
			})
		}
	}

	if v.Kind() == reflect.Pointer && v.IsNil() {
		return out
	}
	describer, _ := c.(MethodDescriber)
	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		method := t.Method(i)
		if hookMethods[method.Name] {
			continue
		}
		opts := []Option{}
		if rf := runtime.FuncForPC(method.Func.Pointer()); rf != nil {
			file, line := rf.FileLine(rf.Entry())
			opts = append(opts, WithLocation(file, line))
		}
		if describer != nil {
			opts = append(opts, describer.DescribeMethod(method.Name)...)
		}
		name := stringx.ToSnakeCase(method.Name)
		f, err := NewFunc(name, v.Method(i).Interface(), opts...)
		if err != nil {
			continue
		}
		out = append(out, namedMember{Member: Member{Name: name, Value: f}, goName: method.Name})
	}
	return out
}

// Doc returns the documentation of c
func (r *Reflector) Doc(c any) string {
	switch x := c.(type) {
	case Documented:
		return x.Doc()
	case Callable:
		return x.CallSpec().Doc
	}
	return ""
}

// Location returns the source position of c
func (r *Reflector) Location(c any) (string, int) {
	switch x := c.(type) {
	case *Func:
		return x.spec.Filename, x.spec.Line
	case Callable:
		s := x.CallSpec()
		return s.Filename, s.Line
	}
	if f, ok := r.wrapFunc(c); ok {
		return f.spec.Filename, f.spec.Line
	}
	return "", 0
}
