// File: func.go
// Title: Registered Functions and Constructors
// Description: Func wraps a Go function together with its Spec and calls
//              it reflectively. An optional leading context.Context
//              parameter is injected, a trailing variadic parameter captures
//              extra positional values, and an optional map[string]any
//              parameter captures extra flags.
// Version: v0.1.0
// Created: 2026-09-09
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-09 v0.1.0: Initial implementation

package component

import (
	"context"
	"fmt"
	"reflect"
	"runtime"

	zderror "github.com/msto63/zunder/foundation/core/error"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
	kwargsType  = reflect.TypeOf(map[string]any(nil))
)

// Func is a Go function registered as a routine or a constructor.
// Parameters are laid out as: [ctx] Args... KwOnly... [kwargs map] [variadic...]
type Func struct {
	spec     Spec
	fn       reflect.Value
	ctxParam bool
	named    []reflect.Type // Args then KwOnly
	kwParam  bool
	variadic reflect.Type // element type, nil when not variadic
	results  resultShape
}

type resultShape int

const (
	resultNone resultShape = iota
	resultValue
	resultError
	resultValueError
)

// NewFunc registers fn as a routine. Args are accepted by position by default.
func NewFunc(name string, fn any, opts ...Option) (*Func, error) {
	return newFunc(Spec{Name: name, AcceptsPositional: true}, fn, opts)
}

// NewType registers ctor as a constructor. Its arguments must be given as
// flags unless WithPositional(true) is passed.
func NewType(name string, ctor any, opts ...Option) (*Func, error) {
	return newFunc(Spec{Name: name, Constructor: true}, ctor, opts)
}

// MustFunc is like NewFunc but panics on error
func MustFunc(name string, fn any, opts ...Option) *Func {
	f, err := NewFunc(name, fn, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// MustType is like NewType but panics on error
func MustType(name string, ctor any, opts ...Option) *Func {
	f, err := NewType(name, ctor, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

func newFunc(spec Spec, fn any, opts []Option) (*Func, error) {
	invalid := func(format string, args ...any) error {
		return zderror.Newf(format, args...).
			WithCode(zderror.CodeInvalidInput).
			WithOperation("component.NewFunc").
			WithDetail("name", spec.Name)
	}

	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, invalid("%s: expected a function, got %T", spec.Name, fn)
	}
	for _, opt := range opts {
		opt(&spec)
	}

	t := v.Type()
	f := &Func{fn: v}
	first, last := 0, t.NumIn()
	if last > 0 && t.In(0) == contextType {
		f.ctxParam = true
		first++
	}
	if t.IsVariadic() {
		last--
		f.variadic = t.In(last).Elem()
		if spec.VarArgs == "" {
			spec.VarArgs = "args"
		}
	} else if spec.VarArgs != "" {
		return nil, invalid("%s: varargs %q declared but the function is not variadic", spec.Name, spec.VarArgs)
	}
	if spec.VarKw != "" {
		if last == first || t.In(last-1) != kwargsType {
			return nil, invalid("%s: varkw %q needs a map[string]any parameter", spec.Name, spec.VarKw)
		}
		f.kwParam = true
		last--
	}
	for i := first; i < last; i++ {
		f.named = append(f.named, t.In(i))
	}

	if spec.Args == nil && spec.KwOnly == nil {
		spec.Args = make([]string, len(f.named))
		for i := range spec.Args {
			spec.Args[i] = fmt.Sprintf("arg%d", i+1)
		}
	}
	if n := len(spec.Args) + len(spec.KwOnly); n != len(f.named) {
		return nil, invalid("%s: %d argument names for %d parameters", spec.Name, n, len(f.named))
	}
	for i, name := range spec.Accepted() {
		if _, ok := spec.Types[name]; ok {
			continue
		}
		if spec.Types == nil {
			spec.Types = map[string]string{}
		}
		spec.Types[name] = f.named[i].String()
	}
	for name := range spec.Defaults {
		if !spec.IsArg(name) && !spec.IsKwOnly(name) {
			return nil, invalid("%s: default for unknown argument %q", spec.Name, name)
		}
	}

	switch {
	case t.NumOut() == 0:
		f.results = resultNone
	case t.NumOut() == 1 && t.Out(0) == errorType:
		f.results = resultError
	case t.NumOut() == 1:
		f.results = resultValue
	case t.NumOut() == 2 && t.Out(1) == errorType:
		f.results = resultValueError
	default:
		return nil, invalid("%s: unsupported results %s", spec.Name, t)
	}

	if spec.Filename == "" {
		if rf := runtime.FuncForPC(v.Pointer()); rf != nil {
			spec.Filename, spec.Line = rf.FileLine(rf.Entry())
		}
	}
	if spec.ParseFns == nil {
		spec.ParseFns = textParseFns(spec, f)
	}

	f.spec = spec
	return f, nil
}

// textParseFns keeps raw tokens for parameters that read text, so that
// "007" stays "007" for a string parameter.
func textParseFns(spec Spec, f *Func) *ParseFns {
	fns := &ParseFns{Named: map[string]ParseFunc{}}
	found := false
	for i, name := range spec.Accepted() {
		if readsText(f.named[i]) {
			fns.Named[name] = rawToken
			found = true
		}
	}
	if f.variadic != nil && readsText(f.variadic) {
		fns.Default = rawToken
		found = true
	}
	if !found {
		return nil
	}
	return fns
}

func rawToken(raw string) (any, error) {
	return raw, nil
}

// CallSpec returns the signature
func (f *Func) CallSpec() Spec {
	return f.spec
}

// Name returns the registered name
func (f *Func) Name() string {
	return f.spec.Name
}

// Doc returns the documentation
func (f *Func) Doc() string {
	return f.spec.Doc
}

// Call converts the bound values and calls the function. Conversion
// failures are *ArgumentError; errors returned by the function pass through.
func (f *Func) Call(ctx context.Context, args []any, kwargs map[string]any) (any, error) {
	in, err := f.prepare(ctx, args, kwargs)
	if err != nil {
		return nil, err
	}

	out := f.fn.Call(in)

	switch f.results {
	case resultValue:
		return out[0].Interface(), nil
	case resultError:
		if e := out[0].Interface(); e != nil {
			return nil, e.(error)
		}
		return nil, nil
	case resultValueError:
		if e := out[1].Interface(); e != nil {
			return out[0].Interface(), e.(error)
		}
		return out[0].Interface(), nil
	default:
		return nil, nil
	}
}

func (f *Func) prepare(ctx context.Context, args []any, kwargs map[string]any) ([]reflect.Value, error) {
	spec := f.spec
	in := make([]reflect.Value, 0, len(f.named)+len(args)+2)

	if f.ctxParam {
		if ctx == nil {
			ctx = context.Background()
		}
		in = append(in, reflect.ValueOf(ctx))
	}

	convert := func(name string, v any, t reflect.Type) error {
		rv, err := Convert(v, t)
		if err != nil {
			return argumentError(zderror.CodeInvalidValue, "Invalid value for argument %s: %v", name, err)
		}
		in = append(in, rv)
		return nil
	}

	for i, name := range spec.Args {
		var v any
		switch {
		case i < len(args):
			v = args[i]
		case spec.HasDefault(name):
			v = spec.Defaults[name]
		default:
			return nil, argumentError(zderror.CodeMissingArgument,
				"The function received no value for the required argument: %s", name)
		}
		if err := convert(name, v, f.named[i]); err != nil {
			return nil, err
		}
	}

	for j, name := range spec.KwOnly {
		v, ok := kwargs[name]
		if !ok {
			if !spec.HasDefault(name) {
				return nil, argumentError(zderror.CodeMissingFlag, "Missing required flags: {'%s'}", name)
			}
			v = spec.Defaults[name]
		}
		if err := convert(name, v, f.named[len(spec.Args)+j]); err != nil {
			return nil, err
		}
	}

	extra := map[string]any{}
	for k, v := range kwargs {
		if !spec.IsKwOnly(k) {
			extra[k] = v
		}
	}
	if f.kwParam {
		in = append(in, reflect.ValueOf(extra))
	} else if len(extra) > 0 {
		return nil, argumentError(zderror.CodeUnexpectedFlag, "Unexpected kwargs present: %s", formatNameSet(keysOf(extra)))
	}

	rest := []any{}
	if len(args) > len(spec.Args) {
		rest = args[len(spec.Args):]
	}
	if f.variadic == nil && len(rest) > 0 {
		return nil, argumentError(zderror.CodeUnconsumedArguments, "%s takes %d arguments, got %d", spec.Name, len(spec.Args), len(args))
	}
	for i, v := range rest {
		if err := convert(fmt.Sprintf("%s[%d]", spec.VarArgs, i), v, f.variadic); err != nil {
			return nil, err
		}
	}
	return in, nil
}
