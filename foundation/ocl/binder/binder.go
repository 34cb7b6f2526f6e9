// File: binder.go
// Title: Call Binding
// Description: Binds classified tokens to the ordered arguments,
//              keyword-only names and open-ended captures of a Spec.
// Version: v0.1.0
// Created: 2026-09-11
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-11 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Parse function failures are binding errors

package binder

import (
	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/flags"
	"github.com/msto63/zunder/foundation/ocl/literal"

	zderror "github.com/msto63/zunder/foundation/core/error"
)

// Bound holds the result of binding one step
type Bound struct {
	// Positional holds the values of Args in order, defaults included,
	// followed by the values captured by VarArgs
	Positional []any
	// Named holds parsed values of flags that are not one of Args
	Named map[string]any
	// Consumed are the leading tokens the call used
	Consumed []string
	// Remaining are the tokens left for the next step
	Remaining []string
	// Capacity reports whether the call could have taken more arguments
	Capacity bool
}

// Bind binds tokens to spec. A nil parser means the default literal parser.
func Bind(spec component.Spec, tokens []string, parser *literal.Parser) (Bound, error) {
	if parser == nil {
		parser = literal.New(literal.DefaultOptions())
	}
	b := &binding{spec: spec, parser: parser}

	classified, err := flags.Classify(tokens, spec.Accepted(), spec.VarKw != "")
	if err != nil {
		return Bound{}, err
	}
	named := classified.Named
	remaining := classified.Positional

	bound := Bound{Named: map[string]any{}}

	for index, name := range spec.Args {
		raw, ok := named[name]
		switch {
		case ok:
			delete(named, name)
		case len(remaining) > 0 && spec.AcceptsPositional:
			raw, remaining = remaining[0], remaining[1:]
		case !spec.HasDefault(name):
			return Bound{}, b.fail(zderror.CodeMissingArgument,
				"The function received no value for the required argument: %s", name)
		default:
			bound.Capacity = true
			bound.Positional = append(bound.Positional, spec.Defaults[name])
			continue
		}
		v, err := b.parse(raw, index, name)
		if err != nil {
			return Bound{}, err
		}
		bound.Positional = append(bound.Positional, v)
	}

	for name, raw := range named {
		v, err := b.parse(raw, -1, name)
		if err != nil {
			return Bound{}, err
		}
		bound.Named[name] = v
	}

	if spec.VarArgs != "" || spec.VarKw != "" {
		bound.Capacity = true
	}

	var extra []string
	for name := range bound.Named {
		if !spec.IsKwOnly(name) {
			extra = append(extra, name)
		}
	}
	if spec.VarKw == "" && len(extra) > 0 {
		return Bound{}, b.fail(zderror.CodeUnexpectedFlag,
			"Unexpected kwargs present: %s", component.FormatNameSet(extra)).
			WithDetail("flags", extra)
	}

	var missing []string
	for _, name := range spec.RequiredKwOnly() {
		if _, ok := bound.Named[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Bound{}, b.fail(zderror.CodeMissingFlag,
			"Missing required flags: %s", component.FormatNameSet(missing)).
			WithDetail("flags", missing)
	}

	if spec.VarArgs != "" {
		for _, raw := range remaining {
			v, err := b.parse(raw, -1, "")
			if err != nil {
				return Bound{}, err
			}
			bound.Positional = append(bound.Positional, v)
		}
		remaining = nil
	}

	bound.Remaining = append(append([]string{}, remaining...), classified.RemainingFlags...)
	bound.Consumed = append([]string{}, tokens[:len(tokens)-len(bound.Remaining)]...)
	return bound, nil
}

// binding carries the signature and parser of one Bind call
type binding struct {
	spec   component.Spec
	parser *literal.Parser
}

// parse converts a raw token with the parse function selected for the
// argument, falling back to the literal parser
func (b *binding) parse(raw string, index int, name string) (any, error) {
	fn := b.spec.ParseFuncFor(index, name)
	if fn == nil {
		return b.parser.Parse(raw), nil
	}
	v, err := fn(raw)
	if err != nil {
		label := name
		if label == "" {
			label = b.spec.VarArgs
		}
		return nil, zderror.Wrap(err, "Invalid value for argument "+label).
			WithCode(zderror.CodeInvalidValue).
			WithOperation("binder.Bind").
			WithDetail("value", raw)
	}
	return v, nil
}

func (b *binding) fail(code zderror.Code, format string, args ...any) *zderror.Error {
	return zderror.Newf(format, args...).
		WithCode(code).
		WithOperation("binder.Bind").
		WithDetail("target", b.spec.Name)
}
