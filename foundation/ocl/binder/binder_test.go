package binder

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	zderror "github.com/msto63/zunder/foundation/core/error"
	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/literal"
)

func routine(args []string, defaults map[string]any) component.Spec {
	return component.Spec{Name: "f", Args: args, Defaults: defaults, AcceptsPositional: true}
}

func TestBind(t *testing.T) {
	tests := []struct {
		name   string
		spec   component.Spec
		tokens []string
		want   Bound
	}{
		{
			name:   "positional",
			spec:   routine([]string{"alpha", "beta"}, nil),
			tokens: []string{"1", "2"},
			want:   Bound{Positional: []any{1, 2}, Consumed: []string{"1", "2"}},
		},
		{
			name:   "named value is parsed",
			spec:   routine([]string{"alpha", "beta"}, map[string]any{"beta": 0}),
			tokens: []string{"--alpha", "10"},
			want:   Bound{Positional: []any{10, 0}, Consumed: []string{"--alpha", "10"}, Capacity: true},
		},
		{
			name:   "value after a false default is not a boolean",
			spec:   routine([]string{"alpha", "beta"}, map[string]any{"alpha": false, "beta": "0"}),
			tokens: []string{"--alpha", "10"},
			want:   Bound{Positional: []any{10, "0"}, Consumed: []string{"--alpha", "10"}, Capacity: true},
		},
		{
			name:   "named and positional mix",
			spec:   routine([]string{"alpha", "beta"}, nil),
			tokens: []string{"--beta=2", "1"},
			want:   Bound{Positional: []any{1, 2}, Consumed: []string{"--beta=2", "1"}},
		},
		{
			name:   "leftover positional",
			spec:   routine([]string{"alpha"}, nil),
			tokens: []string{"1", "upper"},
			want:   Bound{Positional: []any{1}, Consumed: []string{"1"}, Remaining: []string{"upper"}},
		},
		{
			name:   "default used gives capacity",
			spec:   routine([]string{"alpha", "beta"}, map[string]any{"beta": "b"}),
			tokens: []string{"1"},
			want:   Bound{Positional: []any{1, "b"}, Consumed: []string{"1"}, Capacity: true},
		},
		{
			name:   "boolean flag",
			spec:   routine([]string{"loud"}, map[string]any{"loud": false}),
			tokens: []string{"--loud"},
			want:   Bound{Positional: []any{true}, Consumed: []string{"--loud"}},
		},
		{
			name:   "negated boolean flag",
			spec:   routine([]string{"loud"}, map[string]any{"loud": true}),
			tokens: []string{"--noloud"},
			want:   Bound{Positional: []any{false}, Consumed: []string{"--noloud"}},
		},
		{
			name:   "single letter prefix",
			spec:   routine([]string{"alpha", "beta"}, nil),
			tokens: []string{"-b", "3", "4"},
			want:   Bound{Positional: []any{4, 3}, Consumed: []string{"-b", "3", "4"}},
		},
		{
			name:   "unknown flag stays remaining",
			spec:   routine([]string{"alpha"}, nil),
			tokens: []string{"1", "--other", "x"},
			want: Bound{Positional: []any{1}, Consumed: []string{"1"},
				Remaining: []string{"--other", "x"}},
		},
		{
			name: "constructor ignores positional",
			spec: component.Spec{Name: "T", Args: []string{"size"},
				Defaults: map[string]any{"size": 1}, Constructor: true},
			tokens: []string{"5"},
			want:   Bound{Positional: []any{1}, Remaining: []string{"5"}, Capacity: true},
		},
		{
			name:   "varargs take the rest",
			spec:   component.Spec{Name: "f", Args: []string{"a"}, VarArgs: "rest", AcceptsPositional: true},
			tokens: []string{"1", "2", "[3]"},
			want:   Bound{Positional: []any{1, 2, []any{3}}, Consumed: []string{"1", "2", "[3]"}, Capacity: true},
		},
		{
			name:   "varkw captures any flag",
			spec:   component.Spec{Name: "f", VarKw: "opts", AcceptsPositional: true},
			tokens: []string{"--color-mode=dark", "--n", "2"},
			want: Bound{Named: map[string]any{"color_mode": "dark", "n": 2},
				Consumed: []string{"--color-mode=dark", "--n", "2"}, Capacity: true},
		},
		{
			name:   "kwonly with default",
			spec:   component.Spec{Name: "f", KwOnly: []string{"k"}, Defaults: map[string]any{"k": 0}},
			tokens: []string{"--k", "'x'"},
			want:   Bound{Named: map[string]any{"k": "x"}, Consumed: []string{"--k", "'x'"}},
		},
		{
			name:   "empty",
			spec:   routine(nil, nil),
			tokens: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bind(tt.spec, tt.tokens, nil)
			if err != nil {
				t.Fatalf("Bind() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Bind() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBindErrors(t *testing.T) {
	tests := []struct {
		name    string
		spec    component.Spec
		tokens  []string
		code    zderror.Code
		message string
	}{
		{
			name:    "missing argument",
			spec:    routine([]string{"alpha", "beta"}, nil),
			tokens:  []string{"1"},
			code:    zderror.CodeMissingArgument,
			message: "The function received no value for the required argument: beta",
		},
		{
			name:    "missing kwonly",
			spec:    component.Spec{Name: "f", KwOnly: []string{"key", "mode"}, Defaults: map[string]any{"mode": 1}},
			tokens:  nil,
			code:    zderror.CodeMissingFlag,
			message: "Missing required flags: {'key'}",
		},
		{
			name:    "ambiguous",
			spec:    routine([]string{"alpha", "amber"}, nil),
			tokens:  []string{"-a", "1"},
			code:    zderror.CodeAmbiguousFlag,
			message: "The argument '-a' is ambiguous as it could refer to any of the following arguments: ['alpha', 'amber']",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Bind(tt.spec, tt.tokens, nil)
			zerr, ok := zderror.As(err)
			if !ok {
				t.Fatalf("Bind() error = %v, want *zderror.Error", err)
			}
			if zerr.Code() != tt.code {
				t.Errorf("code = %s, want %s", zerr.Code(), tt.code)
			}
			if zerr.Message() != tt.message {
				t.Errorf("message = %q, want %q", zerr.Message(), tt.message)
			}
		})
	}
}

func TestBindUnknownFlagWithoutVarKw(t *testing.T) {
	spec := component.Spec{Name: "f", Args: []string{"x"}, KwOnly: []string{"y"}, Defaults: map[string]any{"y": 0}}
	got, err := Bind(spec, []string{"--x", "1", "--z", "2"}, nil)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	want := Bound{
		Positional: []any{1},
		Named:      map[string]any{},
		Consumed:   []string{"--x", "1"},
		Remaining:  []string{"--z", "2"},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Bind() mismatch (-want +got):\n%s", diff)
	}
}

func TestBindParseFns(t *testing.T) {
	upper := func(raw string) (any, error) { return strings.ToUpper(raw), nil }
	raw := func(raw string) (any, error) { return raw, nil }
	fail := func(raw string) (any, error) { return nil, errors.New("not allowed") }

	spec := component.Spec{
		Name:              "f",
		Args:              []string{"a", "b", "c"},
		VarArgs:           "rest",
		AcceptsPositional: true,
		ParseFns: &component.ParseFns{
			Default:    upper,
			Positional: []component.ParseFunc{raw},
			Named:      map[string]component.ParseFunc{"b": raw},
		},
	}
	got, err := Bind(spec, []string{"007", "--c", "x", "007", "y"}, nil)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if diff := cmp.Diff([]any{"007", "007", "X", "Y"}, got.Positional); diff != "" {
		t.Errorf("Positional mismatch (-want +got):\n%s", diff)
	}

	spec.ParseFns.Named["b"] = fail
	_, err = Bind(spec, []string{"1", "2"}, nil)
	if !zderror.HasCode(err, zderror.CodeInvalidValue) {
		t.Errorf("Bind() error = %v, want %s", err, zderror.CodeInvalidValue)
	}
}

func TestBindParserOptions(t *testing.T) {
	spec := routine([]string{"n"}, nil)
	strip := literal.New(literal.Options{StripLeadingZeros: true})

	got, _ := Bind(spec, []string{"007"}, nil)
	if got.Positional[0] != "007" {
		t.Errorf("default parser: %v", got.Positional[0])
	}
	got, _ = Bind(spec, []string{"007"}, strip)
	if got.Positional[0] != 7 {
		t.Errorf("StripLeadingZeros parser: %v", got.Positional[0])
	}
}
