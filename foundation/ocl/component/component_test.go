package component

import (
	"context"
	"errors"
	"math/big"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	zderror "github.com/msto63/zunder/foundation/core/error"
	"github.com/msto63/zunder/foundation/ocl/literal"
)

type ctxKey struct{}

func TestNewFuncSpec(t *testing.T) {
	f, err := NewFunc("scale", func(ctx context.Context, x int, factor float64, opts map[string]any, rest ...string) float64 {
		return float64(x) * factor
	}, WithArgs("x"), WithKwOnly("factor"), WithDefault("factor", 2.0), WithVarKw("opts"))
	if err != nil {
		t.Fatalf("NewFunc() error = %v", err)
	}

	spec := f.CallSpec()
	if diff := cmp.Diff([]string{"x"}, spec.Args); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
	if spec.VarArgs != "args" || spec.VarKw != "opts" || !spec.AcceptsPositional || spec.Constructor {
		t.Errorf("unexpected spec: %+v", spec)
	}
	if spec.Filename == "" || spec.Line == 0 {
		t.Errorf("location not recorded: %s:%d", spec.Filename, spec.Line)
	}
	if fn := spec.ParseFuncFor(-1, ""); fn == nil {
		t.Error("variadic string parameter should read raw tokens")
	}
	if diff := cmp.Diff([]string{"x", "factor"}, spec.Accepted()); diff != "" {
		t.Errorf("Accepted mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"x": "int", "factor": "float64"}, spec.Types); diff != "" {
		t.Errorf("Types mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFuncErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   any
		opts []Option
	}{
		{"not a function", 42, nil},
		{"name count", func(a, b int) {}, []Option{WithArgs("a")}},
		{"unknown default", func(a int) {}, []Option{WithArgs("a"), WithDefault("b", 1)}},
		{"varkw without map", func(a int) {}, []Option{WithVarKw("kw")}},
		{"varargs without variadic", func(a int) {}, []Option{WithVarArgs("rest")}},
		{"too many results", func() (int, int) { return 0, 0 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFunc("f", tt.fn, tt.opts...)
			if !zderror.HasCode(err, zderror.CodeInvalidInput) {
				t.Errorf("NewFunc() error = %v, want %s", err, zderror.CodeInvalidInput)
			}
		})
	}
}

func TestFuncCall(t *testing.T) {
	var seen any
	f := MustFunc("join", func(ctx context.Context, sep string, upper bool, kw map[string]any, parts ...string) (string, error) {
		seen = ctx.Value(ctxKey{})
		if len(parts) == 0 {
			return "", errors.New("nothing to join")
		}
		s := strings.Join(parts, sep)
		if upper {
			s = strings.ToUpper(s)
		}
		if suffix, ok := kw["suffix"]; ok {
			s += Stringify(suffix)
		}
		return s, nil
	}, WithArgs("sep"), WithKwOnly("upper"), WithDefault("upper", false), WithVarKw("kw"))

	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")
	got, err := f.Call(ctx, []any{"-", "a", "b"}, map[string]any{"upper": true, "suffix": 1})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if got != "A-B1" {
		t.Errorf("Call() = %v, want A-B1", got)
	}
	if seen != "marker" {
		t.Errorf("context not injected: %v", seen)
	}

	// errors returned by the target are passed through unchanged
	_, err = f.Call(ctx, []any{"-"}, nil)
	var ae *ArgumentError
	if err == nil || errors.As(err, &ae) || err.Error() != "nothing to join" {
		t.Errorf("target error = %v", err)
	}
}

func TestFuncCallArgumentErrors(t *testing.T) {
	f := MustFunc("add", func(x, y int) int { return x + y }, WithArgs("x", "y"), WithDefault("y", 1))

	if got, err := f.Call(context.Background(), []any{2}, nil); err != nil || got != 3 {
		t.Errorf("Call(2) = %v, %v; want 3", got, err)
	}

	tests := []struct {
		name   string
		args   []any
		kwargs map[string]any
		code   zderror.Code
	}{
		{"missing", nil, nil, zderror.CodeMissingArgument},
		{"not an int", []any{"x", 1}, nil, zderror.CodeInvalidValue},
		{"fraction", []any{1.5, 1}, nil, zderror.CodeInvalidValue},
		{"unexpected flag", []any{1, 2}, map[string]any{"z": 1}, zderror.CodeUnexpectedFlag},
		{"too many", []any{1, 2, 3}, nil, zderror.CodeUnconsumedArguments},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Call(context.Background(), tt.args, tt.kwargs)
			var ae *ArgumentError
			if !errors.As(err, &ae) {
				t.Fatalf("Call() error = %v, want *ArgumentError", err)
			}
			if ae.Err.Code() != tt.code {
				t.Errorf("code = %s, want %s", ae.Err.Code(), tt.code)
			}
		})
	}
}

func TestNewTypeDefaults(t *testing.T) {
	type point struct{ X, Y int }
	ctor := MustType("Point", func(x, y int) *point { return &point{x, y} }, WithArgs("x", "y"))
	spec := ctor.CallSpec()
	if !spec.Constructor || spec.AcceptsPositional {
		t.Errorf("constructor spec = %+v", spec)
	}
	positional := MustType("Point", func(x, y int) *point { return &point{x, y} },
		WithArgs("x", "y"), WithPositional(true))
	if !positional.CallSpec().AcceptsPositional {
		t.Error("WithPositional(true) ignored")
	}
}

func TestConvert(t *testing.T) {
	type level int
	tests := []struct {
		name string
		in   any
		to   reflect.Type
		want any
	}{
		{"int to int64", 5, reflect.TypeOf(int64(0)), int64(5)},
		{"int to named int", 3, reflect.TypeOf(level(0)), level(3)},
		{"integral float to int", 4.0, reflect.TypeOf(0), 4},
		{"int to float", 2, reflect.TypeOf(0.0), 2.0},
		{"big to float", new(big.Int).Lsh(big.NewInt(1), 70), reflect.TypeOf(0.0), 1180591620717411303424.0},
		{"string to bool", "yes", reflect.TypeOf(false), nil},
		{"true string to bool", "true", reflect.TypeOf(false), true},
		{"number to string", 1.5, reflect.TypeOf(""), "1.5"},
		{"list to []int", []any{1, 2}, reflect.TypeOf([]int{}), []int{1, 2}},
		{"tuple to []string", literal.Tuple{"a", "b"}, reflect.TypeOf([]string{}), []string{"a", "b"}},
		{"dict to map", literal.Dict{{Key: "a", Value: 1}}, reflect.TypeOf(map[string]int{}), map[string]int{"a": 1}},
		{"duration", "1m30s", reflect.TypeOf(time.Duration(0)), 90 * time.Second},
		{"none to pointer", nil, reflect.TypeOf((*int)(nil)), (*int)(nil)},
		{"any keeps type", literal.Set{1}, reflect.TypeOf((*any)(nil)).Elem(), literal.Set{1}},
		{"overflow", 300, reflect.TypeOf(int8(0)), nil},
		{"negative to uint", -1, reflect.TypeOf(uint(0)), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.in, tt.to)
			if tt.want == nil && tt.name != "none to pointer" {
				if err == nil {
					t.Fatalf("Convert() = %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Interface()); diff != "" {
				t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type inventory struct {
	Items   map[string]int
	Owner   string `zunder:"owner_name"`
	Secret  string `zunder:"_secret"`
	Skipped string `zunder:"-"`
	count   int
}

func (i *inventory) Total() int {
	n := 0
	for _, v := range i.Items {
		n += v
	}
	return n
}

func (i *inventory) Restock(item string, amount int) int {
	i.Items[item] += amount
	return i.Items[item]
}

func (i *inventory) DescribeMethod(method string) []Option {
	if method == "Restock" {
		return []Option{WithArgs("item", "amount"), WithDefault("amount", 1), WithDoc("Add stock.")}
	}
	return nil
}

func TestReflectorMembers(t *testing.T) {
	r := NewReflector()
	inv := &inventory{Items: map[string]int{"apple": 2}, Owner: "ann", Secret: "s"}

	var names []string
	for _, m := range r.Members(inv, false) {
		names = append(names, m.Name)
	}
	if diff := cmp.Diff([]string{"items", "owner_name", "restock", "total"}, names); diff != "" {
		t.Errorf("Members() mismatch (-want +got):\n%s", diff)
	}
	if n := len(r.Members(inv, true)); n != 5 {
		t.Errorf("verbose Members() = %d members, want 5", n)
	}

	if v, ok := r.Member(inv, "Owner"); !ok || v != "ann" {
		t.Errorf("Member(Owner) = %v, %v", v, ok)
	}

	restock, ok := r.Member(inv, "restock")
	if !ok || r.Classify(restock) != KindInvocable {
		t.Fatalf("Member(restock) = %v, %v", restock, ok)
	}
	spec, _ := r.Signature(restock)
	if diff := cmp.Diff([]string{"item", "amount"}, spec.Args); diff != "" {
		t.Errorf("restock Args mismatch (-want +got):\n%s", diff)
	}
	if r.Doc(restock) != "Add stock." {
		t.Errorf("Doc() = %q", r.Doc(restock))
	}
	if file, line := r.Location(restock); !strings.HasSuffix(file, "component_test.go") || line == 0 {
		t.Errorf("Location() = %s:%d", file, line)
	}
	got, err := r.Invoke(context.Background(), restock, []any{"apple", 1}, nil)
	if err != nil || got != 3 {
		t.Errorf("Invoke() = %v, %v; want 3", got, err)
	}
}

func TestReflectorClassify(t *testing.T) {
	r := NewReflector()
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"nil", nil, KindLeaf},
		{"func", func() {}, KindInvocable},
		{"registered", MustFunc("f", func() {}), KindInvocable},
		{"list", []any{1}, KindSequence},
		{"tuple", literal.Tuple{1}, KindSequence},
		{"int slice", []int{1}, KindSequence},
		{"pointer to slice", &[]int{1}, KindSequence},
		{"dict", literal.Dict{}, KindMapping},
		{"map", map[string]int{}, KindMapping},
		{"set", literal.Set{1}, KindLeaf},
		{"string", "s", KindLeaf},
		{"object", NewObject("o"), KindLeaf},
		{"struct", &inventory{}, KindLeaf},
		{"callable", counter{}, KindCallableValue},
	}
	for _, tt := range tests {
		if got := r.Classify(tt.in); got != tt.want {
			t.Errorf("Classify(%s) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

type counter struct{}

func (counter) CallSpec() Spec { return Spec{Name: "counter", Args: []string{"n"}} }
func (counter) Call(ctx context.Context, args []any, kwargs map[string]any) (any, error) {
	return args[0], nil
}

func TestReflectorEntriesAndElements(t *testing.T) {
	r := NewReflector()
	entries := r.Entries(map[any]string{2: "two", "a": "x", 1: "one"})
	var keys []string
	for _, e := range entries {
		keys = append(keys, Stringify(e.Key))
	}
	if diff := cmp.Diff([]string{"1", "2", "a"}, keys); diff != "" {
		t.Errorf("Entries() order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"x", "y"}, r.Elements([]string{"x", "y"})); diff != "" {
		t.Errorf("Elements() mismatch (-want +got):\n%s", diff)
	}
	if r.Elements(42) != nil || r.Entries("x") != nil {
		t.Error("non-containers should have no elements or entries")
	}
}

func TestRawFuncSignature(t *testing.T) {
	r := NewReflector()
	spec, ok := r.Signature(strings.Repeat)
	if !ok {
		t.Fatal("Signature() of a plain func failed")
	}
	if spec.Name != "Repeat" {
		t.Errorf("Name = %q", spec.Name)
	}
	if diff := cmp.Diff([]string{"arg1", "arg2"}, spec.Args); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
	got, err := r.Invoke(context.Background(), strings.Repeat, []any{"ab", 2}, nil)
	if err != nil || got != "abab" {
		t.Errorf("Invoke() = %v, %v", got, err)
	}
}

func TestStringMembers(t *testing.T) {
	r := NewReflector()
	tests := []struct {
		member string
		args   []any
		want   any
	}{
		{"upper", nil, "HELLO WORLD"},
		{"title", nil, "Hello World"},
		{"split", []any{nil}, []any{"hello", "world"}},
		{"replace", []any{"world", "there"}, "hello there"},
		{"find", []any{"world"}, 6},
		{"count", []any{"o"}, 2},
	}
	for _, tt := range tests {
		m, ok := r.Member("hello world", tt.member)
		if !ok {
			t.Errorf("Member(%s) not found", tt.member)
			continue
		}
		got, err := r.Invoke(context.Background(), m, tt.args, nil)
		if err != nil {
			t.Errorf("%s: %v", tt.member, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.member, diff)
		}
	}
}

func TestSameAndStringify(t *testing.T) {
	s := []any{1}
	m := map[string]int{}
	obj := NewObject("o")
	tests := []struct {
		a, b any
		want bool
	}{
		{s, s, true},
		{s, []any{1}, false},
		{m, m, true},
		{obj, obj, true},
		{obj, NewObject("o"), false},
		{1, 1, true},
		{"a", "b", false},
		{nil, nil, true},
		{nil, 0, false},
	}
	for _, tt := range tests {
		if got := Same(tt.a, tt.b); got != tt.want {
			t.Errorf("Same(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	if Stringify(true) != "True" || Stringify(1.0) != "1.0" || Stringify("x") != "x" || Stringify(nil) != "None" {
		t.Error("Stringify() produced unexpected text")
	}
	if FormatNameSet([]string{"b", "a"}) != "{'a', 'b'}" {
		t.Errorf("FormatNameSet() = %s", FormatNameSet([]string{"b", "a"}))
	}
}

func TestObject(t *testing.T) {
	o := NewObject("calc").WithDoc("A calculator.").Add("pi", 3.14).Add("e", 2.71).Add("pi", 3.1416)
	if diff := cmp.Diff([]Member{{"pi", 3.1416}, {"e", 2.71}}, o.Members()); diff != "" {
		t.Errorf("Members() mismatch (-want +got):\n%s", diff)
	}
	r := NewReflector()
	if r.Doc(o) != "A calculator." {
		t.Errorf("Doc() = %q", r.Doc(o))
	}
	if v, ok := r.Member(o, "e"); !ok || v != 2.71 {
		t.Errorf("Member(e) = %v, %v", v, ok)
	}
}
