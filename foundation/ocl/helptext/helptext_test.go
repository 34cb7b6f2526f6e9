package helptext

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/literal"
	"github.com/msto63/zunder/foundation/ocl/trace"
)

func greetFunc() *component.Func {
	return component.MustFunc("greet", func(name string, count int, loud bool) string {
		return strings.Repeat("hello "+name, count)
	},
		component.WithArgs("name", "count", "loud"),
		component.WithDefault("count", 1), component.WithDefault("loud", false),
		component.WithDoc("Greets someone.\n\nRepeats the greeting.\n\nArgs:\n  name: Who to greet.\n  count: How often."))
}

func buildFunc() *component.Func {
	return component.MustFunc("build", func(target string, jobs int, tag string, extra map[string]any) string {
		return target
	},
		component.WithArgs("target"), component.WithKwOnly("jobs", "tag"),
		component.WithDefault("jobs", 4), component.WithVarKw("extra"))
}

func toolObject() *component.Object {
	return component.NewObject("tool").
		WithDoc("Tool.\n\nArgs:\n  version: Release name.").
		Add("config", literal.Dict{{Key: "a", Value: 1}}).
		Add("greet", greetFunc()).
		Add("version", "1.0")
}

func traceFor(c any, name string) *trace.Trace {
	return trace.New(c, trace.Options{Name: name})
}

func TestHelpTextFunction(t *testing.T) {
	f := greetFunc()
	want := strings.Join([]string{
		"NAME",
		"    greet - Greets someone.",
		"",
		"SYNOPSIS",
		"    greet NAME <flags>",
		"",
		"DESCRIPTION",
		"    Repeats the greeting.",
		"",
		"POSITIONAL ARGUMENTS",
		"    NAME",
		"        Type: string",
		"        Who to greet.",
		"",
		"FLAGS",
		"    -c, --count=COUNT",
		"        Type: int",
		"        Default: 1",
		"        How often.",
		"    -l, --loud=LOUD",
		"        Type: bool",
		"        Default: False",
		"",
		"NOTES",
		"    You can also use flags syntax for POSITIONAL ARGUMENTS",
	}, "\n")

	got := HelpText(f, traceFor(f, "greet"), Options{})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HelpText() mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpTextObject(t *testing.T) {
	root := toolObject()
	want := strings.Join([]string{
		"NAME",
		"    tool - Tool.",
		"",
		"SYNOPSIS",
		"    tool GROUP | COMMAND | VALUE",
		"",
		"DESCRIPTION",
		"    Tool.",
		"",
		"GROUPS",
		"    GROUP is one of the following:",
		"",
		"     config",
		"",
		"COMMANDS",
		"    COMMAND is one of the following:",
		"",
		"     greet",
		"       Greets someone.",
		"",
		"VALUES",
		"    VALUE is one of the following:",
		"",
		"     version",
		"       Release name.",
	}, "\n")

	got := HelpText(root, traceFor(root, "tool"), Options{})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HelpText() mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpTextSequence(t *testing.T) {
	nums := []any{1, 2, 3}
	want := strings.Join([]string{
		"NAME",
		"    nums",
		"",
		"SYNOPSIS",
		"    nums INDEX",
		"",
		"INDEXES",
		"    INDEX is one of the following:",
		"",
		"     0, 1, 2",
	}, "\n")

	got := HelpText(nums, traceFor(nums, "nums"), Options{})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HelpText() mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpTextFlags(t *testing.T) {
	got := HelpText(buildFunc(), nil, Options{})
	for _, want := range []string{
		"SYNOPSIS\n     TARGET <flags>",
		"    -j, --jobs=JOBS\n        Type: int\n        Default: 4",
		"    -t, --tag=TAG (required)\n        Type: string",
		"    Additional flags are accepted.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HelpText() missing %q in:\n%s", want, got)
		}
	}
}

func TestHelpTextConstructor(t *testing.T) {
	type rect struct{ W, H int }
	ctor := component.MustType("rect", func(width, height int) rect { return rect{width, height} },
		component.WithArgs("width", "height"), component.WithDefault("height", 1))

	got := HelpText(ctor, traceFor(ctor, "rect"), Options{})
	for _, want := range []string{
		"rect --width=WIDTH <flags>",
		"ARGUMENTS\n    WIDTH\n        Type: int",
		"-h, --height=HEIGHT",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HelpText() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "POSITIONAL ARGUMENTS") || strings.Contains(got, "NOTES") {
		t.Errorf("constructor arguments are flags only:\n%s", got)
	}
}

func TestHelpTextVarKwOnly(t *testing.T) {
	f := component.MustFunc("opts", func(extra map[string]any) int { return len(extra) },
		component.WithVarKw("extra"))
	got := HelpText(f, nil, Options{})
	if !strings.Contains(got, "FLAGS\n    Flags are accepted.") {
		t.Errorf("HelpText() = \n%s", got)
	}
}

func TestHelpTextString(t *testing.T) {
	got := HelpText("hello", traceFor("hello", "word"), Options{})
	for _, want := range []string{
		`word - "hello"`,
		`The string "hello"`,
		"COMMANDS",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HelpText() missing %q in:\n%s", want, got)
		}
	}
}

func TestHelpTextVerboseShowsHidden(t *testing.T) {
	root := component.NewObject("tool").Add("_secret", 1).Add("open", 2)
	if got := HelpText(root, nil, Options{}); strings.Contains(got, "_secret") {
		t.Errorf("hidden member shown:\n%s", got)
	}
	if got := HelpText(root, nil, Options{Verbose: true}); !strings.Contains(got, "_secret") {
		t.Errorf("verbose help misses hidden member:\n%s", got)
	}
}

func TestUsageTextObject(t *testing.T) {
	root := toolObject()
	want := strings.Join([]string{
		"Usage: tool <group|command|value>",
		"  available groups:      config",
		"  available commands:    greet",
		"  available values:      version",
		"",
		"For detailed information on this command, run:",
		"  tool --help",
	}, "\n")

	got := UsageText(root, traceFor(root, "tool"), Options{})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UsageText() mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageTextCallable(t *testing.T) {
	f := buildFunc()
	want := strings.Join([]string{
		"Usage: build TARGET <flags>",
		"  optional flags:        --jobs",
		"  required flags:        --tag",
		"  additional flags are accepted",
		"",
		"For detailed information on this command, run:",
		"  build -- --help",
	}, "\n")

	got := UsageText(f, traceFor(f, "build"), Options{})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UsageText() mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageTextNoArguments(t *testing.T) {
	f := component.MustFunc("now", func() int { return 0 })
	got := UsageText(f, traceFor(f, "now"), Options{})
	if !strings.HasPrefix(got, "Usage: now -\n") {
		t.Errorf("UsageText() = %q", got)
	}
}

type celsius float64

func (c celsius) String() string { return "warm" }

func TestResult(t *testing.T) {
	tests := []struct {
		name    string
		result  any
		verbose bool
		want    string
		wantOK  bool
	}{
		{name: "nil", result: nil, want: "", wantOK: false},
		{name: "string", result: "hi\nthere", want: "hi\nthere", wantOK: true},
		{name: "int", result: 3, want: "3", wantOK: true},
		{name: "bool", result: true, want: "True", wantOK: true},
		{name: "float", result: 1.5, want: "1.5", wantOK: true},
		{name: "stringer", result: celsius(20), want: "warm", wantOK: true},
		{name: "error", result: errors.New("bad"), want: "bad", wantOK: true},
		{
			name:   "list",
			result: []any{"a\nb", 1, literal.Dict{{Key: "k", Value: []any{1, 2}}}},
			want:   "a b\n1\n{\"k\": [1, 2]}", wantOK: true,
		},
		{name: "empty list", result: []any{}, want: "", wantOK: false},
		{name: "go slice", result: []string{"x", "y"}, want: "x\ny", wantOK: true},
		{name: "set", result: literal.Set{1, 2}, want: "1\n2", wantOK: true},
		{name: "set item", result: []any{literal.Set{1}}, want: "{1}", wantOK: true},
		{name: "tuple", result: literal.Tuple{1, "x", nil}, want: `[1, "x", null]`, wantOK: true},
		{
			name:   "dict",
			result: literal.Dict{{Key: "name", Value: "ann"}, {Key: "_hidden", Value: 1}, {Key: "age", Value: 30}},
			want:   "name: ann\nage:  30", wantOK: true,
		},
		{
			name:    "dict verbose",
			result:  literal.Dict{{Key: "_id", Value: 1}, {Key: "ok", Value: true}},
			verbose: true,
			want:    "_id: 1\nok:  true", wantOK: true,
		},
		{name: "empty dict", result: literal.Dict{}, want: "{}", wantOK: true},
		{name: "go map", result: map[string]int{"b": 2, "a": 1}, want: "a: 1\nb: 2", wantOK: true},
		{name: "non-ascii", result: []any{literal.Tuple{"é"}}, want: `["é"]`, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Result(tt.result, nil, Options{Verbose: tt.verbose})
			if ok != tt.wantOK {
				t.Fatalf("Result() ok = %v, want %v", ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Result() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResultShowsHelpForGroups(t *testing.T) {
	got, ok := Result(toolObject(), nil, Options{})
	if !ok || !strings.Contains(got, "COMMANDS") {
		t.Errorf("Result() = %q, %v", got, ok)
	}

	nested := literal.Dict{{Key: "run", Value: greetFunc()}}
	got, _ = Result(nested, nil, Options{})
	if !strings.HasPrefix(got, "NAME") {
		t.Errorf("mapping of commands should show help, got %q", got)
	}
}

func TestOneLine(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"a\nb", "a b"},
		{nil, "null"},
		{2.0, "2.0"},
		{literal.Dict{{Key: 1, Value: "x"}}, `{"1": "x"}`},
		{literal.Dict{{Key: literal.Tuple{1}, Value: "x"}}, `{(1,): "x"}`},
		{[]int{1, 2}, "[1, 2]"},
		{struct{ A int }{1}, "{1}"},
	}
	for _, tt := range tests {
		if got := OneLine(tt.in); got != tt.want {
			t.Errorf("OneLine(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDoc(t *testing.T) {
	doc := `Adds numbers.
	It is fast.

	Details follow
	here.

	Args:
	  a: First value.
	  b (int): Second value,
	    continued.

	Returns:
	  The sum.`

	got := parseDoc(doc)
	want := docInfo{
		Summary:     "Adds numbers. It is fast.",
		Description: "Details follow\nhere.",
		Args: []argDoc{
			{Name: "a", Description: "First value."},
			{Name: "b", Description: "Second value, continued."},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseDoc() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(docInfo{}, parseDoc("")); diff != "" {
		t.Errorf("empty doc mismatch (-want +got):\n%s", diff)
	}
}

func TestWrappedJoin(t *testing.T) {
	got := wrappedJoin([]string{"aaaa", "bbbb", "cccc"}, " | ", 12)
	if diff := cmp.Diff([]string{"aaaa |", "bbbb | cccc"}, got); diff != "" {
		t.Errorf("wrappedJoin() mismatch (-want +got):\n%s", diff)
	}
	if got := wrappedJoin(nil, " | ", 12); !cmp.Equal([]string{""}, got) {
		t.Errorf("wrappedJoin(nil) = %q", got)
	}
}

func TestTruncation(t *testing.T) {
	if got := ellipsisTruncate("abcdefgh", 6, 80); got != "abc..." {
		t.Errorf("ellipsisTruncate() = %q", got)
	}
	if got := ellipsisTruncate("abcdefgh", 2, 80); got != "abcdefgh" {
		t.Errorf("small space falls back to line length, got %q", got)
	}
	if got := stringSummary("hello", 20, 80); got != `"hello"` {
		t.Errorf("stringSummary() = %q", got)
	}
	if got := stringSummary("hello world", 10, 80); got != `"hello..."` {
		t.Errorf("stringSummary() = %q", got)
	}
	if got := indexRange(12); got != "0..11" {
		t.Errorf("indexRange(12) = %q", got)
	}
}

func TestStyler(t *testing.T) {
	var buf bytes.Buffer
	plain := NewStyler(&buf, ColorNever)
	if got := plain.Bold("x"); got != "x" {
		t.Errorf("plain Bold() = %q", got)
	}
	var nilStyler *Styler
	if got := nilStyler.Underline("x"); got != "x" {
		t.Errorf("nil Underline() = %q", got)
	}
	styled := NewStyler(&buf, ColorAlways)
	if got := styled.Bold("x"); !strings.Contains(got, "\x1b[") || !strings.Contains(got, "x") {
		t.Errorf("styled Bold() = %q", got)
	}
	if ColorEnabled(&buf, ColorAuto) {
		t.Error("a buffer is not a terminal")
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintResult(&buf, nil, nil, Options{}); err != nil || buf.Len() != 0 {
		t.Fatalf("PrintResult(nil) wrote %q, err = %v", buf.String(), err)
	}
	if err := PrintResult(&buf, []any{1, "two"}, nil, Options{}); err != nil {
		t.Fatalf("PrintResult() error = %v", err)
	}
	if got := buf.String(); got != "1\ntwo\n" {
		t.Errorf("PrintResult() wrote %q", got)
	}
}
