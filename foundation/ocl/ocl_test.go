package ocl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/msto63/zunder/foundation/core/config"
	zdlog "github.com/msto63/zunder/foundation/core/log"
	"github.com/msto63/zunder/foundation/ocl/component"
)

var errBoom = errors.New("boom")

type recordingInteractor struct {
	vars    *component.Object
	verbose bool
}

func (r *recordingInteractor) Embed(ctx context.Context, vars *component.Object, verbose bool) error {
	r.vars, r.verbose = vars, verbose
	return nil
}

func testRoot() *component.Object {
	return component.NewObject("tool").
		Add("sum", component.MustFunc("sum", func(alpha, beta int) int { return alpha + 2*beta },
			component.WithArgs("alpha", "beta"),
			component.WithDefault("alpha", 0), component.WithDefault("beta", 0))).
		Add("items", []any{"a", "b", "c"}).
		Add("fail", component.MustFunc("fail", func() (int, error) { return 0, errBoom })).
		Add("greeting", "hello world")
}

type fired struct {
	result any
	err    error
	stdout string
	stderr string
}

func fire(t *testing.T, opts Options) fired {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cfg := config.Default()
	cfg.Help.Color = "never"
	opts.Name = "tool"
	opts.Config = cfg
	opts.Logger = zdlog.Discard()
	opts.Stdout = &stdout
	opts.Stderr = &stderr
	if opts.Interactor == nil {
		opts.Interactor = &recordingInteractor{}
	}
	result, err := Fire(context.Background(), testRoot(), opts)
	return fired{result, err, stdout.String(), stderr.String()}
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exit *ExitError
	if !errors.As(err, &exit) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if exit.Trace == nil {
		t.Fatal("ExitError carries no trace")
	}
	return exit.Code
}

func TestFireResults(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		want   any
		stdout string
	}{
		{"flag then positional", Options{Args: []string{"sum", "--alpha", "1", "2"}}, 5, "5\n"},
		{"command string", Options{Command: "items 1"}, "b", "b\n"},
		{"member of value", Options{Command: "greeting upper"}, "HELLO WORLD", "HELLO WORLD\n"},
		{
			"serialized",
			Options{Args: []string{"sum", "2"}, Serialize: func(v any) (any, error) { return fmt.Sprintf("<%v>", v), nil }},
			2,
			"<2>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fire(t, tt.opts)
			if got.err != nil {
				t.Fatalf("Fire() error = %v, stderr %q", got.err, got.stderr)
			}
			if got.result != tt.want {
				t.Errorf("Fire() = %v, want %v", got.result, tt.want)
			}
			if got.stdout != tt.stdout {
				t.Errorf("stdout = %q, want %q", got.stdout, tt.stdout)
			}
		})
	}
}

func TestFireBindingError(t *testing.T) {
	got := fire(t, Options{Args: []string{"greeting", "nope"}})
	if code := exitCode(t, got.err); code != ExitCodeError {
		t.Errorf("Code = %d, want %d", code, ExitCodeError)
	}
	if !strings.HasPrefix(got.stderr, "ERROR: Could not consume arg: nope\n") {
		t.Errorf("stderr = %q", got.stderr)
	}
	if !strings.Contains(got.stderr, "Usage: tool greeting") {
		t.Errorf("stderr has no usage for the last healthy component: %q", got.stderr)
	}
	if got.stdout != "" {
		t.Errorf("stdout = %q, want empty", got.stdout)
	}
}

func TestFireTargetError(t *testing.T) {
	got := fire(t, Options{Args: []string{"fail"}})
	if !errors.Is(got.err, errBoom) {
		t.Fatalf("Fire() error = %v, want %v", got.err, errBoom)
	}
	var exit *ExitError
	if errors.As(got.err, &exit) {
		t.Error("target error was turned into an ExitError")
	}
	if got.stderr != "" {
		t.Errorf("stderr = %q, want no usage", got.stderr)
	}
}

func TestFireHelp(t *testing.T) {
	got := fire(t, Options{Args: []string{"--help"}})
	if code := exitCode(t, got.err); code != ExitCodeOK {
		t.Errorf("Code = %d, want %d", code, ExitCodeOK)
	}
	if !strings.HasPrefix(got.stderr, "INFO: Showing help with the command 'tool -- --help'.\n") {
		t.Errorf("stderr = %q", got.stderr)
	}
	if !strings.Contains(got.stderr, "NAME") {
		t.Errorf("stderr has no help screen: %q", got.stderr)
	}

	got = fire(t, Options{Args: []string{"sum", "--", "--help"}})
	if code := exitCode(t, got.err); code != ExitCodeOK {
		t.Errorf("Code = %d, want %d", code, ExitCodeOK)
	}
	if strings.Contains(got.stderr, "INFO:") {
		t.Errorf("explicit help printed the shortcut notice: %q", got.stderr)
	}
}

func TestFireTrace(t *testing.T) {
	got := fire(t, Options{Args: []string{"sum", "1", "--", "--trace"}})
	if code := exitCode(t, got.err); code != ExitCodeOK {
		t.Errorf("Code = %d, want %d", code, ExitCodeOK)
	}
	for _, want := range []string{"Trace:\n1. Initial component\n", `2. Accessed property "sum"`, `3. Called routine "sum"`} {
		if !strings.Contains(got.stderr, want) {
			t.Errorf("stderr = %q, want %q", got.stderr, want)
		}
	}
}

func TestFireCompletion(t *testing.T) {
	got := fire(t, Options{Args: []string{"--", "--completion"}})
	if code := exitCode(t, got.err); code != ExitCodeOK {
		t.Errorf("Code = %d, want %d", code, ExitCodeOK)
	}
	if !strings.Contains(got.stdout, "complete -F _complete-tool tool") {
		t.Errorf("stdout is not a bash completion script:\n%s", got.stdout)
	}
}

func TestFireInteractive(t *testing.T) {
	interactor := &recordingInteractor{}
	got := fire(t, Options{Args: []string{"sum", "3", "--", "-i", "-v"}, Interactor: interactor})
	if got.err != nil {
		t.Fatalf("Fire() error = %v", got.err)
	}
	if interactor.vars == nil {
		t.Fatal("interactive session was not opened")
	}
	if !interactor.verbose {
		t.Error("verbose flag was not passed to the session")
	}
	if result, _ := interactor.vars.Get("result"); result != 3 {
		t.Errorf("session result = %v, want 3", result)
	}
	if _, ok := interactor.vars.Get("tool"); !ok {
		t.Error("session has no variable named after the command")
	}
}

func TestOptionsTokens(t *testing.T) {
	tokens, err := Options{Command: `greet "Ann Lee" --count=2`}.Tokens()
	if err != nil {
		t.Fatalf("Tokens() error = %v", err)
	}
	want := []string{"greet", "Ann Lee", "--count=2"}
	if strings.Join(tokens, "|") != strings.Join(want, "|") {
		t.Errorf("Tokens() = %q, want %q", tokens, want)
	}

	if _, err := (Options{Command: `"open`}).Tokens(); err == nil {
		t.Error("Tokens() of an unterminated quote returned no error")
	}
}
