package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	zderror "github.com/msto63/zunder/foundation/core/error"
	"github.com/msto63/zunder/foundation/ocl"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	t.Setenv("ZUNDER_HELP_COLOR", "never")
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"run", "calc", "add", "1", "2"}, "3.0\n"},
		{[]string{"run", "greeter", "--name", "Ann", "greet", "-", "upper"}, "HELLO ANN!\n"},
		{[]string{"run", "colors", "red", "aliases"}, "crimson\nscarlet\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v, stderr %q", err, stderr)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestRunBindingErrorExitCode(t *testing.T) {
	_, stderr, err := execute(t, "run", "calc", "nope")
	var exit *ocl.ExitError
	if !errors.As(err, &exit) || exit.Code != ocl.ExitCodeError {
		t.Fatalf("Execute() error = %v, want exit code %d", err, ocl.ExitCodeError)
	}
	if !strings.Contains(stderr, "ERROR: Could not consume arg: nope") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRunUnknownTarget(t *testing.T) {
	_, _, err := execute(t, "run", "nothing")
	if err == nil || !strings.Contains(err.Error(), "unknown target") {
		t.Errorf("Execute() error = %v, want unknown target", err)
	}
}

func TestParseCommand(t *testing.T) {
	stdout, _, err := execute(t, "parse", "10", "[a, 2]", "007")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), stdout)
	}
	for i, want := range []string{"int", "[]interface {}", "string"} {
		if !strings.HasSuffix(lines[i], want) {
			t.Errorf("line %d = %q, want type %s", i, lines[i], want)
		}
	}
}

func TestConfigShow(t *testing.T) {
	stdout, _, err := execute(t, "config", "show", "--format", "yaml")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "separator: '-'") && !strings.Contains(stdout, `separator: "-"`) {
		t.Errorf("stdout has no separator:\n%s", stdout)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"no error", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"trace error", &ocl.ExitError{Code: ocl.ExitCodeError}, 2},
		{"help shown", &ocl.ExitError{Code: ocl.ExitCodeOK}, 0},
		{"usage error", zderror.New("no name").WithCode(zderror.CodeUsage), 2},
		{"config error", zderror.New("bad file").WithCode(zderror.CodeInvalidConfig), 78},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain error", errors.New("boom"), "Error: boom\n"},
		{"coded error", zderror.New("bad file").WithCode(zderror.CodeInvalidConfig),
			"Error [INVALID_CONFIG]: bad file\n"},
		{"usage error", zderror.New("no name").WithCode(zderror.CodeUsage),
			"Error [USAGE_ERROR]: no name\nRun 'zunder --help' for usage.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tt.err)
			if buf.String() != tt.want {
				t.Errorf("printError() wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}
