package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	zderror "github.com/msto63/zunder/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadTOMLKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "zunder.toml", `
separator = "+"

[literal]
strip_leading_zeros = true

[interactive]
eval_timeout = "5s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.Separator = "+"
	want.Literal.StripLeadingZeros = true
	want.Interactive.EvalTimeout = Duration{5 * time.Second}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "zunder.yml", `
verbose: true
log:
  level: debug
  format: json
completion:
  shell: fish
  depth: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Verbose || cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.Completion.Shell != "fish" || cfg.Completion.Depth != 2 {
		t.Errorf("completion = %+v", cfg.Completion)
	}
	if !cfg.Literal.CommentHash {
		t.Error("comment_hash default lost")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	if !zderror.HasCode(err, zderror.CodeMissingConfig) {
		t.Errorf("missing file: got %v, want %s", err, zderror.CodeMissingConfig)
	}

	bad := writeFile(t, dir, "bad.toml", "separator = ")
	_, err = Load(bad)
	if !zderror.HasCode(err, zderror.CodeInvalidConfig) {
		t.Errorf("bad file: got %v, want %s", err, zderror.CodeInvalidConfig)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EngineConfig)
		key    string
	}{
		{"empty separator", func(c *EngineConfig) { c.Separator = "" }, "separator"},
		{"space separator", func(c *EngineConfig) { c.Separator = "a b" }, "separator"},
		{"double dash separator", func(c *EngineConfig) { c.Separator = "--" }, "separator"},
		{"bad level", func(c *EngineConfig) { c.Log.Level = "loud" }, "log.level"},
		{"bad color", func(c *EngineConfig) { c.Help.Color = "sometimes" }, "help.color"},
		{"narrow help", func(c *EngineConfig) { c.Help.LineLength = 10 }, "help.line_length"},
		{"bad shell", func(c *EngineConfig) { c.Completion.Shell = "zsh" }, "completion.shell"},
		{"deep completion", func(c *EngineConfig) { c.Completion.Depth = 11 }, "completion.depth"},
		{"negative history", func(c *EngineConfig) { c.Interactive.HistorySize = -1 }, "interactive.history_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !zderror.HasCode(err, zderror.CodeInvalidConfig) {
				t.Fatalf("Validate() = %v, want %s", err, zderror.CodeInvalidConfig)
			}
			e, _ := zderror.As(err)
			if got, _ := e.Detail("key"); got != tt.key {
				t.Errorf("key detail = %v, want %s", got, tt.key)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ZTEST_SEPARATOR", "~")
	t.Setenv("ZTEST_VERBOSE", "true")
	t.Setenv("ZTEST_COMPLETION_SHELL", "fish")

	cfg := Default()
	if err := cfg.ApplyEnv("ZTEST"); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Separator != "~" || !cfg.Verbose || cfg.Completion.Shell != "fish" {
		t.Errorf("env not applied: %+v", cfg)
	}

	t.Setenv("ZTEST_VERBOSE", "perhaps")
	if err := Default().ApplyEnv("ZTEST"); !zderror.HasCode(err, zderror.CodeInvalidConfig) {
		t.Errorf("ApplyEnv() with bad bool = %v", err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	opts := DiscoveryOptions{Paths: []string{dir}, Filenames: []string{"zunder"}}

	cfg, path, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() without file error = %v", err)
	}
	if path != "" || cfg.Separator != "-" {
		t.Errorf("Discover() = %q, %+v; want defaults", path, cfg)
	}

	opts.Required = true
	if _, _, err := Discover(opts); !zderror.HasCode(err, zderror.CodeMissingConfig) {
		t.Errorf("required Discover() = %v", err)
	}

	want := writeFile(t, dir, "zunder.yaml", "separator: '%'\n")
	cfg, path, err = Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if path != want || cfg.Separator != "%" {
		t.Errorf("Discover() = %q, %q", path, cfg.Separator)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			cfg := Default()
			cfg.Separator = "+"
			data, err := cfg.Marshal(format)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if !strings.Contains(string(data), "separator") {
				t.Errorf("output lacks separator key:\n%s", data)
			}
			back, err := LoadFromString(string(data), format)
			if err != nil {
				t.Fatalf("LoadFromString() error = %v", err)
			}
			if diff := cmp.Diff(cfg, back); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"toml": FormatTOML, "YAML": FormatYAML, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("ini"); err == nil {
		t.Error("ParseFormat(ini) succeeded")
	}
}
