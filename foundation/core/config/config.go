// File: config.go
// Title: Engine Configuration
// Description: Defines EngineConfig and its loading, validation and
//              serialization. Unset keys keep their defaults because files
//              are decoded on top of Default().
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-11
//
// Change History:
// - 2026-09-02 v0.1.0: Generic configuration store
// - 2026-10-11 v0.2.0: Typed EngineConfig with env overrides

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	zderror "github.com/msto63/zunder/foundation/core/error"
	zdlog "github.com/msto63/zunder/foundation/core/log"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseFormat parses "toml", "yaml" or "yml"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, zderror.Newf("unsupported config format: %s", s).
			WithCode(zderror.CodeInvalidInput).
			WithOperation("config.ParseFormat")
	}
}

// EngineConfig holds the settings of one engine run
type EngineConfig struct {
	Separator   string            `toml:"separator" yaml:"separator"`
	Verbose     bool              `toml:"verbose" yaml:"verbose"`
	Log         LogConfig         `toml:"log" yaml:"log"`
	Literal     LiteralConfig     `toml:"literal" yaml:"literal"`
	Help        HelpConfig        `toml:"help" yaml:"help"`
	Completion  CompletionConfig  `toml:"completion" yaml:"completion"`
	Interactive InteractiveConfig `toml:"interactive" yaml:"interactive"`
}

// LogConfig selects level and format of the foundation logger
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// LiteralConfig toggles the literal parser quirks
type LiteralConfig struct {
	CommentHash       bool `toml:"comment_hash" yaml:"comment_hash"`
	StripLeadingZeros bool `toml:"strip_leading_zeros" yaml:"strip_leading_zeros"`
}

// HelpConfig controls help and usage rendering
type HelpConfig struct {
	Color      string `toml:"color" yaml:"color"` // auto, always, never
	LineLength int    `toml:"line_length" yaml:"line_length"`
}

// CompletionConfig controls completion script generation
type CompletionConfig struct {
	Shell string `toml:"shell" yaml:"shell"`
	Depth int    `toml:"depth" yaml:"depth"`
}

// InteractiveConfig controls the interactive session
type InteractiveConfig struct {
	HistorySize int      `toml:"history_size" yaml:"history_size"`
	HistoryFile string   `toml:"history_file" yaml:"history_file"`
	EvalTimeout Duration `toml:"eval_timeout" yaml:"eval_timeout"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string like "30s"
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found
func Default() *EngineConfig {
	return &EngineConfig{
		Separator: "-",
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Literal: LiteralConfig{
			CommentHash: true,
		},
		Help: HelpConfig{
			Color:      "auto",
			LineLength: 80,
		},
		Completion: CompletionConfig{
			Shell: "bash",
			Depth: 3,
		},
		Interactive: InteractiveConfig{
			HistorySize: 200,
			HistoryFile: defaultHistoryFile(),
			EvalTimeout: Duration{30 * time.Second},
		},
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".zunder", "history.json")
	}
	return filepath.Join(home, ".zunder", "history.json")
}

// Load reads a configuration file, detecting the format from its extension
func Load(path string) (*EngineConfig, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat reads a configuration file in the given format
func LoadWithFormat(path string, format Format) (*EngineConfig, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, zderror.Newf("config file not found: %s", path).
			WithCode(zderror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}

	if format == FormatAuto {
		format = detectFormat(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, zderror.Wrap(err, "failed to read config file").
			WithCode(zderror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}

	cfg, err := parseContent(content, format)
	if err != nil {
		return nil, zderror.Wrap(err, "failed to parse config file").
			WithCode(zderror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("filePath", path).
			WithDetail("format", format.String())
	}

	return cfg, nil
}

// LoadFromString parses configuration content in the given format
func LoadFromString(content string, format Format) (*EngineConfig, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	cfg, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, zderror.Wrap(err, "failed to parse config from string").
			WithCode(zderror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return cfg, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent decodes content on top of the defaults
func parseContent(content []byte, format Format) (*EngineConfig, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, zderror.Wrap(err, "TOML parse error").
				WithCode(zderror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, zderror.Wrap(err, "YAML parse error").
				WithCode(zderror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, zderror.Newf("unsupported format: %s", format).
			WithCode(zderror.CodeInvalidInput).
			WithOperation("config.parseContent")
	}

	return cfg, nil
}

// ApplyEnv overrides fields from environment variables named
// <prefix>_SEPARATOR, <prefix>_VERBOSE, <prefix>_LOG_LEVEL,
// <prefix>_LOG_FORMAT, <prefix>_HELP_COLOR and <prefix>_COMPLETION_SHELL.
func (c *EngineConfig) ApplyEnv(prefix string) error {
	lookup := func(key string) (string, bool) {
		return os.LookupEnv(prefix + "_" + key)
	}

	if v, ok := lookup("SEPARATOR"); ok {
		c.Separator = v
	}
	if v, ok := lookup("VERBOSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return zderror.Wrap(err, "invalid boolean in environment").
				WithCode(zderror.CodeInvalidConfig).
				WithOperation("config.ApplyEnv").
				WithDetail("variable", prefix+"_VERBOSE")
		}
		c.Verbose = b
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := lookup("HELP_COLOR"); ok {
		c.Help.Color = v
	}
	if v, ok := lookup("COMPLETION_SHELL"); ok {
		c.Completion.Shell = v
	}
	return nil
}

// Validate checks the configuration for values the engine cannot use
func (c *EngineConfig) Validate() error {
	invalid := func(key string, value interface{}, reason string) error {
		return zderror.Newf("invalid config value for %s: %s", key, reason).
			WithCode(zderror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key).
			WithDetail("value", value)
	}

	if c.Separator == "" {
		return invalid("separator", c.Separator, "must not be empty")
	}
	if strings.IndexFunc(c.Separator, unicode.IsSpace) >= 0 {
		return invalid("separator", c.Separator, "must not contain whitespace")
	}
	if c.Separator == "--" {
		return invalid("separator", c.Separator, "'--' is reserved for global options")
	}
	if _, err := zdlog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, err.Error())
	}
	if _, err := zdlog.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", c.Log.Format, err.Error())
	}
	switch c.Help.Color {
	case "auto", "always", "never":
	default:
		return invalid("help.color", c.Help.Color, "must be auto, always or never")
	}
	if c.Help.LineLength < 40 {
		return invalid("help.line_length", c.Help.LineLength, "must be at least 40")
	}
	switch c.Completion.Shell {
	case "bash", "fish":
	default:
		return invalid("completion.shell", c.Completion.Shell, "must be bash or fish")
	}
	if c.Completion.Depth < 1 || c.Completion.Depth > 10 {
		return invalid("completion.depth", c.Completion.Depth, "must be between 1 and 10")
	}
	if c.Interactive.HistorySize < 0 {
		return invalid("interactive.history_size", c.Interactive.HistorySize, "must not be negative")
	}
	if c.Interactive.EvalTimeout.Duration < 0 {
		return invalid("interactive.eval_timeout", c.Interactive.EvalTimeout, "must not be negative")
	}
	return nil
}

// Marshal serializes the configuration in the given format
func (c *EngineConfig) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(c)
	case FormatTOML, FormatAuto:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, zderror.Wrap(err, "TOML encode error").
				WithCode(zderror.CodeConfigError).
				WithOperation("config.Marshal")
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Logger builds a foundation logger from the log section
func (c *EngineConfig) Logger() (*zdlog.Logger, error) {
	level, err := zdlog.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := zdlog.ParseFormat(c.Log.Format)
	if err != nil {
		return nil, err
	}
	return zdlog.NewWithConfig(zdlog.Config{
		Level:  level,
		Format: format,
		Name:   "zunder",
	}), nil
}
