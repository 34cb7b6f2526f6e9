package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should be set")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want Severity
	}{
		{"binding", CodeMissingArgument, SeverityLow},
		{"traversal", CodeMemberNotFound, SeverityLow},
		{"usage", CodeUsage, SeverityMedium},
		{"config", CodeInvalidConfig, SeverityHigh},
		{"internal", CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestExplicitSeverityWins(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeMissingFlag)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := errors.New("disk full")
	wrapped := Wrap(base, "failed to read config")
	if wrapped.Error() != "failed to read config: disk full" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is should find the cause")
	}

	inner := New("bad key").WithCode(CodeInvalidConfig).WithDetail("key", "separator")
	outer := Wrap(inner, "config rejected")
	if outer.Code() != CodeInvalidConfig {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeInvalidConfig)
	}
	if v, ok := outer.Detail("key"); !ok || v != "separator" {
		t.Errorf("Detail(key) = %v, %v", v, ok)
	}
}

func TestHasCodeThroughFmtWrapping(t *testing.T) {
	inner := New("Cannot find key: x").WithCode(CodeKeyNotFound)
	err := fmt.Errorf("step 2: %w", inner)

	if !HasCode(err, CodeKeyNotFound) {
		t.Error("HasCode() = false, want true")
	}
	if GetCode(err) != CodeKeyNotFound {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeKeyNotFound)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code      Code
		category  string
		isBinding bool
		exitCode  int
	}{
		{CodeAmbiguousFlag, "binding", true, 2},
		{CodeInvalidValue, "binding", true, 2},
		{CodeIndexOutOfRange, "traversal", true, 2},
		{CodeUnconsumedArguments, "traversal", true, 2},
		{CodeUsage, "usage", false, 2},
		{CodeMissingConfig, "configuration", false, 78},
		{CodeInternal, "generic", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.IsBinding(); got != tt.isBinding {
				t.Errorf("IsBinding() = %v, want %v", got, tt.isBinding)
			}
			if got := tt.code.ExitCode(); got != tt.exitCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exitCode)
			}
			if !tt.code.IsValid() {
				t.Errorf("IsValid() = false for %s", tt.code)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("IsValid() = true for unknown code")
	}
}

func TestStringAndJSON(t *testing.T) {
	err := New("Could not consume arg: frob").
		WithCode(CodeMemberNotFound).
		WithOperation("engine.member").
		WithDetail("arg", "frob").
		WithDetail("available", 3)

	s := err.String()
	for _, want := range []string{"Code: MEMBER_NOT_FOUND", "Operation: engine.member", "Details: {arg=frob, available=3}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}
	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != "MEMBER_NOT_FOUND" || decoded["category"] != "traversal" {
		t.Errorf("decoded = %v", decoded)
	}
}
