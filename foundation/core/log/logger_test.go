package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	zderror "github.com/msto63/zunder/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: level, Format: format, Output: &buf})
	return logger, &buf
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		min     Level
		logFunc func(*Logger)
		want    bool
	}{
		{"debug below warn", LevelWarn, func(l *Logger) { l.Debug("x") }, false},
		{"warn at warn", LevelWarn, func(l *Logger) { l.Warn("x") }, true},
		{"error above warn", LevelWarn, func(l *Logger) { l.Error("x") }, true},
		{"audit always", LevelFatal, func(l *Logger) { l.log(LevelAudit, "x", nil) }, true},
		{"trace at trace", LevelTrace, func(l *Logger) { l.Trace("x") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(tt.min, FormatText)
			tt.logFunc(logger)
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestWithMethodsDoNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatLogfmt)
	child := parent.WithField("component", "ocl-engine").WithExecutionID("abc").WithName("zunder")

	parent.Info("parent")
	if strings.Contains(buf.String(), "ocl-engine") || strings.Contains(buf.String(), "execution_id") {
		t.Errorf("parent output carries child context: %q", buf.String())
	}

	buf.Reset()
	child.Info("child")
	out := buf.String()
	for _, want := range []string{`component="ocl-engine"`, "execution_id=abc", "logger=zunder", `message="child"`} {
		if !strings.Contains(out, want) {
			t.Errorf("child output missing %q in %q", want, out)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	cause := zderror.New("Cannot find key: x").WithCode(zderror.CodeKeyNotFound)
	logger.WithExecutionID("run-1").WarnWithErr("step failed", cause, Fields{"step": 2})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if data["message"] != "step failed" {
		t.Errorf("message = %v", data["message"])
	}
	if data["execution_id"] != "run-1" {
		t.Errorf("execution_id = %v", data["execution_id"])
	}
	if data["step"] != float64(2) {
		t.Errorf("step = %v", data["step"])
	}
	details, ok := data["error_details"].(map[string]interface{})
	if !ok || details["code"] != "KEY_NOT_FOUND" {
		t.Errorf("error_details = %v", data["error_details"])
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true
	entry := NewEntry(LevelInfo, "hello")
	entry.Fields = Fields{"b": 2, "a": 1}

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got, want := string(out), "[INF] hello [a=1 b=2]\n"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestConsoleFormatterWithoutColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true
	f.DisableTimestamp = true

	out, _ := f.Format(NewEntry(LevelWarn, "careful"))
	if got, want := string(out), "[WRN] careful\n"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"binding error is info", zderror.New("Missing required flags: x").WithCode(zderror.CodeMissingFlag), "level=info"},
		{"usage error is warn", zderror.New("no name").WithCode(zderror.CodeUsage), "level=warn"},
		{"config error is error", zderror.New("bad").WithCode(zderror.CodeInvalidConfig), "level=error"},
		{"plain error is error", errors.New("boom"), "level=error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatLogfmt)
			logger.LogError(tt.err)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("LogError() output %q does not contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatLogfmt)
	timer := logger.StartTimer("invoke").WithField("target", "add")

	if d := timer.Stop(); d < 0 {
		t.Errorf("Stop() = %v, want >= 0", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}

	out := buf.String()
	for _, want := range []string{`message="invoke completed"`, `target="add"`, `operation="invoke"`} {
		if !strings.Contains(out, want) {
			t.Errorf("timer output missing %q in %q", want, out)
		}
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if lvl, err := ParseLevel(" Debug "); err != nil || lvl != LevelDebug {
		t.Errorf("ParseLevel() = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
	if f, err := ParseFormat("logfmt"); err != nil || f != FormatLogfmt {
		t.Errorf("ParseFormat() = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() logger should not enable error level")
	}
	logger.Error("dropped")
}
