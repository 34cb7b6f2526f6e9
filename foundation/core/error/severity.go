// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for errors. The logger uses it to pick
//              the level an error is reported at.
// Version: v0.1.0
// Created: 2026-09-02
// Modified: 2026-09-02
//
// Change History:
// - 2026-09-02 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers user input problems such as a mistyped flag
	SeverityLow Severity = iota

	// SeverityMedium covers failures that have a workaround
	SeverityMedium

	// SeverityHigh covers failures that stop the current command
	SeverityHigh

	// SeverityCritical covers failures that make the tool unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeInvalidConfig, CodeMissingConfig:
		return SeverityHigh

	case CodeUsage:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound,
		CodeMissingArgument, CodeUnexpectedFlag, CodeMissingFlag, CodeAmbiguousFlag, CodeInvalidValue,
		CodeIndexOutOfRange, CodeKeyNotFound, CodeMemberNotFound, CodeUnconsumedArguments:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
