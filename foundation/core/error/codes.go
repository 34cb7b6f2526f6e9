// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across zunder. Binding and
//              traversal codes classify why a command token could not be
//              consumed; the remaining codes cover configuration and usage.
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-11
//
// Change History:
// - 2026-09-02 v0.1.0: Generic and configuration codes
// - 2026-10-11 v0.2.0: Binding and traversal codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Binding: a token could not be matched to a callable's arguments
	CodeMissingArgument Code = "MISSING_ARGUMENT"
	CodeUnexpectedFlag  Code = "UNEXPECTED_FLAG"
	CodeMissingFlag     Code = "MISSING_FLAG"
	CodeAmbiguousFlag   Code = "AMBIGUOUS_FLAG"
	CodeInvalidValue    Code = "INVALID_VALUE"

	// Traversal: a token could not select a sub-component
	CodeIndexOutOfRange     Code = "INDEX_OUT_OF_RANGE"
	CodeKeyNotFound         Code = "KEY_NOT_FOUND"
	CodeMemberNotFound      Code = "MEMBER_NOT_FOUND"
	CodeUnconsumedArguments Code = "UNCONSUMED_ARGUMENTS"

	// Usage of the engine itself
	CodeUsage Code = "USAGE_ERROR"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeMissingArgument, CodeUnexpectedFlag, CodeMissingFlag, CodeAmbiguousFlag, CodeInvalidValue,
		CodeIndexOutOfRange, CodeKeyNotFound, CodeMemberNotFound, CodeUnconsumedArguments,
		CodeUsage,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMissingArgument, CodeUnexpectedFlag, CodeMissingFlag, CodeAmbiguousFlag, CodeInvalidValue:
		return "binding"
	case CodeIndexOutOfRange, CodeKeyNotFound, CodeMemberNotFound, CodeUnconsumedArguments:
		return "traversal"
	case CodeUsage:
		return "usage"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsBinding reports whether the code belongs to the engine's own binding or
// traversal failures, the ones recorded on a trace instead of returned.
func (c Code) IsBinding() bool {
	switch c.Category() {
	case "binding", "traversal":
		return true
	default:
		return false
	}
}

// ExitCode returns the process exit status a command line front end should
// use for this code.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "binding", "traversal", "usage":
		return 2
	case "configuration":
		return 78
	default:
		return 1
	}
}
