// Package log provides structured logging for the zunder foundation.
//
// Package: log
// Title: zunder Structured Logging
// Description: Structured logger with immutable context (fields, logger name,
//              execution ID), level filtering and pluggable output formats.
//              Output defaults to stderr so that stdout stays reserved for
//              command results.
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-11
//
// Change History:
// - 2026-09-02 v0.1.0: Logger, levels, JSON/text/logfmt formatters
// - 2026-10-11 v0.2.0: Execution IDs, lipgloss console formatter, stderr default
//
// Usage:
//
//	logger := zdlog.GetDefault().WithField("component", "ocl-engine")
//	logger.Debug("step completed", zdlog.Fields{"action": "Called routine"})
//
//	timer := logger.StartTimer("invoke")
//	defer timer.Stop()
package log
