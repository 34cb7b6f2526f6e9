// Package stringx provides the string helpers used by the zunder engine:
// Go-name to command-name conversion and the wrapping and padding that
// help and result rendering rely on.
//
// Package: stringx
// Title: String Utilities
// Description: Case conversion (snake_case), blank checks,
//              truncation, padding, indentation and word wrapping. All
//              functions are Unicode-aware and operate on runes, not bytes.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-11 v0.2.0: Acronym-aware snake_case, wrapping and indentation
//
// Usage:
//
//	stringx.ToSnakeCase("HTTPServer")        // "http_server"
//	stringx.Wrap("long description ...", 72) // []string of lines
package stringx
