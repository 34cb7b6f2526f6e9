// File: case.go
// Title: String Case Conversion Utilities
// Description: Converts Go identifiers to the snake_case names exposed on
//              the command line.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-11 v0.2.0: Acronym runs are kept together ("HTTPServer" -> "http_server")

package stringx

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a string to snake_case.
// Runs of capitals are treated as one word, digits stay attached to the
// preceding word, and spaces and hyphens become underscores.
// Example: "ParseJSONValue2" -> "parse_json_value2"
func ToSnakeCase(s string) string {
	if IsEmpty(s) {
		return s
	}

	runes := []rune(s)
	var result strings.Builder
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && needsBoundary(runes, i) {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || r == '-':
			result.WriteRune('_')
		default:
			result.WriteRune(r)
		}
	}

	out := result.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return out
}

// needsBoundary reports whether an underscore belongs before runes[i],
// which is upper case.
func needsBoundary(runes []rune, i int) bool {
	prev := runes[i-1]
	if prev == '_' || prev == '-' || unicode.IsSpace(prev) {
		return false
	}
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	// prev is upper: split "HTTPServer" before the S
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
