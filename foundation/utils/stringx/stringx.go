// File: stringx.go
// Title: Core String Utilities
// Description: Blank checks, truncation, padding, indentation and word
//              wrapping for terminal output.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2026-10-11 v0.2.0: Indent and Wrap for help rendering

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty checks if a string is empty
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank checks if a string is empty or contains only whitespace
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// FirstNonBlank returns the first argument that is not blank
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}

// Truncate shortens s to at most maxLen runes, ending with ellipsis when cut.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(ellipsis)[:maxLen])
	}
	runes := []rune(s)
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}

// PadRight pads s with spaces to width runes
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// SplitLines splits s on newlines, accepting \r\n
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// Indent prefixes every non-empty line of s with prefix
func Indent(s, prefix string) string {
	lines := SplitLines(s)
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Wrap breaks text into lines of at most width runes on word boundaries.
// Existing line breaks are kept and words longer than width stand alone.
func Wrap(text string, width int) []string {
	var out []string
	for _, paragraph := range SplitLines(text) {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if width > 0 && utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return out
}
