// File: builtins.go
// Title: String Members
// Description: Members available on string results so that commands can
//              keep transforming text, e.g. "greet hello - upper".
// Version: v0.1.0
// Created: 2026-09-12
// Modified: 2026-10-13
//
// Change History:
// - 2026-09-12 v0.1.0: Initial implementation

package component

import (
	"strings"
	"unicode"
)

// stringMembers returns the members of s, sorted by name
func stringMembers(s string) []namedMember {
	charsArg := func(chars any) string {
		if chars == nil {
			return ""
		}
		return Stringify(chars)
	}

	funcs := []*Func{
		MustFunc("capitalize", func() string {
			if s == "" {
				return s
			}
			r := []rune(strings.ToLower(s))
			r[0] = unicode.ToUpper(r[0])
			return string(r)
		}, WithDoc("Return a copy with the first character upper case and the rest lower case.")),
		MustFunc("count", func(sub string) int { return strings.Count(s, sub) },
			WithArgs("sub"), WithDoc("Return the number of non-overlapping occurrences of sub.")),
		MustFunc("endswith", func(suffix string) bool { return strings.HasSuffix(s, suffix) },
			WithArgs("suffix"), WithDoc("Return True if the string ends with suffix.")),
		MustFunc("find", func(sub string) int {
			i := strings.Index(s, sub)
			if i < 0 {
				return -1
			}
			return len([]rune(s[:i]))
		}, WithArgs("sub"), WithDoc("Return the lowest index of sub, or -1.")),
		MustFunc("lower", func() string { return strings.ToLower(s) },
			WithDoc("Return a copy converted to lower case.")),
		MustFunc("lstrip", func(chars any) string {
			if c := charsArg(chars); c != "" {
				return strings.TrimLeft(s, c)
			}
			return strings.TrimLeftFunc(s, unicode.IsSpace)
		}, WithArgs("chars"), WithDefault("chars", nil), WithDoc("Return a copy with leading characters removed.")),
		MustFunc("replace", func(old, repl string) string { return strings.ReplaceAll(s, old, repl) },
			WithArgs("old", "new"), WithDoc("Return a copy with all occurrences of old replaced by new.")),
		MustFunc("rstrip", func(chars any) string {
			if c := charsArg(chars); c != "" {
				return strings.TrimRight(s, c)
			}
			return strings.TrimRightFunc(s, unicode.IsSpace)
		}, WithArgs("chars"), WithDefault("chars", nil), WithDoc("Return a copy with trailing characters removed.")),
		MustFunc("split", func(sep any) []any {
			var parts []string
			if c := charsArg(sep); c != "" {
				parts = strings.Split(s, c)
			} else {
				parts = strings.Fields(s)
			}
			out := make([]any, len(parts))
			for i, p := range parts {
				out[i] = p
			}
			return out
		}, WithArgs("sep"), WithDefault("sep", nil), WithDoc("Return the words of the string, split on sep or on whitespace.")),
		MustFunc("startswith", func(prefix string) bool { return strings.HasPrefix(s, prefix) },
			WithArgs("prefix"), WithDoc("Return True if the string starts with prefix.")),
		MustFunc("strip", func(chars any) string {
			if c := charsArg(chars); c != "" {
				return strings.Trim(s, c)
			}
			return strings.TrimSpace(s)
		}, WithArgs("chars"), WithDefault("chars", nil), WithDoc("Return a copy with leading and trailing characters removed.")),
		MustFunc("swapcase", func() string {
			return strings.Map(func(r rune) rune {
				if unicode.IsUpper(r) {
					return unicode.ToLower(r)
				}
				return unicode.ToUpper(r)
			}, s)
		}, WithDoc("Return a copy with upper case converted to lower case and vice versa.")),
		MustFunc("title", func() string {
			prev := ' '
			return strings.Map(func(r rune) rune {
				defer func() { prev = r }()
				if unicode.IsLetter(prev) {
					return unicode.ToLower(r)
				}
				return unicode.ToTitle(r)
			}, s)
		}, WithDoc("Return a copy where each word starts upper case.")),
		MustFunc("upper", func() string { return strings.ToUpper(s) },
			WithDoc("Return a copy converted to upper case.")),
		MustFunc("zfill", func(width int) string {
			n := len([]rune(s))
			if n >= width {
				return s
			}
			pad := strings.Repeat("0", width-n)
			if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
				return s[:1] + pad + s[1:]
			}
			return pad + s
		}, WithArgs("width"), WithDoc("Pad with zeros on the left to fill width.")),
	}

	out := make([]namedMember, len(funcs))
	for i, f := range funcs {
		out[i] = namedMember{Member: Member{Name: f.Name(), Value: f}}
	}
	return out
}
