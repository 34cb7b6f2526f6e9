// Package shellx splits command lines into words and quotes words for
// display in a POSIX shell.
//
// Package: shellx
// Title: Shell Word Utilities
// Description: Split follows POSIX shell quoting rules; Quote produces the
//              shortest single-quoted form a POSIX shell reads back as the
//              same word, leaving safe words bare.
// Version: v0.1.0
// Created: 2026-09-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-12 v0.1.0: Initial implementation
package shellx

import (
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"
)

var unsafeChars = regexp.MustCompile(`[^\w@%+=:,./-]`)

// Split splits a command line into words
func Split(line string) ([]string, error) {
	return shellquote.Split(line)
}

// Quote returns word in a form the shell reads back unchanged
func Quote(word string) string {
	if word == "" {
		return "''"
	}
	if !unsafeChars.MatchString(word) {
		return word
	}
	return "'" + strings.ReplaceAll(word, "'", `'"'"'`) + "'"
}

// QuoteFlag quotes a --name=value token per part so the flag name stays
// readable
func QuoteFlag(word string) string {
	if strings.HasPrefix(word, "--") {
		if name, value, ok := strings.Cut(word, "="); ok {
			return Quote(name) + "=" + Quote(value)
		}
	}
	return Quote(word)
}

// Join quotes each word with QuoteFlag and joins them with spaces
func Join(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = QuoteFlag(w)
	}
	return strings.Join(quoted, " ")
}
