// File: classify.go
// Title: Flag Classification
// Description: Splits tokens into named values, unmatched flag tokens and
//              positional tokens for one callable.
// Version: v0.1.0
// Created: 2026-09-06
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-06 v0.1.0: Initial implementation

package flags

import (
	"fmt"
	"regexp"
	"strings"

	zderror "github.com/msto63/zunder/foundation/core/error"
)

var (
	singleCharFlag   = regexp.MustCompile(`^-[a-zA-Z]$`)
	singleCharAssign = regexp.MustCompile(`^-[a-zA-Z]=`)
	shortFlagPrefix  = regexp.MustCompile(`^-[a-zA-Z]`)
)

// Separator isolates global option tokens from engine tokens
const Separator = "--"

// IsFlag reports whether token is a flag. Negative numbers are not flags.
func IsFlag(token string) bool {
	return IsSingleCharFlag(token) || IsMultiCharFlag(token)
}

// IsSingleCharFlag matches -a and -a=value
func IsSingleCharFlag(token string) bool {
	return singleCharFlag.MatchString(token) || singleCharAssign.MatchString(token)
}

// IsMultiCharFlag matches --alpha and -alpha
func IsMultiCharFlag(token string) bool {
	return strings.HasPrefix(token, "--") || shortFlagPrefix.MatchString(token)
}

// Classified is the result of classifying the tokens of one step
type Classified struct {
	// Named maps accepted names to their unparsed values
	Named map[string]string
	// RemainingFlags holds unmatched flags with the value they would have taken
	RemainingFlags []string
	// Positional holds non-flag tokens in order
	Positional []string
}

// Classify matches flag tokens against accepted names. When openEndedNamed
// is set every flag is accepted under its own name.
func Classify(tokens []string, accepted []string, openEndedNamed bool) (Classified, error) {
	result := Classified{Named: map[string]string{}}
	isAccepted := make(map[string]bool, len(accepted))
	for _, name := range accepted {
		isAccepted[name] = true
	}

	skip := false
	for i, token := range tokens {
		if skip {
			skip = false
			continue
		}
		if !IsFlag(token) {
			result.Positional = append(result.Positional, token)
			continue
		}

		key, value, hasValue := strings.Cut(strings.TrimLeft(token, "-"), "=")
		key = strings.ReplaceAll(key, "-", "_")
		boolSyntax := !hasValue && (i+1 == len(tokens) || IsFlag(tokens[i+1]))

		keyword := ""
		switch {
		case isAccepted[key],
			boolSyntax && strings.HasPrefix(key, "no") && isAccepted[key[2:]],
			openEndedNamed:
			keyword = key
		case len([]rune(key)) == 1:
			var matches []string
			for _, name := range accepted {
				if strings.HasPrefix(name, key) {
					matches = append(matches, name)
				}
			}
			if len(matches) > 1 {
				return Classified{}, zderror.Newf(
					"The argument '%s' is ambiguous as it could refer to any of the following arguments: %s",
					token, formatNames(matches)).
					WithCode(zderror.CodeAmbiguousFlag).
					WithOperation("flags.Classify").
					WithDetail("candidates", matches)
			}
			if len(matches) == 1 {
				keyword = matches[0]
			}
		}

		switch {
		case keyword == "":
		case hasValue:
		case boolSyntax:
			value = "True"
			if !isAccepted[keyword] && strings.HasPrefix(keyword, "no") {
				keyword = keyword[2:]
				value = "False"
			}
		default:
			value = tokens[i+1]
		}

		skip = !hasValue && !boolSyntax
		if keyword != "" {
			result.Named[keyword] = value
			continue
		}
		result.RemainingFlags = append(result.RemainingFlags, token)
		if skip {
			result.RemainingFlags = append(result.RemainingFlags, tokens[i+1])
		}
	}

	return result, nil
}

// formatNames renders names as ['a', 'b']
func formatNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("'%s'", n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// SeparateFlagArgs splits tokens on the last isolated "--". Tokens after it
// are global option tokens.
func SeparateFlagArgs(tokens []string) (engineTokens, globalTokens []string) {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i] == Separator {
			return tokens[:i:i], tokens[i+1:]
		}
	}
	return tokens, nil
}
