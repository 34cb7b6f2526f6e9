// File: suggest.go
// Title: Name Suggestions
// Description: Ranks the names a component offers against a name that did
//              not match, for "did you mean" hints on traversal errors.
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package engine

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	zderror "github.com/msto63/zunder/foundation/core/error"
)

const (
	maxSuggestions  = 3
	maxTypoDistance = 2
)

// Suggest returns up to three candidates close to name: names containing
// its letters in order, then names within two edits
func Suggest(name string, candidates []string) []string {
	if name == "" || len(candidates) == 0 {
		return nil
	}
	type scored struct {
		name     string
		distance int
	}
	seen := map[string]bool{}
	var out []scored

	ranks := fuzzy.RankFindFold(name, candidates)
	sort.Sort(ranks)
	for _, rank := range ranks {
		if !seen[rank.Target] {
			seen[rank.Target] = true
			out = append(out, scored{rank.Target, rank.Distance})
		}
	}

	lower := strings.ToLower(name)
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		if d := fuzzy.LevenshteinDistance(lower, strings.ToLower(c)); d <= maxTypoDistance {
			seen[c] = true
			out = append(out, scored{c, d})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].distance < out[j].distance })
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	names := make([]string, len(out))
	for i, s := range out {
		names[i] = s.name
	}
	return names
}

// withSuggestions attaches suggestions for name to err
func withSuggestions(err *zderror.Error, name string, candidates []string) *zderror.Error {
	if s := Suggest(name, candidates); len(s) > 0 {
		return err.WithDetail("suggestions", s)
	}
	return err
}
