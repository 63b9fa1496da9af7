// Package suggest computes "did you mean" candidates for unknown
// project and command names.
package suggest

import (
	"sort"

	"github.com/agext/levenshtein"
)

// cutoff is the minimum normalized similarity (0-1) for a suggestion.
const cutoff = 0.6

// maxSuggestions caps how many candidates are returned.
const maxSuggestions = 3

// Similar returns up to three candidates whose normalized Levenshtein
// similarity to input is at least 0.6, ordered by descending similarity.
func Similar(input string, candidates []string) []string {
	type scored struct {
		name  string
		score float64
	}

	seen := make(map[string]bool, len(candidates))
	var matches []scored
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		if score := levenshtein.Similarity(input, c, nil); score >= cutoff {
			matches = append(matches, scored{name: c, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	return names
}
