// Package textmatch provides fuzzy string similarity for vocabulary
// normalization. Any function with the Similarity signature can be
// substituted; the default implementation is normalized edit distance.
package textmatch

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Similarity scores how close two strings are, in [0,1].
// 1 means equal after folding, 0 means nothing in common.
type Similarity func(a, b string) float64

// Levenshtein returns 1 - dist/maxLen over case- and space-folded inputs.
func Levenshtein(a, b string) float64 {
	a = fold(a)
	b = fold(b)
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// BestMatch returns the candidate most similar to query and its score.
// Ties keep the earlier candidate, so registration order is deterministic.
func BestMatch(query string, candidates []string, sim Similarity) (string, float64) {
	if sim == nil {
		sim = Levenshtein
	}
	best := ""
	bestScore := -1.0
	for _, c := range candidates {
		if score := sim(query, c); score > bestScore {
			best = c
			bestScore = score
		}
	}
	if bestScore < 0 {
		return "", 0
	}
	return best, bestScore
}

func fold(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
