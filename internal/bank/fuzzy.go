package bank

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// fuzzyCutoff is the minimum edit-distance similarity for a domain to
// count as a close match.
const fuzzyCutoff = 0.6

// closeMatches returns up to n candidates from pool whose similarity to
// target is at least cutoff, best first. Matching is case-insensitive;
// candidates keep their original casing.
func closeMatches(target string, pool []string, n int, cutoff float64) []string {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" || n <= 0 {
		return nil
	}

	type scored struct {
		candidate string
		score     float64
	}
	var matches []scored
	for _, c := range pool {
		s := editSimilarity(target, strings.ToLower(c))
		if s >= cutoff {
			matches = append(matches, scored{candidate: c, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > n {
		matches = matches[:n]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.candidate
	}
	return out
}

// editSimilarity maps Levenshtein distance onto [0,1], where 1 is an
// exact match.
func editSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	longer := len([]rune(a))
	if l := len([]rune(b)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 1.0
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longer)
}
