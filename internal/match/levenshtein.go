package match

import (
	"strings"
)

// Levenshtein returns the edit distance between a and b, counted in runes.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// Two rows of the edit matrix, sized by the shorter string.
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Nearest returns the candidate closest to name within maxDistance edits.
// Comparison ignores case; ties go to the earlier candidate. An exact match
// is not a near miss and is skipped.
func Nearest(name string, candidates []string, maxDistance int) (string, bool) {
	best, bestDist := "", maxDistance+1
	lower := strings.ToLower(name)

	for _, c := range candidates {
		if c == name {
			continue
		}

		if d := Levenshtein(lower, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}
