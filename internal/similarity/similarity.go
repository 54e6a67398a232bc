// Package similarity provides the two similarity measures used by the
// role-kit resolver and generator. Both are pure and return values in [0,1].
package similarity

import "strings"

// minWordLength filters short connective words out of the Jaccard word sets.
const minWordLength = 3

// containmentScore is awarded when one title contains the other.
const containmentScore = 0.8

// Titles scores two job titles. Exact matches (case-insensitive) score 1.0,
// containment in either direction 0.8, everything else the Jaccard
// similarity of their significant word sets.
func Titles(a, b string) float64 {
	left := strings.ToLower(strings.TrimSpace(a))
	right := strings.ToLower(strings.TrimSpace(b))
	if left == "" || right == "" {
		return 0
	}
	if left == right {
		return 1.0
	}
	if strings.Contains(left, right) || strings.Contains(right, left) {
		return containmentScore
	}
	return jaccard(wordSet(left), wordSet(right))
}

// Skills scores two skill lists as the Jaccard similarity of their
// lower-cased sets. Either side being empty scores 0.
func Skills(a, b []string) float64 {
	return jaccard(skillSet(a), skillSet(b))
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(s) {
		if len(word) >= minWordLength {
			set[word] = true
		}
	}
	return set
}

func skillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for item := range a {
		if b[item] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
