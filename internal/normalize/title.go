// Package normalize turns raw, free-text job titles into canonical display
// form. The pipeline is deterministic and total: it never fails, and falls
// back to the trimmed input when normalization would erase the whole string.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/role-taxonomy/internal/taxonomy"
)

var (
	reParenthetical = regexp.MustCompile(`\([^)]*\)`)
	reBracketed     = regexp.MustCompile(`\[[^\]]*\]`)
	reAtCompany     = regexp.MustCompile(`(?i)\s+at\s+.+$`)

	// Standalone level/rank qualifiers: I/II/III, 1-5, L1-L7, E3-E7,
	// "Level 1".."Level 5". Roman numerals are matched case-sensitively so a
	// lone lowercase "i" survives.
	reLevelToken = regexp.MustCompile(`\b(?:[Ll]evel\s+[1-5]|[Ll][1-7]|[Ee][3-7]|III|II|I|[1-5])\b`)
)

// Title normalizes a raw job title using the default tables.
func Title(raw string) string {
	return TitleWithTables(raw, taxonomy.DefaultNormalizeTables())
}

// TitleWithTables normalizes a raw job title using the supplied tables.
// Intermediate steps are allowed to erase the whole string; only the final
// empty result reverts to the trimmed raw input.
func TitleWithTables(raw string, tables *taxonomy.NormalizeTables) string {
	s := raw

	// 1. Parenthetical and bracketed asides.
	s = reParenthetical.ReplaceAllString(s, " ")
	s = reBracketed.ReplaceAllString(s, " ")

	// 2. "at <Company>" suffix.
	s = reAtCompany.ReplaceAllString(s, "")

	// 3. Known company names anywhere as whole phrases.
	s = stripPhrases(s, tables.Companies, false)

	// 4. Team/context phrases, with or without a preceding comma.
	s = stripPhrases(s, tables.TeamContexts, true)

	// 5. Comma resolution.
	s = resolveCommas(s, tables)

	// 6. Trailing " - " qualifiers.
	if i := strings.Index(s, " - "); i >= 0 {
		s = s[:i]
	}

	// 7. Standalone level/rank tokens.
	s = reLevelToken.ReplaceAllString(s, " ")

	// 8. Whitespace collapse and title casing.
	s = titleCase(s, tables.Connectives)

	if s == "" {
		return strings.TrimSpace(raw)
	}
	return s
}

// stripPhrases removes each phrase, case-insensitively, as a whole-word
// match. When withComma is set, a comma immediately preceding the phrase is
// removed with it.
func stripPhrases(s string, phrases []string, withComma bool) string {
	for _, phrase := range phrases {
		pattern := `(?i)\b` + regexp.QuoteMeta(phrase) + `\b`
		if withComma {
			pattern = `(?i),?\s*\b` + regexp.QuoteMeta(phrase) + `\b`
		}
		s = regexp.MustCompile(pattern).ReplaceAllString(s, " ")
	}
	return s
}

// resolveCommas applies the two-part title decision table when exactly one
// comma remains, and keeps only the first segment otherwise.
func resolveCommas(s string, tables *taxonomy.NormalizeTables) string {
	parts := strings.Split(s, ",")
	if len(parts) == 1 {
		return s
	}
	first := strings.TrimSpace(parts[0])
	if len(parts) > 2 {
		return first
	}

	second := strings.TrimSpace(parts[1])
	secondKey := strings.ToLower(strings.Join(strings.Fields(second), " "))
	if !tables.FunctionalAreas[secondKey] {
		// Non-functional second part is team context.
		return first
	}

	firstKey := strings.ToLower(strings.Join(strings.Fields(first), " "))
	if tables.BareLevels[firstKey] {
		return first + " Of " + second
	}
	if containsSpecialization(firstKey, tables.Specializations) {
		return second + " " + first
	}
	return first
}

func containsSpecialization(lowerTitle string, specializations []string) bool {
	for _, word := range strings.Fields(lowerTitle) {
		for _, spec := range specializations {
			if word == spec {
				return true
			}
		}
	}
	return false
}

// titleCase collapses whitespace and capitalizes every word. Connective words
// stay lowercase when they already appear lowercase mid-title, which keeps
// "Head of Product" stable while the comma reordering above can still emit a
// capitalized "Of". The first word is always capitalized.
func titleCase(s string, connectives map[string]bool) string {
	words := strings.Fields(s)
	for i, word := range words {
		if i > 0 && connectives[word] {
			continue
		}
		words[i] = capitalizeWord(word)
	}
	return strings.Join(words, " ")
}

func capitalizeWord(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	if word == strings.ToUpper(word) && strings.ContainsFunc(word, unicode.IsLetter) {
		// Short all-caps words are treated as acronyms (VP, SRE, SEO).
		if len(runes) <= 4 {
			return word
		}
		return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
