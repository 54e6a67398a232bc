// Package classify maps job titles (plus optional job-description text) to
// seniority levels and functional domains. Both classifiers are pure and
// total: arbitrary input degrades to the defaults (mid seniority, general
// domain) rather than failing.
package classify

import (
	"fmt"
	"strings"

	"github.com/jonathan/role-taxonomy/internal/taxonomy"
)

// seniorityRule pairs a seniority level with its indicator phrases. Rules are
// evaluated in order against the lower-cased title; the first hit wins, so
// "Senior Vice President" resolves at the VP rule before the senior rule can
// fire.
type seniorityRule struct {
	level    taxonomy.Seniority
	keywords []string
	// unless suppresses the rule when present, so "Vice President" is not
	// swallowed by the executive rule's "president".
	unless []string
}

var titleSeniorityRules = []seniorityRule{
	{level: taxonomy.SeniorityExecutive, keywords: []string{
		"chief", "ceo", "cto", "cfo", "coo", "c-level", "president",
	}, unless: []string{"vice president"}},
	{level: taxonomy.SeniorityVP, keywords: []string{
		"vp", "vice president", "svp", "evp", "avp",
	}},
	{level: taxonomy.SeniorityDirector, keywords: []string{
		"director", "head of", "practice leader", "practice director",
	}},
	{level: taxonomy.SenioritySenior, keywords: []string{
		"senior", "sr.", "sr", "principal", "staff", "lead",
	}},
	{level: taxonomy.SeniorityEntry, keywords: []string{
		"junior", "jr.", "jr", "associate", "entry", "intern", "trainee",
		"graduate",
	}},
}

// jdEntryPhrases are explicit experience ranges that indicate an entry role.
var jdEntryPhrases = []string{
	"0-2 years", "0-3 years", "fresher", "new graduate", "entry level",
}

// jdSeniorPhrases covers "8+ years" through "15+ years".
var jdSeniorPhrases = func() []string {
	phrases := make([]string, 0, 8)
	for years := 8; years <= 15; years++ {
		phrases = append(phrases, fmt.Sprintf("%d+ years", years))
	}
	return phrases
}()

// Seniority classifies a title (and optional JD text) to one of the six
// seniority levels. Title indicators take precedence over JD experience
// ranges; mid is the default.
func Seniority(title, jdText string) taxonomy.Seniority {
	titleLower := strings.ToLower(title)
rules:
	for _, rule := range titleSeniorityRules {
		for _, exception := range rule.unless {
			if strings.Contains(titleLower, exception) {
				continue rules
			}
		}
		for _, keyword := range rule.keywords {
			if strings.Contains(titleLower, keyword) {
				return rule.level
			}
		}
	}

	jdLower := strings.ToLower(jdText)
	if jdLower != "" {
		for _, phrase := range jdEntryPhrases {
			if strings.Contains(jdLower, phrase) {
				return taxonomy.SeniorityEntry
			}
		}
		for _, phrase := range jdSeniorPhrases {
			if strings.Contains(jdLower, phrase) {
				return taxonomy.SenioritySenior
			}
		}
	}

	return taxonomy.SeniorityMid
}
