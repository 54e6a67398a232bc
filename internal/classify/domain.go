package classify

import (
	"strings"

	"github.com/jonathan/role-taxonomy/internal/taxonomy"
)

const (
	// titleHitWeight and jdHitWeight weight keyword occurrences in the title
	// versus the JD text.
	titleHitWeight = 3
	jdHitWeight    = 1

	// minConfidentScore is the primary-pass threshold below which the
	// secondary heuristics run. A single JD-only hit is not enough.
	minConfidentScore = 2
)

// Domain classifies a title (and optional JD text) to a domain key from the
// default taxonomy, falling back to taxonomy.DomainGeneral.
func Domain(title, jdText string) string {
	return DomainWithTable(title, jdText, taxonomy.Domains)
}

// DomainWithTable scores every domain in the supplied table and returns the
// strictly best-scoring key. Ties keep the first-seen domain, so table order
// is part of the contract.
func DomainWithTable(title, jdText string, domains []taxonomy.Domain) string {
	titleLower := strings.ToLower(title)
	jdLower := strings.ToLower(jdText)

	best := taxonomy.DomainGeneral
	bestScore := 0
	for _, domain := range domains {
		score := 0
		for _, keyword := range domain.Keywords {
			if strings.Contains(titleLower, keyword) {
				score += titleHitWeight
			}
			if jdLower != "" && strings.Contains(jdLower, keyword) {
				score += jdHitWeight
			}
		}
		if score > bestScore {
			bestScore = score
			best = domain.Key
		}
	}

	if bestScore >= minConfidentScore {
		return best
	}
	if key, ok := secondaryDomain(titleLower, jdLower); ok {
		return key
	}
	return taxonomy.DomainGeneral
}

// secondaryRule is an upgrade heuristic for titles whose primary score was
// not confident. Rules only ever rescue a general-bound result; they never
// override a confident primary score.
type secondaryRule struct {
	titleHas    string
	titleHasNot string
	contextAny  []string
	// titleContext widens the context search from JD text alone to the
	// title as well; the analyst rules accept hints from either.
	titleContext bool
	domain       string
}

var secondaryDomainRules = []secondaryRule{
	{titleHas: "analyst", titleHasNot: "data",
		contextAny:   []string{"business", "stakeholder", "client"},
		titleContext: true, domain: "consulting"},
	{titleHas: "analyst", titleHasNot: "data",
		contextAny:   []string{"market", "competitive", "insights"},
		titleContext: true, domain: "research"},
	{titleHas: "manager",
		contextAny: []string{"consulting", "client", "engagement"},
		domain:     "consulting"},
	{titleHas: "director",
		contextAny: []string{"consulting", "practice", "partner"},
		domain:     "consulting"},
}

func secondaryDomain(titleLower, jdLower string) (string, bool) {
	for _, rule := range secondaryDomainRules {
		if !strings.Contains(titleLower, rule.titleHas) {
			continue
		}
		if rule.titleHasNot != "" && strings.Contains(titleLower, rule.titleHasNot) {
			continue
		}
		context := jdLower
		if rule.titleContext {
			context = titleLower + " " + jdLower
		}
		for _, hint := range rule.contextAny {
			if strings.Contains(context, hint) {
				return rule.domain, true
			}
		}
	}
	return "", false
}
