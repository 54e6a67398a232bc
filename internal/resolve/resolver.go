package resolve

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/role-taxonomy/internal/classify"
	"github.com/jonathan/role-taxonomy/internal/normalize"
	"github.com/jonathan/role-taxonomy/internal/similarity"
	"github.com/jonathan/role-taxonomy/internal/taxonomy"
	"github.com/jonathan/role-taxonomy/internal/types"
)

// Similarity thresholds for the domain-scored pass.
const (
	highSimilarity = 0.5
	lowSimilarity  = 0.3
)

// maxSameDomainAlternatives caps the alternatives attached by the exact and
// domain passes.
const maxSameDomainAlternatives = 3

// Resolve maps a raw title to the best-matching role kit. The role-family
// hint and JD text are optional and may be empty. Resolve is read-only; it
// returns nil only when the canonical set is empty.
func (e *Engine) Resolve(ctx context.Context, rawTitle, roleFamilyHint, jdText string) (*types.MatchResult, error) {
	kits, err := e.store.ListRoleKits(ctx)
	if err != nil {
		return nil, err
	}
	return e.resolveAgainst(kits, rawTitle, roleFamilyHint, jdText), nil
}

// resolveAgainst runs the four-stage cascade against an already-loaded
// canonical set, short-circuiting on the first stage that produces a match.
func (e *Engine) resolveAgainst(kits []types.RoleKit, rawTitle, roleFamilyHint, jdText string) *types.MatchResult {
	if len(kits) == 0 {
		return nil
	}

	if match := e.exactPass(kits, rawTitle); match != nil {
		return match
	}
	if match := e.domainPass(kits, rawTitle, jdText); match != nil {
		return match
	}
	if match := e.roleFamilyPass(kits, roleFamilyHint); match != nil {
		return match
	}
	return e.defaultPass(kits)
}

// exactPass compares every kit's base title against both the normalized and
// the lower/trimmed form of the input, by equality or containment in either
// direction. The first hit wins regardless of what the domain and seniority
// heuristics would compute.
func (e *Engine) exactPass(kits []types.RoleKit, rawTitle string) *types.MatchResult {
	normalized := strings.ToLower(normalize.TitleWithTables(rawTitle, e.tables.Normalize))
	simple := strings.ToLower(strings.TrimSpace(rawTitle))

	for i := range kits {
		base := strings.ToLower(BaseTitle(kits[i].Name))
		if base == "" {
			continue
		}
		if titlesOverlap(base, normalized) || titlesOverlap(base, simple) {
			return &types.MatchResult{
				RoleKitID:   kits[i].ID,
				RoleKitName: kits[i].Name,
				Confidence:  types.ConfidenceHigh,
				MatchType:   types.MatchExact,
				Category:    kits[i].Category,
				Alternatives: sameDomainAlternatives(kits, kits[i].ID, kits[i].Domain,
					maxSameDomainAlternatives, types.ConfidenceMedium),
			}
		}
	}
	return nil
}

func titlesOverlap(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// domainPass classifies the input's domain and picks the most similar kit in
// that domain, with a seniority-based override when nothing is textually
// close. Confidence is graded from the best raw-title similarity.
func (e *Engine) domainPass(kits []types.RoleKit, rawTitle, jdText string) *types.MatchResult {
	domain := classify.DomainWithTable(rawTitle, jdText, e.tables.Domains)
	if domain == taxonomy.DomainGeneral {
		return nil
	}

	var domainKits []types.RoleKit
	for _, kit := range kits {
		if kit.Domain == domain {
			domainKits = append(domainKits, kit)
		}
	}
	if len(domainKits) == 0 {
		return nil
	}

	best := domainKits[0]
	bestSim := similarity.Titles(rawTitle, BaseTitle(best.Name))
	for _, kit := range domainKits[1:] {
		if sim := similarity.Titles(rawTitle, BaseTitle(kit.Name)); sim > bestSim {
			best, bestSim = kit, sim
		}
	}

	if bestSim < lowSimilarity {
		if override := seniorityOverride(domainKits, classify.Seniority(rawTitle, jdText)); override != nil {
			best = *override
		}
	}

	confidence := types.ConfidenceLow
	switch {
	case bestSim >= highSimilarity:
		confidence = types.ConfidenceHigh
	case bestSim >= lowSimilarity:
		confidence = types.ConfidenceMedium
	}

	return &types.MatchResult{
		RoleKitID:   best.ID,
		RoleKitName: best.Name,
		Confidence:  confidence,
		MatchType:   types.MatchDomain,
		Category:    best.Category,
		Alternatives: sameDomainAlternatives(kits, best.ID, domain,
			maxSameDomainAlternatives, types.ConfidenceMedium),
	}
}

// seniorityOverride prefers a kit whose stored bucket matches the target
// seniority, falling back to mid and then entry.
func seniorityOverride(domainKits []types.RoleKit, level taxonomy.Seniority) *types.RoleKit {
	preference := []taxonomy.Seniority{level.Bucket(), taxonomy.SeniorityMid, taxonomy.SeniorityEntry}
	for _, want := range preference {
		for i := range domainKits {
			if domainKits[i].Seniority == want {
				return &domainKits[i]
			}
		}
	}
	return nil
}

// roleFamilyPass is the low-confidence fallback via the caller-supplied role
// family hint.
func (e *Engine) roleFamilyPass(kits []types.RoleKit, roleFamilyHint string) *types.MatchResult {
	hint := strings.ToLower(strings.TrimSpace(roleFamilyHint))
	if hint == "" {
		return nil
	}
	domain, ok := taxonomy.RoleFamilyDomains[hint]
	if !ok {
		return nil
	}

	var pick *types.RoleKit
	for i := range kits {
		if kits[i].Domain != domain {
			continue
		}
		if pick == nil {
			pick = &kits[i]
		}
		name := strings.ToLower(kits[i].Name)
		if strings.Contains(name, "entry") || strings.Contains(name, "associate") {
			pick = &kits[i]
			break
		}
	}
	if pick == nil {
		return nil
	}
	return &types.MatchResult{
		RoleKitID:   pick.ID,
		RoleKitName: pick.Name,
		Confidence:  types.ConfidenceLow,
		MatchType:   types.MatchDomain,
		Category:    pick.Category,
	}
}

// defaultPass picks an entry-level software kit when one exists, otherwise
// the first kit in the canonical set.
func (e *Engine) defaultPass(kits []types.RoleKit) *types.MatchResult {
	pick := kits[0]
	for _, kit := range kits {
		if kit.Domain == "software" && strings.Contains(strings.ToLower(kit.Name), "entry") {
			pick = kit
			break
		}
	}

	var alternatives []types.AlternativeMatch
	for _, kit := range kits {
		if kit.ID == pick.ID {
			continue
		}
		alternatives = append(alternatives, types.AlternativeMatch{
			RoleKitID:   kit.ID,
			RoleKitName: kit.Name,
			Confidence:  types.ConfidenceLow,
		})
		if len(alternatives) == types.MaxAlternatives {
			break
		}
	}

	return &types.MatchResult{
		RoleKitID:    pick.ID,
		RoleKitName:  pick.Name,
		Confidence:   types.ConfidenceLow,
		MatchType:    types.MatchNone,
		Category:     pick.Category,
		Alternatives: alternatives,
	}
}

func sameDomainAlternatives(kits []types.RoleKit, exclude uuid.UUID, domain string, limit int, confidence types.Confidence) []types.AlternativeMatch {
	var alternatives []types.AlternativeMatch
	for _, kit := range kits {
		if kit.ID == exclude || kit.Domain != domain {
			continue
		}
		alternatives = append(alternatives, types.AlternativeMatch{
			RoleKitID:   kit.ID,
			RoleKitName: kit.Name,
			Confidence:  confidence,
		})
		if len(alternatives) == limit {
			break
		}
	}
	return alternatives
}
