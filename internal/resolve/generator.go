package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/role-taxonomy/internal/classify"
	"github.com/jonathan/role-taxonomy/internal/normalize"
	"github.com/jonathan/role-taxonomy/internal/similarity"
	"github.com/jonathan/role-taxonomy/internal/taxonomy"
	"github.com/jonathan/role-taxonomy/internal/types"
)

// Composite reuse-score weights, out of 100.
const (
	reuseTitleWeight     = 40.0
	reuseDomainWeight    = 30.0
	reuseSeniorityWeight = 15.0
	reuseSkillWeight     = 15.0

	// reuseThreshold is the composite score at or above which an existing
	// generic kit is reused instead of inserting a near-duplicate.
	reuseThreshold = 60.0
)

// maxGeneratorSkills caps the focus skills collected from a parsed JD.
const maxGeneratorSkills = 10

// EnsureInput carries one job's raw material into the find-or-create
// workflow. Only RawTitle is required.
type EnsureInput struct {
	RawTitle    string
	JDText      string
	Parsed      *types.ParsedJD
	CompanyName string
}

// EnsureRoleKit resolves the input title and, when no confident match
// exists, either reuses a sufficiently similar existing kit or synthesizes
// and persists a new one. It always produces a result as long as the store
// itself does not fail, including on an empty canonical set.
//
// Calls are serialized per normalized title: concurrent misses for titles
// that normalize identically share one execution and one insert.
func (e *Engine) EnsureRoleKit(ctx context.Context, input EnsureInput) (*types.MatchResult, error) {
	normalized := normalize.TitleWithTables(input.RawTitle, e.tables.Normalize)

	result, err, _ := e.ensureGroup.Do(normalized, func() (any, error) {
		return e.ensure(ctx, normalized, input)
	})
	if err != nil {
		return nil, err
	}
	return result.(*types.MatchResult), nil
}

func (e *Engine) ensure(ctx context.Context, normalized string, input EnsureInput) (*types.MatchResult, error) {
	kits, err := e.store.ListRoleKits(ctx)
	if err != nil {
		return nil, err
	}

	if match := e.resolveAgainst(kits, input.RawTitle, "", input.JDText); match != nil &&
		match.Confidence == types.ConfidenceHigh {
		return match, nil
	}

	domain := classify.DomainWithTable(input.RawTitle, input.JDText, e.tables.Domains)
	seniority := classify.Seniority(input.RawTitle, input.JDText)
	skills := input.Parsed.CombinedSkills(maxGeneratorSkills)

	if reuse := bestReusableKit(kits, normalized, domain, seniority, skills); reuse != nil {
		return &types.MatchResult{
			RoleKitID:   reuse.ID,
			RoleKitName: reuse.Name,
			Confidence:  types.ConfidenceHigh,
			MatchType:   types.MatchExact,
			Category:    reuse.Category,
		}, nil
	}

	created, err := e.store.InsertRoleKit(ctx, buildKitInput(normalized, domain, seniority, skills, input.CompanyName))
	if err != nil {
		return nil, fmt.Errorf("failed to insert role kit: %w", err)
	}
	return &types.MatchResult{
		RoleKitID:   created.ID,
		RoleKitName: created.Name,
		Confidence:  types.ConfidenceHigh,
		MatchType:   types.MatchGenerated,
		Category:    created.Category,
	}, nil
}

// bestReusableKit scores every existing kit against the target on a weighted
// composite of title similarity, domain match, seniority compatibility, and
// skill overlap. Returns nil when nothing reaches the reuse threshold.
func bestReusableKit(kits []types.RoleKit, normalized, domain string, seniority taxonomy.Seniority, skills []string) *types.RoleKit {
	var best *types.RoleKit
	bestScore := 0.0
	for i := range kits {
		kit := &kits[i]
		score := similarity.Titles(normalized, BaseTitle(kit.Name)) * reuseTitleWeight
		if kit.Domain == domain {
			score += reuseDomainWeight
		}
		if kit.Seniority == seniority.Bucket() {
			score += reuseSeniorityWeight
		}
		score += similarity.Skills(skills, kit.FocusSkills) * reuseSkillWeight

		if score > bestScore {
			best, bestScore = kit, score
		}
	}
	if bestScore >= reuseThreshold {
		return best
	}
	return nil
}

// buildKitInput synthesizes the insert payload for a new generic kit. The
// domain suffix is omitted when the normalized title already makes the
// domain self-evident, or when no domain was detected at all.
func buildKitInput(normalized, domain string, seniority taxonomy.Seniority, skills []string, companyName string) *types.RoleKitCreateInput {
	domainLabel := taxonomy.DomainLabel(domain)
	name := fmt.Sprintf("%s (%s)", normalized, seniority.Label())
	if domain != taxonomy.DomainGeneral && !domainEvident(normalized, domain) {
		name = fmt.Sprintf("%s - %s (%s)", normalized, domainLabel, seniority.Label())
	}

	description := fmt.Sprintf("Practice kit for %s roles in %s, targeting %s candidates.",
		normalized, domainLabel, strings.ToLower(seniority.Label()))
	if companyName != "" {
		description += fmt.Sprintf(" Seeded from a %s posting.", companyName)
	}

	category := domainLabel
	return &types.RoleKitCreateInput{
		Name:        name,
		Seniority:   seniority.Bucket(),
		Domain:      domain,
		Category:    &category,
		Description: &description,
		FocusSkills: skills,
		InterviewTypes: []string{
			types.InterviewTypeHR, types.InterviewTypeTechnical, types.InterviewTypeBehavioral,
		},
		Tags: []string{types.TagGeneric, domain, string(seniority)},
	}
}

func domainEvident(normalized, domain string) bool {
	entry := taxonomy.DomainByKey(domain)
	if entry == nil {
		return false
	}
	titleLower := strings.ToLower(normalized)
	for _, phrase := range entry.SelfEvident {
		if strings.Contains(titleLower, phrase) {
			return true
		}
	}
	return false
}
