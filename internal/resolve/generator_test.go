package resolve

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/role-taxonomy/internal/taxonomy"
	"github.com/jonathan/role-taxonomy/internal/types"
)

func TestEnsureRoleKitReturnsHighConfidenceMatch(t *testing.T) {
	swe := makeKit("Software Engineer (Mid-Level)", "software", taxonomy.SeniorityMid)
	store := newFakeStore(swe)
	engine := NewEngine(store)

	result, err := engine.EnsureRoleKit(context.Background(), EnsureInput{RawTitle: "Software Engineer"})
	require.NoError(t, err)
	assert.Equal(t, swe.ID, result.RoleKitID)
	assert.Equal(t, types.MatchExact, result.MatchType)
	assert.Zero(t, store.insertCount, "a confident match must not insert")
}

func TestEnsureRoleKitReusesSimilarKit(t *testing.T) {
	// No exact or confident domain match exists, but the composite reuse
	// score is 0.4 x 40 + 30 (domain) + 15 (bucket) = 61 >= 60, so the
	// generator must reuse instead of inserting a near-duplicate.
	existing := makeKit("Data Insights Analyst Lead (Entry)", "data", taxonomy.SeniorityEntry)
	store := newFakeStore(existing)
	engine := NewEngine(store)

	result, err := engine.EnsureRoleKit(context.Background(), EnsureInput{RawTitle: "Junior Data Analyst"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, result.RoleKitID)
	assert.Equal(t, types.ConfidenceHigh, result.Confidence)
	assert.Equal(t, types.MatchExact, result.MatchType)
	assert.Zero(t, store.insertCount)
}

func TestEnsureRoleKitGeneratesOnEmptySet(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	result, err := engine.EnsureRoleKit(context.Background(), EnsureInput{
		RawTitle:    "Senior Growth Strategist at Stripe",
		CompanyName: "Stripe",
	})
	require.NoError(t, err)
	require.Equal(t, 1, store.insertCount)

	assert.Equal(t, types.ConfidenceHigh, result.Confidence)
	assert.Equal(t, types.MatchGenerated, result.MatchType)
	assert.Equal(t, "Senior Growth Strategist (Senior)", result.RoleKitName,
		"marketing is self-evident from 'growth', so no domain suffix")

	created := store.kits[0]
	assert.Equal(t, taxonomy.SenioritySenior, created.Seniority)
	assert.Equal(t, "marketing", created.Domain)
	assert.Contains(t, created.Tags, types.TagGeneric)
	assert.Contains(t, created.Tags, "senior")
	require.NotNil(t, created.Description)
	assert.Contains(t, *created.Description, "Stripe")
}

func TestEnsureRoleKitDomainSuffix(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	result, err := engine.EnsureRoleKit(context.Background(), EnsureInput{
		RawTitle: "Demand Generation Lead",
		JDText:   "Own our demand generation and brand marketing programs.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Demand Generation Lead - Marketing (Senior)", result.RoleKitName,
		"non-evident domain gets the suffix")
}

func TestEnsureRoleKitBucketsSeniority(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	_, err := engine.EnsureRoleKit(context.Background(), EnsureInput{RawTitle: "VP of Engineering"})
	require.NoError(t, err)
	require.Equal(t, 1, store.insertCount)

	created := store.kits[0]
	assert.Equal(t, taxonomy.SenioritySenior, created.Seniority, "vp coarsens to the senior bucket")
	assert.Contains(t, created.Tags, "vp", "tags keep the fine-grained level")
}

func TestEnsureRoleKitCollectsSkills(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	_, err := engine.EnsureRoleKit(context.Background(), EnsureInput{
		RawTitle: "Platforms Wrangler",
		Parsed: &types.ParsedJD{
			RequiredSkills:  []string{"Go", "Kubernetes"},
			PreferredSkills: []string{"kubernetes", "Terraform"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, store.insertCount)
	assert.Equal(t, []string{"Go", "Kubernetes", "Terraform"}, store.kits[0].FocusSkills,
		"skills are deduplicated case-insensitively")
}

func TestEnsureRoleKitInsertErrorPropagates(t *testing.T) {
	store := newFakeStore()
	store.insertErr = fmt.Errorf("unique violation")
	engine := NewEngine(store)

	_, err := engine.EnsureRoleKit(context.Background(), EnsureInput{RawTitle: "Llama Groomer"})
	assert.ErrorContains(t, err, "unique violation")
}

func TestEnsureRoleKitSerializesPerTitle(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	// Concurrent misses for titles that normalize identically must share
	// one insert.
	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			_, err := engine.EnsureRoleKit(context.Background(), EnsureInput{RawTitle: "Quant Researcher II"})
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 1, store.insertCount)
}
