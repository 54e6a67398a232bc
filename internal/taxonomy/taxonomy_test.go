package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeniorityBucket(t *testing.T) {
	tests := []struct {
		level    Seniority
		expected Seniority
	}{
		{SeniorityEntry, SeniorityEntry},
		{SeniorityMid, SeniorityMid},
		{SenioritySenior, SenioritySenior},
		{SeniorityDirector, SenioritySenior},
		{SeniorityVP, SenioritySenior},
		{SeniorityExecutive, SenioritySenior},
		{Seniority("bogus"), SeniorityMid},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.Bucket())
			assert.True(t, tt.level.Bucket().IsBucket())
		})
	}
}

func TestSeniorityLabel(t *testing.T) {
	assert.Equal(t, "Entry", SeniorityEntry.Label())
	assert.Equal(t, "Mid-Level", SeniorityMid.Label())
	assert.Equal(t, "Senior", SenioritySenior.Label())
	assert.Equal(t, "Director", SeniorityDirector.Label())
	assert.Equal(t, "VP", SeniorityVP.Label())
	assert.Equal(t, "Executive", SeniorityExecutive.Label())
}

func TestDomainLookups(t *testing.T) {
	assert.Equal(t, "Software Engineering", DomainLabel("software"))
	assert.Equal(t, "General", DomainLabel(DomainGeneral))
	assert.Equal(t, "General", DomainLabel("nope"))
	assert.Nil(t, DomainByKey(DomainGeneral))

	// Every domain key resolves back to its own table entry.
	for _, domain := range Domains {
		entry := DomainByKey(domain.Key)
		assert.NotNil(t, entry)
		assert.Equal(t, domain.Label, entry.Label)
	}
}

func TestRoleFamilyDomainsResolve(t *testing.T) {
	for hint, key := range RoleFamilyDomains {
		assert.NotNil(t, DomainByKey(key), "hint %q maps to unknown domain %q", hint, key)
	}
}
