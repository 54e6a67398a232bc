package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/role-taxonomy/internal/taxonomy"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"Company, team context, and parenthetical stripped",
			"Practice Director, Market and Competitive Insights (Vector) at Bain & Company",
			"Practice Director",
		},
		{
			"Bare level before functional area reorders",
			"Director, Product Management",
			"Director Of Product Management",
		},
		{
			"Level token and team context stripped",
			"Software Engineer II, Platform",
			"Software Engineer",
		},
		{"Head with functional area", "Head, Engineering", "Head Of Engineering"},
		{"Specialization reorders after area", "Architect, Data", "Data Architect"},
		{"Plain title untouched", "Software Engineer", "Software Engineer"},
		{"Lowercase input title-cased", "software engineer", "Software Engineer"},
		{"Connective stays lowercase", "Head of Product", "Head of Product"},
		{"At-company suffix stripped", "Senior Data Scientist at Stripe", "Senior Data Scientist"},
		{"Company name stripped mid-title", "Google Software Engineer", "Software Engineer"},
		{"L-level token stripped", "Software Engineer L4", "Software Engineer"},
		{"E-level token stripped", "Product Manager E5", "Product Manager"},
		{"Level word stripped", "Engineer Level 3", "Engineer"},
		{"Roman numeral stripped", "Data Analyst III", "Data Analyst"},
		{"Dash qualifier stripped", "Software Engineer - Payments", "Software Engineer"},
		{"Bracketed aside stripped", "Backend Developer [Remote]", "Backend Developer"},
		{"Team context without comma", "Engineer Platform Team", "Engineer"},
		{"Three comma parts keep first", "Engineer, Payments, Platform", "Engineer"},
		{"Short acronym preserved", "SRE", "SRE"},
		{"VP acronym preserved mid-title", "VP Engineering", "VP Engineering"},
		{"Long all-caps word normalized", "SOFTWARE ENGINEER", "Software Engineer"},
		{"Whitespace collapsed", "  Senior   Engineer  ", "Senior Engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Title(tt.input))
		})
	}
}

func TestTitleIdempotent(t *testing.T) {
	inputs := []string{
		"Practice Director, Market and Competitive Insights (Vector) at Bain & Company",
		"Director, Product Management",
		"Software Engineer II, Platform",
		"Head of Product",
		"VP Engineering",
		"Architect, Data",
		"google", // falls back to the raw input
		"",
	}

	for _, input := range inputs {
		once := Title(input)
		assert.Equal(t, once, Title(once), "normalizing %q twice should be a fixed point", input)
	}
}

func TestTitleFallback(t *testing.T) {
	// Stripping everything reverts to the trimmed raw input.
	assert.Equal(t, "Google", Title("Google"))
	assert.Equal(t, "(Contract)", Title(" (Contract) "))
	assert.Equal(t, "", Title("   "))
}

func TestTitleWithTablesSubstitution(t *testing.T) {
	tables := &taxonomy.NormalizeTables{
		Companies:       []string{"initech"},
		FunctionalAreas: map[string]bool{"widgets": true},
		BareLevels:      map[string]bool{"director": true},
		Connectives:     map[string]bool{"of": true},
	}

	assert.Equal(t, "Engineer", TitleWithTables("Initech Engineer", tables))
	assert.Equal(t, "Director Of Widgets", TitleWithTables("Director, Widgets", tables))
	// "google" is not a company in the substituted tables
	assert.Equal(t, "Google Engineer", TitleWithTables("google engineer", tables))
}
