package taxonomy

// NormalizeTables groups the word lists consumed by the title normalizer.
// The engine uses DefaultNormalizeTables; tests can substitute smaller ones.
type NormalizeTables struct {
	// Companies are stripped wherever they appear as whole phrases.
	Companies []string
	// TeamContexts are team/context phrases stripped from titles, with or
	// without a preceding comma.
	TeamContexts []string
	// FunctionalAreas are recognized second-part phrases in two-part
	// comma titles ("Director, Product Management").
	FunctionalAreas map[string]bool
	// BareLevels are standalone level words that trigger the
	// "{level} Of {area}" reordering.
	BareLevels map[string]bool
	// Specializations are role words ("Architect") that trigger the
	// "{area} {role}" reordering.
	Specializations []string
	// Connectives stay lowercase during title-casing when they already
	// appear lowercase mid-title.
	Connectives map[string]bool
}

// DefaultNormalizeTables returns the production normalization tables.
func DefaultNormalizeTables() *NormalizeTables {
	return &NormalizeTables{
		Companies: []string{
			"google", "meta", "facebook", "amazon", "apple", "microsoft",
			"netflix", "stripe", "airbnb", "uber", "bain & company", "bain",
			"mckinsey & company", "mckinsey", "deloitte", "accenture",
		},
		TeamContexts: []string{
			"revenue operations", "platform team", "core team", "growth team",
			"infrastructure team", "internal tools", "new initiatives",
		},
		FunctionalAreas: map[string]bool{
			"engineering":            true,
			"product management":     true,
			"product":                true,
			"marketing":              true,
			"sales":                  true,
			"operations":             true,
			"finance":                true,
			"data science":           true,
			"data":                   true,
			"analytics":              true,
			"design":                 true,
			"customer success":       true,
			"human resources":        true,
			"information technology": true,
			"strategy":               true,
		},
		BareLevels: map[string]bool{
			"director":       true,
			"head":           true,
			"vp":             true,
			"vice president": true,
			"manager":        true,
			"lead":           true,
			"chief":          true,
		},
		Specializations: []string{
			"architect", "engineer", "consultant", "specialist", "scientist",
			"analyst", "designer", "developer", "strategist",
		},
		Connectives: map[string]bool{
			"of":  true,
			"and": true,
			"the": true,
			"for": true,
			"in":  true,
		},
	}
}
