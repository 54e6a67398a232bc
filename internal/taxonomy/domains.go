package taxonomy

// DomainGeneral is the fallback domain key when no functional domain scores
// confidently.
const DomainGeneral = "general"

// Domain describes one functional domain in the static taxonomy.
type Domain struct {
	// Key is the stable domain identifier stored on Role Kits.
	Key string
	// Label is the human-readable form used in generated kit names.
	Label string
	// Keywords are the phrases scored against titles and JD text.
	Keywords []string
	// SelfEvident are phrases that make a generated kit name unambiguous
	// without an explicit domain suffix.
	SelfEvident []string
}

// Domains is the ordered domain table. Order matters: the domain classifier
// breaks score ties by keeping the first-seen domain.
var Domains = []Domain{
	{
		Key:   "software",
		Label: "Software Engineering",
		Keywords: []string{
			"software engineer", "software developer", "backend", "frontend",
			"full stack", "fullstack", "full-stack", "devops", "sre",
			"site reliability", "platform engineer", "mobile developer",
			"ios developer", "android developer", "web developer",
			"programmer", "application developer", "embedded",
		},
		SelfEvident: []string{
			"engineer", "developer", "programmer", "architect", "devops", "sre",
		},
	},
	{
		Key:   "data",
		Label: "Data",
		Keywords: []string{
			"data scientist", "data science", "data analyst", "data engineer",
			"machine learning", "ml engineer", "ai engineer",
			"analytics engineer", "business intelligence", "statistician",
		},
		SelfEvident: []string{
			"data", "machine learning", "analytics", "scientist",
		},
	},
	{
		Key:   "product",
		Label: "Product",
		Keywords: []string{
			"product manager", "product owner", "product management",
			"program manager", "technical program", "product lead",
		},
		SelfEvident: []string{"product"},
	},
	{
		Key:   "design",
		Label: "Design",
		Keywords: []string{
			"designer", "ux", "ui", "user experience", "user interface",
			"graphic design", "product design", "visual design",
			"creative director",
		},
		SelfEvident: []string{"design", "ux", "ui", "creative"},
	},
	{
		Key:   "marketing",
		Label: "Marketing",
		Keywords: []string{
			"marketing", "seo", "content strategist", "growth", "brand",
			"social media", "demand generation", "communications",
		},
		SelfEvident: []string{"marketing", "seo", "brand", "growth"},
	},
	{
		Key:   "sales",
		Label: "Sales",
		Keywords: []string{
			"sales", "account executive", "account manager",
			"business development", "customer success",
			"sales development", "solutions engineer",
		},
		SelfEvident: []string{"sales", "account"},
	},
	{
		Key:   "finance",
		Label: "Finance",
		Keywords: []string{
			"finance", "financial analyst", "accountant", "accounting",
			"controller", "treasury", "auditor", "fp&a", "investment",
		},
		SelfEvident: []string{"finance", "financial", "accounting", "audit"},
	},
	{
		Key:   "operations",
		Label: "Operations",
		Keywords: []string{
			"operations", "supply chain", "logistics", "procurement",
			"business operations",
		},
		SelfEvident: []string{"operations", "supply chain", "logistics"},
	},
	{
		Key:   "people",
		Label: "People",
		Keywords: []string{
			"recruiter", "talent acquisition", "human resources",
			"hr business partner", "people operations", "compensation",
		},
		SelfEvident: []string{"recruit", "talent", "human resources", "people"},
	},
	{
		Key:   "consulting",
		Label: "Consulting",
		Keywords: []string{
			"consultant", "consulting", "advisory", "strategy consultant",
			"management consultant", "practice leader", "engagement manager",
		},
		SelfEvident: []string{"consult", "advisory", "strategy"},
	},
	{
		Key:   "research",
		Label: "Research",
		Keywords: []string{
			"research", "researcher", "market research",
			"competitive intelligence", "insights", "user research",
		},
		SelfEvident: []string{"research", "insights"},
	},
}

// domainIndex is built once from Domains for key lookups.
var domainIndex = func() map[string]*Domain {
	idx := make(map[string]*Domain, len(Domains))
	for i := range Domains {
		idx[Domains[i].Key] = &Domains[i]
	}
	return idx
}()

// DomainByKey returns the domain table entry for a key, or nil for unknown
// keys (including DomainGeneral, which has no table entry).
func DomainByKey(key string) *Domain {
	return domainIndex[key]
}

// DomainLabel returns the display label for a domain key. Unknown keys and
// DomainGeneral fall back to "General".
func DomainLabel(key string) string {
	if d := DomainByKey(key); d != nil {
		return d.Label
	}
	return "General"
}

// RoleFamilyDomains maps the coarse role-family hints accepted by the
// resolver to domain keys.
var RoleFamilyDomains = map[string]string{
	"software":    "software",
	"engineering": "software",
	"tech":        "software",
	"data":        "data",
	"analytics":   "data",
	"product":     "product",
	"design":      "design",
	"creative":    "design",
	"marketing":   "marketing",
	"sales":       "sales",
	"finance":     "finance",
	"operations":  "operations",
	"people":      "people",
	"hr":          "people",
	"consulting":  "consulting",
	"business":    "consulting",
	"research":    "research",
}
