package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/role-taxonomy/internal/taxonomy"
)

func TestSeniorityFromTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected taxonomy.Seniority
	}{
		{"Senior prefix", "Senior Data Scientist", taxonomy.SenioritySenior},
		{"Sr abbreviation", "Sr. Software Engineer", taxonomy.SenioritySenior},
		{"Staff level", "Staff Engineer", taxonomy.SenioritySenior},
		{"Principal level", "Principal Architect", taxonomy.SenioritySenior},
		{"Lead level", "Tech Lead", taxonomy.SenioritySenior},
		{"Director", "Director of Engineering", taxonomy.SeniorityDirector},
		{"Head of", "Head of Product", taxonomy.SeniorityDirector},
		{"Practice director", "Practice Director", taxonomy.SeniorityDirector},
		{"VP", "VP of Engineering", taxonomy.SeniorityVP},
		{"Vice President not executive", "Vice President, Marketing", taxonomy.SeniorityVP},
		{"Senior Vice President", "Senior Vice President", taxonomy.SeniorityVP},
		{"SVP", "SVP Sales", taxonomy.SeniorityVP},
		{"Chief", "Chief Technology Officer", taxonomy.SeniorityExecutive},
		{"CEO", "CEO", taxonomy.SeniorityExecutive},
		{"President", "President", taxonomy.SeniorityExecutive},
		{"Junior", "Junior Developer", taxonomy.SeniorityEntry},
		{"Associate", "Associate Consultant", taxonomy.SeniorityEntry},
		{"Intern", "Software Engineering Intern", taxonomy.SeniorityEntry},
		{"Graduate", "Graduate Analyst", taxonomy.SeniorityEntry},
		{"Plain title defaults to mid", "Software Engineer", taxonomy.SeniorityMid},
		{"Empty title defaults to mid", "", taxonomy.SeniorityMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Seniority(tt.title, ""))
		})
	}
}

func TestSeniorityFromJD(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		jd       string
		expected taxonomy.Seniority
	}{
		{"Entry range", "Software Engineer", "We want someone with 0-2 years of experience.", taxonomy.SeniorityEntry},
		{"New graduate", "Software Engineer", "Open to new graduate applicants.", taxonomy.SeniorityEntry},
		{"Senior range", "Software Engineer", "Requires 10+ years building distributed systems.", taxonomy.SenioritySenior},
		{"Upper senior range", "Software Engineer", "15+ years of leadership.", taxonomy.SenioritySenior},
		{"Mid range stays mid", "Software Engineer", "4+ years of experience.", taxonomy.SeniorityMid},
		{"Title beats JD", "Junior Developer", "Requires 10+ years of experience.", taxonomy.SeniorityEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Seniority(tt.title, tt.jd))
		})
	}
}
