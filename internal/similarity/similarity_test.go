package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitles(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"Identical", "Software Engineer", "Software Engineer", 1.0},
		{"Identical ignoring case", "software engineer", "Software Engineer", 1.0},
		{"Containment", "Senior Software Engineer", "Software Engineer", 0.8},
		{"Containment reversed", "Software Engineer", "Senior Software Engineer", 0.8},
		{"Shared word", "Software Engineer", "Software Developer", 1.0 / 3.0},
		{"Disjoint", "Software Engineer", "Account Executive", 0.0},
		{"Empty left", "", "Software Engineer", 0.0},
		{"Empty right", "Software Engineer", "", 0.0},
		{"Both empty", "", "", 0.0},
		{"Short words ignored", "VP of Sales", "Head of Sales", 1.0 / 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Titles(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestSkills(t *testing.T) {
	tests := []struct {
		name     string
		a        []string
		b        []string
		expected float64
	}{
		{"Identical", []string{"Go", "SQL"}, []string{"go", "sql"}, 1.0},
		{"Half overlap", []string{"Go", "SQL"}, []string{"Go", "Python", "SQL", "Kafka"}, 0.5},
		{"Disjoint", []string{"Go"}, []string{"Excel"}, 0.0},
		{"Empty left", nil, []string{"Go"}, 0.0},
		{"Empty right", []string{"Go"}, nil, 0.0},
		{"Both empty", nil, nil, 0.0},
		{"Whitespace-only entries dropped", []string{"  "}, []string{"Go"}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Skills(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}
