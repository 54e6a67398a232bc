package types

import (
	"time"

	"github.com/google/uuid"
)

// JobTarget is a concrete job posting or application record. Its RoleKitID
// should reflect the current best resolution for the raw title; it can go
// stale as better-fitting kits are created later, which is what the batch
// reprocessor repairs.
type JobTarget struct {
	ID          uuid.UUID  `json:"id"`
	RoleTitle   string     `json:"role_title"`
	CompanyName *string    `json:"company_name,omitempty"`
	JDText      *string    `json:"jd_text,omitempty"`
	ParsedJD    *ParsedJD  `json:"parsed_jd,omitempty"`
	RoleKitID   *uuid.UUID `json:"role_kit_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ParsedJD is the structured form of a job description, when one has been
// parsed upstream.
type ParsedJD struct {
	RequiredSkills   []string `json:"required_skills,omitempty"`
	PreferredSkills  []string `json:"preferred_skills,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	YearsExperience  *string  `json:"years_experience,omitempty"`
}

// CombinedSkills returns required then preferred skills, deduplicated
// case-insensitively, capped at limit.
func (p *ParsedJD) CombinedSkills(limit int) []string {
	if p == nil {
		return nil
	}
	seen := make(map[string]bool)
	var skills []string
	for _, skill := range append(append([]string{}, p.RequiredSkills...), p.PreferredSkills...) {
		key := normalizeSkillKey(skill)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, skill)
		if limit > 0 && len(skills) >= limit {
			break
		}
	}
	return skills
}

// JobTargetCreateInput carries the fields for creating a job target, e.g.
// from the ingest command.
type JobTargetCreateInput struct {
	RoleTitle   string
	CompanyName *string
	JDText      *string
	ParsedJD    *ParsedJD
}
