// Package types defines the core entities shared across the role taxonomy
// engine: canonical Role Kits, Job Targets, and the transient match results
// produced by the resolver.
package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/role-taxonomy/internal/taxonomy"
)

// Default interview-type tags attached to generated kits.
const (
	InterviewTypeHR         = "hr"
	InterviewTypeTechnical  = "technical"
	InterviewTypeBehavioral = "behavioral"
)

// TagGeneric marks kits synthesized by the generator rather than curated by
// an administrator.
const TagGeneric = "generic"

// RoleKit is a canonical taxonomy entry representing one
// domain/seniority/specialization practice bundle. Display names are unique
// in practice, but uniqueness is maintained by the resolution logic rather
// than a storage constraint.
type RoleKit struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Seniority      taxonomy.Seniority `json:"seniority"` // three-level bucket
	Domain         string             `json:"domain"`
	Category       *string            `json:"category,omitempty"`
	Description    *string            `json:"description,omitempty"`
	FocusSkills    []string           `json:"focus_skills,omitempty"`
	InterviewTypes []string           `json:"interview_types"`
	Tags           []string           `json:"tags,omitempty"`
	IsActive       bool               `json:"is_active"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// RoleKitCreateInput carries the fields for the generator's single insert
// path. Identity and timestamps are assigned by the store.
type RoleKitCreateInput struct {
	Name           string
	Seniority      taxonomy.Seniority
	Domain         string
	Category       *string
	Description    *string
	FocusSkills    []string
	InterviewTypes []string
	Tags           []string
}
