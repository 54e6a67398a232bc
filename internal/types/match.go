package types

import (
	"strings"

	"github.com/google/uuid"
)

// Confidence grades how trustworthy a match is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// MatchType records which cascade stage produced a match.
type MatchType string

const (
	MatchExact     MatchType = "exact"
	MatchKeyword   MatchType = "keyword"
	MatchDomain    MatchType = "domain"
	MatchNone      MatchType = "none"
	MatchGenerated MatchType = "generated"
)

// MaxAlternatives caps the alternative suggestions on a match result.
const MaxAlternatives = 5

// MatchResult is the sole output contract of the resolver and generator. It
// is transient and never persisted.
type MatchResult struct {
	RoleKitID    uuid.UUID          `json:"role_kit_id"`
	RoleKitName  string             `json:"role_kit_name"`
	Confidence   Confidence         `json:"confidence"`
	MatchType    MatchType          `json:"match_type"`
	Category     *string            `json:"category,omitempty"`
	Alternatives []AlternativeMatch `json:"alternatives,omitempty"`
}

// AlternativeMatch is a lower-confidence candidate attached to a result.
type AlternativeMatch struct {
	RoleKitID   uuid.UUID  `json:"role_kit_id"`
	RoleKitName string     `json:"role_kit_name"`
	Confidence  Confidence `json:"confidence"`
}

// Reprocess outcome values for per-job detail entries.
const (
	OutcomeUpdated   = "updated"
	OutcomeUnchanged = "unchanged"
	OutcomeError     = "error"
)

// ReprocessReport aggregates a full batch re-resolution pass.
// Updated + unchanged + errors always equals Processed.
type ReprocessReport struct {
	Processed int               `json:"processed"`
	Updated   int               `json:"updated"`
	Errors    int               `json:"errors"`
	Details   []ReprocessDetail `json:"details"`
}

// ReprocessDetail records the outcome for a single job target.
type ReprocessDetail struct {
	JobID     uuid.UUID  `json:"job_id"`
	RoleTitle string     `json:"role_title"`
	Outcome   string     `json:"outcome"`
	RoleKitID *uuid.UUID `json:"role_kit_id,omitempty"`
	Error     string     `json:"error,omitempty"`
}

func normalizeSkillKey(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
