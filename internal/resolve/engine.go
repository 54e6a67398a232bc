// Package resolve implements the role-kit matching cascade, the find-or-create
// generator, and the batch reprocessor. All store access goes through the
// Store interface; classification and scoring stay pure so the cascade is
// reproducible for a given canonical set.
package resolve

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/role-taxonomy/internal/taxonomy"
	"github.com/jonathan/role-taxonomy/internal/types"
)

// Store is the record-store boundary consumed by the engine. Reads are
// insertion-ordered; InsertRoleKit returns the stored kit with its generated
// identity and timestamps.
type Store interface {
	ListRoleKits(ctx context.Context) ([]types.RoleKit, error)
	InsertRoleKit(ctx context.Context, input *types.RoleKitCreateInput) (*types.RoleKit, error)
	ListJobTargets(ctx context.Context) ([]types.JobTarget, error)
	UpdateJobTargetRoleKit(ctx context.Context, jobID, kitID uuid.UUID) error
}

// Tables bundles the static configuration consumed by the engine.
type Tables struct {
	Domains   []taxonomy.Domain
	Normalize *taxonomy.NormalizeTables
}

// DefaultTables returns the production configuration.
func DefaultTables() *Tables {
	return &Tables{
		Domains:   taxonomy.Domains,
		Normalize: taxonomy.DefaultNormalizeTables(),
	}
}

// Engine resolves raw job titles against the canonical role-kit set.
type Engine struct {
	store  Store
	tables *Tables

	// ensureGroup serializes generator calls per normalized title so two
	// concurrent misses for the same title cannot both insert a kit.
	ensureGroup singleflight.Group
}

// NewEngine creates an engine over the given store with default tables.
func NewEngine(store Store) *Engine {
	return NewEngineWithTables(store, DefaultTables())
}

// NewEngineWithTables creates an engine with substituted tables.
func NewEngineWithTables(store Store, tables *Tables) *Engine {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Engine{store: store, tables: tables}
}

// reKitNameSuffix matches the generated display-name suffix: an optional
// " - Domain" segment followed by a trailing "(Level)" parenthetical.
var reKitNameSuffix = regexp.MustCompile(`(?:\s+-\s+[^()]+)?\s*\([^)]*\)\s*$`)

// BaseTitle strips the generated domain/level suffix from a kit display
// name, leaving the bare role title used for comparisons.
func BaseTitle(kitName string) string {
	return strings.TrimSpace(reKitNameSuffix.ReplaceAllString(kitName, ""))
}
