package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/role-taxonomy/internal/types"
)

const roleKitColumns = `id, name, seniority, domain, category, description,
	        focus_skills, interview_types, tags, is_active, created_at, updated_at`

// ListRoleKits retrieves all active role kits in insertion order.
func (db *DB) ListRoleKits(ctx context.Context) ([]types.RoleKit, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+roleKitColumns+`
		 FROM role_kits WHERE is_active ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list role kits: %w", err)
	}
	defer rows.Close()

	var kits []types.RoleKit
	for rows.Next() {
		kit, err := scanRoleKit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role kit: %w", err)
		}
		kits = append(kits, *kit)
	}
	return kits, rows.Err()
}

// GetRoleKitByID retrieves a role kit by its ID. Returns (nil, nil) when no
// kit exists.
func (db *DB) GetRoleKitByID(ctx context.Context, id uuid.UUID) (*types.RoleKit, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+roleKitColumns+` FROM role_kits WHERE id = $1`, id)
	kit, err := scanRoleKit(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role kit: %w", err)
	}
	return kit, nil
}

// InsertRoleKit stores a new role kit and returns it with its generated
// identity and timestamps.
func (db *DB) InsertRoleKit(ctx context.Context, input *types.RoleKitCreateInput) (*types.RoleKit, error) {
	skillsJSON, err := marshalNullable(input.FocusSkills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal focus skills: %w", err)
	}
	interviewJSON, err := json.Marshal(input.InterviewTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal interview types: %w", err)
	}
	tagsJSON, err := marshalNullable(input.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO role_kits (name, seniority, domain, category, description,
		         focus_skills, interview_types, tags, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
		 RETURNING `+roleKitColumns,
		input.Name, string(input.Seniority), input.Domain, input.Category,
		input.Description, skillsJSON, interviewJSON, tagsJSON,
	)
	kit, err := scanRoleKit(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert role kit: %w", err)
	}
	return kit, nil
}

// scanRoleKit reads one role-kit row, decoding the JSONB list columns.
func scanRoleKit(row pgx.Row) (*types.RoleKit, error) {
	var kit types.RoleKit
	var seniority string
	var skillsJSON, interviewJSON, tagsJSON []byte

	err := row.Scan(&kit.ID, &kit.Name, &seniority, &kit.Domain, &kit.Category,
		&kit.Description, &skillsJSON, &interviewJSON, &tagsJSON,
		&kit.IsActive, &kit.CreatedAt, &kit.UpdatedAt)
	if err != nil {
		return nil, err
	}

	kit.Seniority = taxonomySeniority(seniority)
	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &kit.FocusSkills)
	}
	if interviewJSON != nil {
		_ = json.Unmarshal(interviewJSON, &kit.InterviewTypes)
	}
	if tagsJSON != nil {
		_ = json.Unmarshal(tagsJSON, &kit.Tags)
	}
	return &kit, nil
}

// marshalNullable marshals a list to JSON, mapping empty lists to SQL NULL.
func marshalNullable(items []string) ([]byte, error) {
	if len(items) == 0 {
		return nil, nil
	}
	return json.Marshal(items)
}
