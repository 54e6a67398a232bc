package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/role-taxonomy/internal/taxonomy"
	"github.com/jonathan/role-taxonomy/internal/types"
)

const jobTargetColumns = `id, role_title, company_name, jd_text, parsed_jd,
	        role_kit_id, created_at, updated_at`

// ListJobTargets retrieves all job targets in insertion order.
func (db *DB) ListJobTargets(ctx context.Context) ([]types.JobTarget, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobTargetColumns+` FROM job_targets ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job targets: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobTarget
	for rows.Next() {
		job, err := scanJobTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job target: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// GetJobTargetByID retrieves a job target by its ID. Returns (nil, nil) when
// no job exists.
func (db *DB) GetJobTargetByID(ctx context.Context, id uuid.UUID) (*types.JobTarget, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobTargetColumns+` FROM job_targets WHERE id = $1`, id)
	job, err := scanJobTarget(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job target: %w", err)
	}
	return job, nil
}

// CreateJobTarget stores a new job target and returns it with its generated
// identity and timestamps.
func (db *DB) CreateJobTarget(ctx context.Context, input *types.JobTargetCreateInput) (*types.JobTarget, error) {
	var parsedJSON []byte
	if input.ParsedJD != nil {
		var err error
		parsedJSON, err = json.Marshal(input.ParsedJD)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal parsed JD: %w", err)
		}
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO job_targets (role_title, company_name, jd_text, parsed_jd)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+jobTargetColumns,
		input.RoleTitle, input.CompanyName, input.JDText, parsedJSON,
	)
	job, err := scanJobTarget(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job target: %w", err)
	}
	return job, nil
}

// UpdateJobTargetRoleKit rewrites a job target's role-kit reference and
// bumps its update timestamp.
func (db *DB) UpdateJobTargetRoleKit(ctx context.Context, jobID, kitID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE job_targets SET role_kit_id = $1, updated_at = NOW() WHERE id = $2`,
		kitID, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job target role kit: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job target not found: %s", jobID)
	}
	return nil
}

func scanJobTarget(row pgx.Row) (*types.JobTarget, error) {
	var job types.JobTarget
	var parsedJSON []byte

	err := row.Scan(&job.ID, &job.RoleTitle, &job.CompanyName, &job.JDText,
		&parsedJSON, &job.RoleKitID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if parsedJSON != nil {
		_ = json.Unmarshal(parsedJSON, &job.ParsedJD)
	}
	return &job, nil
}

// taxonomySeniority maps a stored seniority string back to the typed bucket,
// defaulting anything unexpected to mid.
func taxonomySeniority(value string) taxonomy.Seniority {
	s := taxonomy.Seniority(value)
	if !s.IsBucket() {
		return taxonomy.SeniorityMid
	}
	return s
}
