package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/smart-match/internal/types"
)

// JobRecord is a stored job posting with persistence metadata.
type JobRecord struct {
	types.Job
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateJob stores a job record. An empty ID gets a generated UUID; the
// (possibly generated) ID is returned.
func (db *DB) CreateJob(ctx context.Context, job *types.Job) (string, error) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}

	requiredJSON, err := json.Marshal(job.RequiredSkills)
	if err != nil {
		return "", fmt.Errorf("failed to marshal required skills: %w", err)
	}
	preferredJSON, err := json.Marshal(job.PreferredSkills)
	if err != nil {
		return "", fmt.Errorf("failed to marshal preferred skills: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO jobs (id, title, required_skills, preferred_skills, min_experience,
		                   max_experience, location, is_remote, salary_range_min,
		                   salary_range_max, department)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (id) DO UPDATE SET
		   title = $2, required_skills = $3, preferred_skills = $4, min_experience = $5,
		   max_experience = $6, location = $7, is_remote = $8, salary_range_min = $9,
		   salary_range_max = $10, department = $11, updated_at = NOW()`,
		job.ID, job.Title, requiredJSON, preferredJSON, job.MinExperience,
		job.MaxExperience, job.Location, job.IsRemote, job.SalaryRangeMin,
		job.SalaryRangeMax, job.Department,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create job: %w", err)
	}
	return job.ID, nil
}

// GetJob retrieves a job by ID. Returns nil when not found.
func (db *DB) GetJob(ctx context.Context, id string) (*JobRecord, error) {
	var rec JobRecord
	var requiredJSON, preferredJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, title, required_skills, preferred_skills, min_experience,
		        max_experience, location, is_remote, salary_range_min,
		        salary_range_max, department, created_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Title, &requiredJSON, &preferredJSON, &rec.MinExperience,
		&rec.MaxExperience, &rec.Location, &rec.IsRemote, &rec.SalaryRangeMin,
		&rec.SalaryRangeMax, &rec.Department, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if requiredJSON != nil {
		_ = json.Unmarshal(requiredJSON, &rec.RequiredSkills)
	}
	if preferredJSON != nil {
		_ = json.Unmarshal(preferredJSON, &rec.PreferredSkills)
	}

	return &rec, nil
}

// ListJobs returns jobs ordered by creation time, newest first, along with
// the total row count.
func (db *DB) ListJobs(ctx context.Context, opts ListOptions) ([]JobRecord, int, error) {
	var total int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, title, required_skills, preferred_skills, min_experience,
		        max_experience, location, is_remote, salary_range_min,
		        salary_range_max, department, created_at, updated_at
		 FROM jobs
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]JobRecord, 0)
	for rows.Next() {
		var rec JobRecord
		var requiredJSON, preferredJSON []byte

		if err := rows.Scan(&rec.ID, &rec.Title, &requiredJSON, &preferredJSON,
			&rec.MinExperience, &rec.MaxExperience, &rec.Location, &rec.IsRemote,
			&rec.SalaryRangeMin, &rec.SalaryRangeMax, &rec.Department,
			&rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan job: %w", err)
		}

		if requiredJSON != nil {
			_ = json.Unmarshal(requiredJSON, &rec.RequiredSkills)
		}
		if preferredJSON != nil {
			_ = json.Unmarshal(preferredJSON, &rec.PreferredSkills)
		}
		jobs = append(jobs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return jobs, total, nil
}

// AllJobs returns every stored job as a plain engine record, in insertion
// order.
func (db *DB) AllJobs(ctx context.Context) ([]types.Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, required_skills, preferred_skills, min_experience,
		        max_experience, location, is_remote, salary_range_min,
		        salary_range_max, department
		 FROM jobs
		 ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]types.Job, 0)
	for rows.Next() {
		var job types.Job
		var requiredJSON, preferredJSON []byte

		if err := rows.Scan(&job.ID, &job.Title, &requiredJSON, &preferredJSON,
			&job.MinExperience, &job.MaxExperience, &job.Location, &job.IsRemote,
			&job.SalaryRangeMin, &job.SalaryRangeMax, &job.Department); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}

		if requiredJSON != nil {
			_ = json.Unmarshal(requiredJSON, &job.RequiredSkills)
		}
		if preferredJSON != nil {
			_ = json.Unmarshal(preferredJSON, &job.PreferredSkills)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return jobs, nil
}

// DeleteJob removes a job. Returns true if a row was deleted.
func (db *DB) DeleteJob(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
