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

// CandidateRecord is a stored candidate with persistence metadata.
type CandidateRecord struct {
	types.Candidate
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListOptions controls pagination for list queries.
type ListOptions struct {
	Limit  int
	Offset int
}

// CreateCandidate stores a candidate record. An empty ID gets a generated
// UUID; the (possibly generated) ID is returned.
func (db *DB) CreateCandidate(ctx context.Context, candidate *types.Candidate) (string, error) {
	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	}

	skillsJSON, err := json.Marshal(candidate.Skills)
	if err != nil {
		return "", fmt.Errorf("failed to marshal skills: %w", err)
	}
	certsJSON, err := json.Marshal(candidate.Certifications)
	if err != nil {
		return "", fmt.Errorf("failed to marshal certifications: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO candidates (id, skills, years_of_experience, location, current_role,
		                         certifications, salary_expectation, preferred_work_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
		   skills = $2, years_of_experience = $3, location = $4, current_role = $5,
		   certifications = $6, salary_expectation = $7, preferred_work_type = $8,
		   updated_at = NOW()`,
		candidate.ID, skillsJSON, candidate.YearsOfExperience, candidate.Location,
		candidate.CurrentRole, certsJSON, candidate.SalaryExpectation,
		string(candidate.PreferredWorkType),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create candidate: %w", err)
	}
	return candidate.ID, nil
}

// GetCandidate retrieves a candidate by ID. Returns nil when not found.
func (db *DB) GetCandidate(ctx context.Context, id string) (*CandidateRecord, error) {
	var rec CandidateRecord
	var skillsJSON, certsJSON []byte
	var workType string

	err := db.pool.QueryRow(ctx,
		`SELECT id, skills, years_of_experience, location, current_role,
		        certifications, salary_expectation, preferred_work_type,
		        created_at, updated_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&rec.ID, &skillsJSON, &rec.YearsOfExperience, &rec.Location,
		&rec.CurrentRole, &certsJSON, &rec.SalaryExpectation, &workType,
		&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	rec.PreferredWorkType = types.WorkType(workType)
	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &rec.Skills)
	}
	if certsJSON != nil {
		_ = json.Unmarshal(certsJSON, &rec.Certifications)
	}

	return &rec, nil
}

// ListCandidates returns candidates ordered by creation time, newest first,
// along with the total row count.
func (db *DB) ListCandidates(ctx context.Context, opts ListOptions) ([]CandidateRecord, int, error) {
	var total int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, skills, years_of_experience, location, current_role,
		        certifications, salary_expectation, preferred_work_type,
		        created_at, updated_at
		 FROM candidates
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]CandidateRecord, 0)
	for rows.Next() {
		var rec CandidateRecord
		var skillsJSON, certsJSON []byte
		var workType string

		if err := rows.Scan(&rec.ID, &skillsJSON, &rec.YearsOfExperience, &rec.Location,
			&rec.CurrentRole, &certsJSON, &rec.SalaryExpectation, &workType,
			&rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan candidate: %w", err)
		}

		rec.PreferredWorkType = types.WorkType(workType)
		if skillsJSON != nil {
			_ = json.Unmarshal(skillsJSON, &rec.Skills)
		}
		if certsJSON != nil {
			_ = json.Unmarshal(certsJSON, &rec.Certifications)
		}
		candidates = append(candidates, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate candidates: %w", err)
	}

	return candidates, total, nil
}

// AllCandidates returns every stored candidate as a plain engine record,
// in insertion order. This is the record-source view the matching engine
// consumes.
func (db *DB) AllCandidates(ctx context.Context) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, skills, years_of_experience, location, current_role,
		        certifications, salary_expectation, preferred_work_type
		 FROM candidates
		 ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]types.Candidate, 0)
	for rows.Next() {
		var candidate types.Candidate
		var skillsJSON, certsJSON []byte
		var workType string

		if err := rows.Scan(&candidate.ID, &skillsJSON, &candidate.YearsOfExperience,
			&candidate.Location, &candidate.CurrentRole, &certsJSON,
			&candidate.SalaryExpectation, &workType); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}

		candidate.PreferredWorkType = types.WorkType(workType)
		if skillsJSON != nil {
			_ = json.Unmarshal(skillsJSON, &candidate.Skills)
		}
		if certsJSON != nil {
			_ = json.Unmarshal(certsJSON, &candidate.Certifications)
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}

	return candidates, nil
}

// DeleteCandidate removes a candidate. Returns true if a row was deleted.
func (db *DB) DeleteCandidate(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete candidate: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
