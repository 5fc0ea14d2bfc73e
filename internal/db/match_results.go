package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/smart-match/internal/types"
)

// StoredMatchResult is a persisted match result with its computation time.
type StoredMatchResult struct {
	types.MatchResult
	ComputedAt time.Time `json:"computed_at"`
}

// SaveMatchResult upserts a computed match result for a candidate/job pair.
// Recomputing a pair overwrites the previous result.
func (db *DB) SaveMatchResult(ctx context.Context, result *types.MatchResult) error {
	breakdownJSON, err := json.Marshal(result.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal breakdown: %w", err)
	}
	strengthsJSON, err := json.Marshal(result.Strengths)
	if err != nil {
		return fmt.Errorf("failed to marshal strengths: %w", err)
	}
	gapsJSON, err := json.Marshal(result.Gaps)
	if err != nil {
		return fmt.Errorf("failed to marshal gaps: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_results (candidate_id, job_id, overall_score, breakdown,
		                            strengths, gaps, recommendation)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (candidate_id, job_id) DO UPDATE SET
		   overall_score = $3, breakdown = $4, strengths = $5, gaps = $6,
		   recommendation = $7, computed_at = NOW()`,
		result.CandidateID, result.JobID, result.OverallScore, breakdownJSON,
		strengthsJSON, gapsJSON, string(result.Recommendation),
	)
	if err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}
	return nil
}

// SaveMatchResults persists a batch of match results.
func (db *DB) SaveMatchResults(ctx context.Context, results []types.MatchResult) error {
	for i := range results {
		if err := db.SaveMatchResult(ctx, &results[i]); err != nil {
			return err
		}
	}
	return nil
}

// ListMatchResultsForCandidate returns stored results for a candidate with
// at least minScore, sorted descending by overall score.
func (db *DB) ListMatchResultsForCandidate(ctx context.Context, candidateID string, minScore int) ([]StoredMatchResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT candidate_id, job_id, overall_score, breakdown, strengths, gaps,
		        recommendation, computed_at
		 FROM match_results
		 WHERE candidate_id = $1 AND overall_score >= $2
		 ORDER BY overall_score DESC, computed_at DESC`,
		candidateID, minScore,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	defer rows.Close()

	results := make([]StoredMatchResult, 0)
	for rows.Next() {
		var rec StoredMatchResult
		var breakdownJSON, strengthsJSON, gapsJSON []byte
		var recommendation string

		if err := rows.Scan(&rec.CandidateID, &rec.JobID, &rec.OverallScore,
			&breakdownJSON, &strengthsJSON, &gapsJSON, &recommendation,
			&rec.ComputedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}

		rec.Recommendation = types.Recommendation(recommendation)
		if breakdownJSON != nil {
			_ = json.Unmarshal(breakdownJSON, &rec.Breakdown)
		}
		if strengthsJSON != nil {
			_ = json.Unmarshal(strengthsJSON, &rec.Strengths)
		}
		if gapsJSON != nil {
			_ = json.Unmarshal(gapsJSON, &rec.Gaps)
		}
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match results: %w", err)
	}

	return results, nil
}

// DeleteMatchResultsForCandidate removes all stored results for a candidate.
func (db *DB) DeleteMatchResultsForCandidate(ctx context.Context, candidateID string) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM match_results WHERE candidate_id = $1`, candidateID)
	if err != nil {
		return fmt.Errorf("failed to delete match results: %w", err)
	}
	return nil
}
