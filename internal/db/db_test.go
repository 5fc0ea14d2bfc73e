package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/smart-match/internal/types"
)

func TestCandidateRecordEmbedsCandidate(t *testing.T) {
	rec := CandidateRecord{
		Candidate: types.Candidate{
			ID:     "cand-1",
			Skills: []string{"go"},
		},
		CreatedAt: time.Now(),
	}

	assert.Equal(t, "cand-1", rec.ID)
	assert.Equal(t, []string{"go"}, rec.Skills)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestJobRecordEmbedsJob(t *testing.T) {
	rec := JobRecord{
		Job: types.Job{
			ID:    "job-1",
			Title: "Backend Engineer",
		},
	}

	assert.Equal(t, "job-1", rec.ID)
	assert.Equal(t, "Backend Engineer", rec.Title)
}

func TestStoredMatchResultEmbedsMatchResult(t *testing.T) {
	rec := StoredMatchResult{
		MatchResult: types.MatchResult{
			CandidateID:    "cand-1",
			JobID:          "job-1",
			OverallScore:   87,
			Recommendation: types.RecommendationStrong,
		},
	}

	assert.Equal(t, 87, rec.OverallScore)
	assert.True(t, rec.ComputedAt.IsZero())
}
