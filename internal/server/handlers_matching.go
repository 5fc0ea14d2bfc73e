package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/smart-match/internal/db"
	"github.com/jonathan/smart-match/internal/matching"
	"github.com/jonathan/smart-match/internal/types"
)

// CandidateMatchesResponse represents scored matches for one candidate
type CandidateMatchesResponse struct {
	CandidateID string              `json:"candidate_id"`
	Matches     []types.MatchResult `json:"matches"`
}

// StoredCandidateMatchesResponse represents persisted matches for one
// candidate, as written by a previous batch match run
type StoredCandidateMatchesResponse struct {
	CandidateID string                 `json:"candidate_id"`
	Matches     []db.StoredMatchResult `json:"matches"`
}

// JobCandidatesResponse represents scored candidates for one job
type JobCandidatesResponse struct {
	JobID   string              `json:"job_id"`
	Matches []types.MatchResult `json:"matches"`
}

// BatchMatchResponse represents qualified matches for every candidate
type BatchMatchResponse struct {
	Matches map[string][]types.MatchResult `json:"matches"`
}

// handleCandidateMatches scores a stored candidate against every stored job.
// An optional limit truncates to the top entries; an optional min_score
// filters low results. With stored=true the results persisted by the last
// batch match run are served instead of recomputing.
func (s *Server) handleCandidateMatches(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	limit := parseQueryInt(r, "limit", 0, 1000)
	minScore := parseQueryInt(r, "min_score", 0, 100)

	candidate, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		notFound := &ErrRecordNotFound{Record: "candidate", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	if r.URL.Query().Get("stored") == "true" {
		stored, err := s.db.ListMatchResultsForCandidate(r.Context(), id, minScore)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if limit > 0 && len(stored) > limit {
			stored = stored[:limit]
		}
		s.jsonResponse(w, http.StatusOK, StoredCandidateMatchesResponse{
			CandidateID: id,
			Matches:     stored,
		})
		return
	}

	jobs, err := s.db.AllJobs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	var results []types.MatchResult
	if limit > 0 {
		results = matching.TopMatches(&candidate.Candidate, jobs, limit)
	} else {
		results = matching.MatchCandidateToJobs(&candidate.Candidate, jobs)
	}
	if minScore > 0 {
		filtered := make([]types.MatchResult, 0, len(results))
		for _, result := range results {
			if result.OverallScore >= minScore {
				filtered = append(filtered, result)
			}
		}
		results = filtered
	}

	s.jsonResponse(w, http.StatusOK, CandidateMatchesResponse{
		CandidateID: id,
		Matches:     results,
	})
}

// handleJobCandidates scores every stored candidate against one job
func (s *Server) handleJobCandidates(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		notFound := &ErrRecordNotFound{Record: "job", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	candidates, err := s.db.AllCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	results := matching.MatchJobToCandidates(&job.Job, candidates)

	s.jsonResponse(w, http.StatusOK, JobCandidatesResponse{
		JobID:   id,
		Matches: results,
	})
}

// handleBatchMatch scores every stored candidate against every stored job,
// persists the qualifying results, and returns them grouped by candidate
func (s *Server) handleBatchMatch(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.db.AllCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	jobs, err := s.db.AllJobs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	matches := matching.BatchMatch(candidates, jobs)

	saved := 0
	for _, results := range matches {
		if err := s.db.SaveMatchResults(r.Context(), results); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		saved += len(results)
	}

	s.log.Info("batch match completed",
		zap.Int("candidates", len(candidates)),
		zap.Int("jobs", len(jobs)),
		zap.Int("qualified_results", saved))

	s.jsonResponse(w, http.StatusOK, BatchMatchResponse{Matches: matches})
}
