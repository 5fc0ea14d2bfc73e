package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/smart-match/internal/matching"
	"github.com/jonathan/smart-match/internal/types"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// MatchRequest represents an inline scoring request
type MatchRequest struct {
	Candidate types.Candidate `json:"candidate"`
	Job       types.Job       `json:"job"`
}

// handleMatch scores an inline candidate/job pair without touching storage
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		wrapped := &ErrMalformedBody{Cause: err}
		s.errorResponse(w, HTTPStatus(wrapped), wrapped.Error())
		return
	}

	// Validation happens at the boundary; the engine itself never errors.
	if err := req.Candidate.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := req.Job.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := matching.MatchCandidateToJob(&req.Candidate, &req.Job)
	s.jsonResponse(w, http.StatusOK, result)
}
