package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/smart-match/internal/db"
	"github.com/jonathan/smart-match/internal/types"
)

// ListCandidatesResponse represents the response for listing candidates
type ListCandidatesResponse struct {
	Candidates []db.CandidateRecord `json:"candidates"`
	Count      int                  `json:"count"`
	Limit      int                  `json:"limit"`
	Offset     int                  `json:"offset"`
}

// handleCreateCandidate stores a candidate record
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var candidate types.Candidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		wrapped := &ErrMalformedBody{Cause: err}
		s.errorResponse(w, HTTPStatus(wrapped), wrapped.Error())
		return
	}

	// The ID may be omitted on create; generate one before validating.
	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	}
	if err := candidate.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.db.CreateCandidate(r.Context(), &candidate)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

// handleGetCandidate retrieves a candidate by ID
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

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

	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleListCandidates lists candidates with pagination
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	candidates, total, err := s.db.ListCandidates(r.Context(), db.ListOptions{Limit: limit, Offset: offset})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListCandidatesResponse{
		Candidates: candidates,
		Count:      total,
		Limit:      limit,
		Offset:     offset,
	})
}

// handleDeleteCandidate removes a candidate and its stored match results
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.db.DeleteMatchResultsForCandidate(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	deleted, err := s.db.DeleteCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		notFound := &ErrRecordNotFound{Record: "candidate", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
