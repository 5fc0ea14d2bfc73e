package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/smart-match/internal/db"
	"github.com/jonathan/smart-match/internal/types"
)

// ListJobsResponse represents the response for listing jobs
type ListJobsResponse struct {
	Jobs   []db.JobRecord `json:"jobs"`
	Count  int            `json:"count"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// handleCreateJob stores a job record
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var job types.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		wrapped := &ErrMalformedBody{Cause: err}
		s.errorResponse(w, HTTPStatus(wrapped), wrapped.Error())
		return
	}

	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if err := job.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.db.CreateJob(r.Context(), &job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

// handleGetJob retrieves a job by ID
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
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

	s.jsonResponse(w, http.StatusOK, job)
}

// handleListJobs lists jobs with pagination
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	jobs, total, err := s.db.ListJobs(r.Context(), db.ListOptions{Limit: limit, Offset: offset})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListJobsResponse{
		Jobs:   jobs,
		Count:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// handleDeleteJob removes a job
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	deleted, err := s.db.DeleteJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		notFound := &ErrRecordNotFound{Record: "job", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
