package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/smart-match/internal/types"
)

// testServer returns a Server suitable for handlers that do not touch storage.
func testServer() *Server {
	return &Server{log: zap.NewNop()}
}

func TestHandleMatch_ScoresInlinePair(t *testing.T) {
	body := `{
		"candidate": {
			"id": "cand_001",
			"skills": ["React", "TypeScript"],
			"years_of_experience": 5,
			"location": "Remote",
			"preferred_work_type": "remote"
		},
		"job": {
			"id": "job_001",
			"required_skills": ["React", "TypeScript"],
			"min_experience": 3,
			"max_experience": 7,
			"is_remote": true
		}
	}`

	req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(body))
	rec := httptest.NewRecorder()

	testServer().handleMatch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "cand_001", result.CandidateID)
	assert.Equal(t, "job_001", result.JobID)
	assert.Equal(t, 100, result.Breakdown.SkillMatch)
	assert.GreaterOrEqual(t, result.OverallScore, 95)
	assert.Equal(t, types.RecommendationStrong, result.Recommendation)
}

func TestHandleMatch_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(`{"candidate": `))
	rec := httptest.NewRecorder()

	testServer().handleMatch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatch_InvalidCandidateRejected(t *testing.T) {
	// Negative experience fails boundary validation before scoring.
	body := `{
		"candidate": {"id": "cand_002", "years_of_experience": -3},
		"job": {"id": "job_002"}
	}`

	req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(body))
	rec := httptest.NewRecorder()

	testServer().handleMatch(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Contains(t, errBody["error"], "candidate")
}

func TestHandleMatch_InvalidJobRejected(t *testing.T) {
	body := `{
		"candidate": {"id": "cand_003"},
		"job": {"id": "job_003", "salary_range_min": 150000, "salary_range_max": 100000}
	}`

	req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(body))
	rec := httptest.NewRecorder()

	testServer().handleMatch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/candidates?limit=25&offset=-2&min_score=500", nil)

	assert.Equal(t, 25, parseQueryInt(req, "limit", 50, 100))
	// Negative values fall back to the default.
	assert.Equal(t, 0, parseQueryInt(req, "offset", 0, 0))
	// Values above the cap are clamped.
	assert.Equal(t, 100, parseQueryInt(req, "min_score", 0, 100))
	// Missing keys use the default.
	assert.Equal(t, 7, parseQueryInt(req, "absent", 7, 0))
}
