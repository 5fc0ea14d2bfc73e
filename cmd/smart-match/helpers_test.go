package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/smart-match/internal/types"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCandidate_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "candidate.json", `{
		"id": "cand-1",
		"skills": ["go", "postgresql"],
		"years_of_experience": 6,
		"preferred_work_type": "remote"
	}`)

	candidate, err := loadCandidate(path)
	require.NoError(t, err)
	assert.Equal(t, "cand-1", candidate.ID)
	assert.Equal(t, []string{"go", "postgresql"}, candidate.Skills)
	assert.Equal(t, types.WorkTypeRemote, candidate.PreferredWorkType)
}

func TestLoadCandidate_MissingID(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "candidate.json", `{"skills": ["go"]}`)

	_, err := loadCandidate(path)
	require.Error(t, err)

	var invalidErr *types.InvalidRecordError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestLoadCandidate_RejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "candidate.json", `{"id": "cand-1", "favorite_color": "blue"}`)

	_, err := loadCandidate(path)
	require.Error(t, err)

	// Schema violations surface as invalid-record errors
	var invalidErr *types.InvalidRecordError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "cand-1", invalidErr.ID)
	assert.Contains(t, err.Error(), "favorite_color")
}

func TestLoadCandidate_FileNotFound(t *testing.T) {
	_, err := loadCandidate(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read candidate file")
}

func TestLoadJob_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "job.json", `{
		"id": "job-1",
		"title": "Backend Engineer",
		"required_skills": ["go"],
		"min_experience": 3,
		"is_remote": true
	}`)

	job, err := loadJob(path)
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)
	assert.True(t, job.IsRemote)
}

func TestLoadJobs_ValidatesEveryRecord(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "jobs.json", `[
		{"id": "job-1", "title": "Backend Engineer"},
		{"title": "Missing ID"}
	]`)

	_, err := loadJobs(path)
	require.Error(t, err)

	var invalidErr *types.InvalidRecordError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestLoadCandidates_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "candidates.json", `[
		{"id": "cand-1", "skills": ["go"]},
		{"id": "cand-2", "years_of_experience": 4}
	]`)

	candidates, err := loadCandidates(path)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestLoadCandidates_RejectsSchemaViolation(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "candidates.json", `[
		{"id": "cand-1", "skills": ["go"]},
		{"id": "cand-2", "nickname": "ace"}
	]`)

	_, err := loadCandidates(path)
	require.Error(t, err)

	var invalidErr *types.InvalidRecordError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "cand-2", invalidErr.ID)
}

func TestWriteJSONOutput_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "nested", "out", "result.json")

	err := writeJSONOutput(outPath, map[string]int{"score": 87})
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, 87, decoded["score"])
}
