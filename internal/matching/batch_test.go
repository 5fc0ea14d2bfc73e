package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/smart-match/internal/types"
)

func batchTestJobs() []types.Job {
	return []types.Job{
		{ID: "job_good", RequiredSkills: []string{"Go"}, MinExperience: 2, IsRemote: true},
		{ID: "job_poor", RequiredSkills: []string{"Rust", "C++", "Verilog"}, MinExperience: 10},
		{ID: "job_fair", RequiredSkills: []string{"Go", "Kubernetes"}, MinExperience: 2},
	}
}

func TestMatchCandidateToJobs_SortedDescending(t *testing.T) {
	candidate := &types.Candidate{ID: "cand_100", Skills: []string{"Go"}, YearsOfExperience: 4}

	results := MatchCandidateToJobs(candidate, batchTestJobs())

	require.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].OverallScore, results[i].OverallScore)
	}
	assert.Equal(t, "job_good", results[0].JobID)
	assert.Equal(t, "job_poor", results[2].JobID)
}

func TestMatchCandidateToJobs_StableTieOrder(t *testing.T) {
	candidate := &types.Candidate{ID: "cand_101", Skills: []string{"Go"}, YearsOfExperience: 4}
	jobs := []types.Job{
		{ID: "job_a", RequiredSkills: []string{"Go"}, MinExperience: 2},
		{ID: "job_b", RequiredSkills: []string{"Go"}, MinExperience: 2},
	}

	results := MatchCandidateToJobs(candidate, jobs)

	// Identical jobs score identically; the stable sort keeps input order.
	require.Len(t, results, 2)
	assert.Equal(t, results[0].OverallScore, results[1].OverallScore)
	assert.Equal(t, "job_a", results[0].JobID)
	assert.Equal(t, "job_b", results[1].JobID)
}

func TestMatchCandidateToJobs_EmptyJobList(t *testing.T) {
	results := MatchCandidateToJobs(&types.Candidate{ID: "cand_102"}, nil)

	assert.Empty(t, results)
}

func TestMatchJobToCandidates_SortedDescending(t *testing.T) {
	job := &types.Job{ID: "job_200", RequiredSkills: []string{"Python"}, MinExperience: 3}
	candidates := []types.Candidate{
		{ID: "cand_weak", Skills: []string{"PHP"}, YearsOfExperience: 0},
		{ID: "cand_strong", Skills: []string{"Python"}, YearsOfExperience: 4},
	}

	results := MatchJobToCandidates(job, candidates)

	require.Len(t, results, 2)
	assert.Equal(t, "cand_strong", results[0].CandidateID)
	assert.GreaterOrEqual(t, results[0].OverallScore, results[1].OverallScore)
}

func TestBatchMatch_FilterInvariant(t *testing.T) {
	candidates := []types.Candidate{
		{ID: "cand_300", Skills: []string{"Go"}, YearsOfExperience: 4},
		{ID: "cand_301", Skills: []string{"React"}, YearsOfExperience: 1},
	}

	matches := BatchMatch(candidates, batchTestJobs())

	require.Len(t, matches, 2)
	for candidateID, results := range matches {
		for _, result := range results {
			assert.GreaterOrEqual(t, result.OverallScore, BatchMatchMinScore,
				"candidate %s has an unqualified result", candidateID)
		}
	}
}

func TestBatchMatch_CandidateWithNoQualifyingJobsGetsEmptyList(t *testing.T) {
	candidates := []types.Candidate{
		{ID: "cand_302", Skills: []string{"Fortran"}, YearsOfExperience: 0},
	}
	jobs := []types.Job{
		{ID: "job_hard", RequiredSkills: []string{"Go", "Kubernetes", "AWS"}, MinExperience: 12},
	}

	matches := BatchMatch(candidates, jobs)

	// The candidate is present in the map, mapped to an empty list.
	results, ok := matches["cand_302"]
	require.True(t, ok)
	assert.Empty(t, results)
}

func TestBatchMatch_ResultsSortedPerCandidate(t *testing.T) {
	candidates := []types.Candidate{
		{ID: "cand_303", Skills: []string{"Go", "Kubernetes"}, YearsOfExperience: 4},
	}

	matches := BatchMatch(candidates, batchTestJobs())

	results := matches["cand_303"]
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].OverallScore, results[i].OverallScore)
	}
}

func TestTopMatches_TruncatesToLimit(t *testing.T) {
	candidate := &types.Candidate{ID: "cand_400", Skills: []string{"Go"}, YearsOfExperience: 4}

	results := TopMatches(candidate, batchTestJobs(), 2)

	require.Len(t, results, 2)
	assert.Equal(t, "job_good", results[0].JobID)
}

func TestTopMatches_DefaultLimit(t *testing.T) {
	candidate := &types.Candidate{ID: "cand_401", Skills: []string{"Go"}, YearsOfExperience: 4}

	jobs := make([]types.Job, 0, 8)
	for i := 0; i < 8; i++ {
		jobs = append(jobs, types.Job{ID: string(rune('a' + i)), RequiredSkills: []string{"Go"}, MinExperience: 1})
	}

	results := TopMatches(candidate, jobs, 0)

	// Non-positive limit falls back to the default of 5.
	assert.Len(t, results, DefaultTopMatchLimit)
}

func TestTopMatches_NoScoreFiltering(t *testing.T) {
	candidate := &types.Candidate{ID: "cand_402", Skills: []string{"Lisp"}, YearsOfExperience: 0}
	jobs := []types.Job{
		{ID: "job_mismatch", RequiredSkills: []string{"Go", "AWS", "Docker"}, MinExperience: 10},
	}

	results := TopMatches(candidate, jobs, 5)

	// Unlike BatchMatch, low scores are kept.
	require.Len(t, results, 1)
	assert.Less(t, results[0].OverallScore, BatchMatchMinScore)
}
