package matching

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/smart-match/internal/types"
)

// BatchMatchMinScore is the qualifying threshold for BatchMatch results.
const BatchMatchMinScore = 50

// DefaultTopMatchLimit is the number of results TopMatches returns when the
// caller passes a non-positive limit.
const DefaultTopMatchLimit = 5

// MatchCandidateToJobs scores a candidate against every job and returns all
// results sorted descending by overall score. The sort is stable, so ties
// keep the input job order for reproducible output.
func MatchCandidateToJobs(candidate *types.Candidate, jobs []types.Job) []types.MatchResult {
	results := make([]types.MatchResult, 0, len(jobs))
	for i := range jobs {
		results = append(results, *MatchCandidateToJob(candidate, &jobs[i]))
	}
	sortByScore(results)
	return results
}

// MatchJobToCandidates is the symmetric operation: one job scored against
// every candidate, same sort contract.
func MatchJobToCandidates(job *types.Job, candidates []types.Candidate) []types.MatchResult {
	results := make([]types.MatchResult, 0, len(candidates))
	for i := range candidates {
		results = append(results, *MatchCandidateToJob(&candidates[i], job))
	}
	sortByScore(results)
	return results
}

// BatchMatch scores every candidate against every job, keeping only results
// with an overall score of at least BatchMatchMinScore. Candidates with no
// qualifying job map to an empty list rather than being omitted. The
// per-candidate loop is embarrassingly parallel; each goroutine writes only
// its own slot, so no locking is needed beyond the group wait.
func BatchMatch(candidates []types.Candidate, jobs []types.Job) map[string][]types.MatchResult {
	perCandidate := make([][]types.MatchResult, len(candidates))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range candidates {
		g.Go(func() error {
			all := MatchCandidateToJobs(&candidates[i], jobs)
			qualified := make([]types.MatchResult, 0, len(all))
			for _, result := range all {
				if result.OverallScore >= BatchMatchMinScore {
					qualified = append(qualified, result)
				}
			}
			perCandidate[i] = qualified
			return nil
		})
	}
	// Scoring never errors; Wait only synchronizes the goroutines.
	_ = g.Wait()

	matches := make(map[string][]types.MatchResult, len(candidates))
	for i := range candidates {
		matches[candidates[i].ID] = perCandidate[i]
	}
	return matches
}

// TopMatches returns the best-scoring matches for a candidate, truncated to
// limit entries. A non-positive limit falls back to DefaultTopMatchLimit.
// No score filtering is applied.
func TopMatches(candidate *types.Candidate, jobs []types.Job, limit int) []types.MatchResult {
	if limit <= 0 {
		limit = DefaultTopMatchLimit
	}
	results := MatchCandidateToJobs(candidate, jobs)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func sortByScore(results []types.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})
}
