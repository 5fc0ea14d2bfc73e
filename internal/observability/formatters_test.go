package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/smart-match/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	salaryMin := 120000.0
	salaryMax := 160000.0
	job := &types.Job{
		ID:             "job-1",
		Title:          "Senior Backend Engineer",
		RequiredSkills: []string{"go", "kubernetes"},
		PreferredSkills: []string{
			"aws",
		},
		MinExperience:  5,
		Location:       "Denver, CO",
		SalaryRangeMin: &salaryMin,
		SalaryRangeMax: &salaryMax,
	}

	p.PrintJob(job)
	output := buf.String()

	assert.Contains(t, output, "JOB REQUISITION")
	assert.Contains(t, output, "Senior Backend Engineer")
	assert.Contains(t, output, "Denver, CO")
	assert.Contains(t, output, "go")
	assert.Contains(t, output, "aws")
	assert.Contains(t, output, "120000 - 160000")
}

func TestPrintJob_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJob(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJob_Remote(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJob(&types.Job{ID: "job-1", Title: "Platform Engineer", IsRemote: true})
	output := buf.String()

	assert.Contains(t, output, "Location: remote")
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		CandidateID:  "cand-1",
		JobID:        "job-1",
		OverallScore: 87,
		Breakdown: types.ScoreBreakdown{
			SkillMatch:      100,
			ExperienceMatch: 100,
			LocationMatch:   50,
			SalaryMatch:     75,
			CultureFit:      70,
		},
		Strengths:      []string{"Strong skill alignment", "Perfect experience level"},
		Gaps:           []string{"Location may require relocation"},
		Recommendation: types.RecommendationStrong,
	}

	p.PrintMatchResult(result)
	output := buf.String()

	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, "cand-1")
	assert.Contains(t, output, "87 (strong)")
	assert.Contains(t, output, "Skills:     100")
	assert.Contains(t, output, "Strong skill alignment")
	assert.Contains(t, output, "Location may require relocation")
}

func TestPrintMatchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.MatchResult{
		{
			CandidateID:    "cand-1",
			JobID:          "job-1",
			OverallScore:   92,
			Strengths:      []string{"Strong skill alignment"},
			Recommendation: types.RecommendationStrong,
		},
		{
			CandidateID:    "cand-2",
			JobID:          "job-1",
			OverallScore:   68,
			Recommendation: types.RecommendationModerate,
		},
	}

	p.PrintMatchList("TOP CANDIDATES", results)
	output := buf.String()

	assert.Contains(t, output, "TOP CANDIDATES")
	assert.Contains(t, output, "Total matches: 2")
	assert.Contains(t, output, "#1  cand-1 vs job-1")
	assert.Contains(t, output, "Score: 92 (strong)")
	assert.Contains(t, output, "#2  cand-2 vs job-1")
}

func TestPrintMatchList_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchList("TOP CANDIDATES", nil)
	output := buf.String()

	assert.Contains(t, output, "NO MATCHES FOUND")
}

func TestPrintMatchList_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := make([]types.MatchResult, 8)
	for i := range results {
		results[i] = types.MatchResult{
			CandidateID:    "cand",
			JobID:          "job",
			OverallScore:   90 - i,
			Recommendation: types.RecommendationStrong,
		}
	}

	p.PrintMatchList("TOP CANDIDATES", results)
	output := buf.String()

	assert.Contains(t, output, "... and 3 more matches")
	// Only the first five entries are listed.
	assert.Equal(t, 5, strings.Count(output, "cand vs job"))
}
