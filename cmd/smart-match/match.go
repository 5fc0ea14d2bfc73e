package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/smart-match/internal/matching"
	"github.com/jonathan/smart-match/internal/observability"
	"github.com/jonathan/smart-match/internal/schemas"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one candidate against one job",
	Long:  "Deterministically scores a candidate profile against a job requisition, producing a MatchResult JSON with per-dimension breakdown, strengths, gaps, and a recommendation tier.",
	RunE:  runMatch,
}

var (
	matchCandidatePath string
	matchJobPath       string
	matchOutput        string
)

func init() {
	matchCmd.Flags().StringVarP(&matchCandidatePath, "candidate", "c", "", "Path to input Candidate JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJobPath, "job", "j", "", "Path to input Job JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchResult JSON file (defaults to stdout)")

	if err := matchCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	candidate, err := loadCandidate(matchCandidatePath)
	if err != nil {
		return fmt.Errorf("failed to load candidate: %w", err)
	}

	job, err := loadJob(matchJobPath)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}

	result := matching.MatchCandidateToJob(candidate, job)

	if err := writeJSONOutput(matchOutput, result); err != nil {
		return err
	}

	validateAgainstSchema(schemas.MatchResultSchema, matchOutput)

	if verboseMode {
		observability.NewPrinter(os.Stdout).PrintMatchResult(result)
	}

	if matchOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Scored %s against %s: %d (%s), written to %s\n",
			result.CandidateID, result.JobID, result.OverallScore, result.Recommendation, matchOutput)
	}

	return nil
}
