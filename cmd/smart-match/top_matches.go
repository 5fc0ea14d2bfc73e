package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/smart-match/internal/matching"
	"github.com/jonathan/smart-match/internal/observability"
)

var topMatchesCmd = &cobra.Command{
	Use:   "top-matches",
	Short: "Rank the best jobs for a candidate",
	Long:  "Scores a candidate against every job in a requisition file and outputs the highest scoring matches, best first.",
	RunE:  runTopMatches,
}

var (
	topMatchesCandidate string
	topMatchesJobs      string
	topMatchesLimit     int
	topMatchesOutput    string
)

func init() {
	topMatchesCmd.Flags().StringVarP(&topMatchesCandidate, "candidate", "c", "", "Path to input Candidate JSON file (required)")
	topMatchesCmd.Flags().StringVarP(&topMatchesJobs, "jobs", "j", "", "Path to input Jobs JSON array file")
	topMatchesCmd.Flags().IntVarP(&topMatchesLimit, "limit", "n", 0, "Maximum number of matches to return (default 5)")
	topMatchesCmd.Flags().StringVarP(&topMatchesOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")

	if err := topMatchesCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(topMatchesCmd)
}

func runTopMatches(_ *cobra.Command, _ []string) error {
	jobsPath := topMatchesJobs
	if jobsPath == "" {
		jobsPath = cliConfig.Jobs
	}
	if jobsPath == "" {
		return fmt.Errorf("either --jobs or a config file with a jobs path must be provided")
	}

	limit := topMatchesLimit
	if limit <= 0 {
		limit = cliConfig.TopLimit
	}

	candidate, err := loadCandidate(topMatchesCandidate)
	if err != nil {
		return fmt.Errorf("failed to load candidate: %w", err)
	}

	jobs, err := loadJobs(jobsPath)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}

	results := matching.TopMatches(candidate, jobs, limit)

	if err := writeJSONOutput(topMatchesOutput, results); err != nil {
		return err
	}

	if verboseMode {
		observability.NewPrinter(os.Stdout).PrintMatchList("TOP MATCHES", results)
	}

	if topMatchesOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Ranked %d jobs for %s, top %d written to %s\n",
			len(jobs), candidate.ID, len(results), topMatchesOutput)
	}

	return nil
}
