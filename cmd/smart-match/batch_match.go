package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/smart-match/internal/matching"
	"github.com/jonathan/smart-match/internal/observability"
)

var batchMatchCmd = &cobra.Command{
	Use:   "batch-match",
	Short: "Score every candidate against every job",
	Long:  "Scores the full cross product of a candidate pool and a requisition list, keeping only qualifying matches per candidate sorted best first.",
	RunE:  runBatchMatch,
}

var (
	batchCandidates string
	batchJobs       string
	batchOutput     string
)

func init() {
	batchMatchCmd.Flags().StringVarP(&batchCandidates, "candidates", "c", "", "Path to input Candidates JSON array file")
	batchMatchCmd.Flags().StringVarP(&batchJobs, "jobs", "j", "", "Path to input Jobs JSON array file")
	batchMatchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")

	rootCmd.AddCommand(batchMatchCmd)
}

func runBatchMatch(_ *cobra.Command, _ []string) error {
	candidatesPath := batchCandidates
	if candidatesPath == "" {
		candidatesPath = cliConfig.Candidates
	}
	if candidatesPath == "" {
		return fmt.Errorf("either --candidates or a config file with a candidates path must be provided")
	}

	jobsPath := batchJobs
	if jobsPath == "" {
		jobsPath = cliConfig.Jobs
	}
	if jobsPath == "" {
		return fmt.Errorf("either --jobs or a config file with a jobs path must be provided")
	}

	candidates, err := loadCandidates(candidatesPath)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}

	jobs, err := loadJobs(jobsPath)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}

	results := matching.BatchMatch(candidates, jobs)

	if err := writeJSONOutput(batchOutput, results); err != nil {
		return err
	}

	if verboseMode {
		printer := observability.NewPrinter(os.Stdout)
		for _, candidate := range candidates {
			printer.PrintMatchList(fmt.Sprintf("MATCHES FOR %s", candidate.ID), results[candidate.ID])
		}
	}

	total := 0
	for _, matches := range results {
		total += len(matches)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Matched %d candidates against %d jobs: %d qualifying matches\n",
		len(candidates), len(jobs), total)

	return nil
}
