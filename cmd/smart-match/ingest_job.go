package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/smart-match/internal/ingestion"
	"github.com/jonathan/smart-match/internal/observability"
	"github.com/jonathan/smart-match/internal/schemas"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Ingest a job posting from an HTML file or URL",
	Long:  "Fetches or reads a job posting HTML page, extracts the title, location, skills, salary range, and experience requirements, and outputs a Job JSON ready for matching.",
	RunE:  runIngestJob,
}

var (
	ingestJobFile   string
	ingestJobURL    string
	ingestJobID     string
	ingestJobOutput string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestJobFile, "file", "f", "", "Path to HTML file containing job posting")
	ingestJobCmd.Flags().StringVarP(&ingestJobURL, "url", "u", "", "URL to fetch job posting from")
	ingestJobCmd.Flags().StringVar(&ingestJobID, "id", "", "Job ID to assign (defaults to a generated UUID)")
	ingestJobCmd.Flags().StringVarP(&ingestJobOutput, "out", "o", "", "Path to output Job JSON file (defaults to stdout)")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(_ *cobra.Command, _ []string) error {
	// Validate mutually exclusive flags
	if ingestJobFile == "" && ingestJobURL == "" {
		return fmt.Errorf("either --file or --url must be provided")
	}
	if ingestJobFile != "" && ingestJobURL != "" {
		return fmt.Errorf("--file and --url are mutually exclusive; provide only one")
	}

	var html string
	if ingestJobFile != "" {
		content, err := os.ReadFile(ingestJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job posting file %s: %w", ingestJobFile, err)
		}
		html = string(content)
	} else {
		fetched, err := ingestion.FetchHTML(context.Background(), ingestJobURL, ingestion.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		html = fetched
	}

	jobID := ingestJobID
	if jobID == "" {
		jobID = uuid.New().String()
	}

	job, err := ingestion.ParseJobHTML(jobID, html)
	if err != nil {
		return fmt.Errorf("failed to parse job posting: %w", err)
	}

	if err := writeJSONOutput(ingestJobOutput, job); err != nil {
		return err
	}

	validateAgainstSchema(schemas.JobSchema, ingestJobOutput)

	if verboseMode {
		observability.NewPrinter(os.Stdout).PrintJob(job)
	}

	if ingestJobOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Ingested job %q (%d required skills) to %s\n",
			job.Title, len(job.RequiredSkills), ingestJobOutput)
	}

	return nil
}
