package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/smart-match/internal/schemas"
	"github.com/jonathan/smart-match/internal/types"
)

// validateCandidateBytes checks a raw candidate document against the
// candidate schema when the schema file can be located. Schema violations are
// input errors; a schema that fails to load is only warned about.
func validateCandidateBytes(id string, content []byte) error {
	schemaPath := schemas.ResolveSchemaPath(schemas.CandidateSchema)
	if schemaPath == "" {
		return nil
	}

	if err := schemas.ValidateJSONBytes(schemaPath, content); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return &types.InvalidRecordError{Record: "candidate", ID: id, Cause: err}
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Candidate schema validation skipped: %v\n", err)
	}
	return nil
}

func loadCandidate(path string) (*types.Candidate, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}

	var candidate types.Candidate
	if err := json.Unmarshal(content, &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}
	if err := validateCandidateBytes(candidate.ID, content); err != nil {
		return nil, err
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	return &candidate, nil
}

func loadJob(path string) (*types.Job, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	var job types.Job
	if err := json.Unmarshal(content, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	return &job, nil
}

// loadCandidates reads a JSON array of candidates and validates every record.
func loadCandidates(path string) ([]types.Candidate, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidates JSON: %w", err)
	}

	candidates := make([]types.Candidate, 0, len(records))
	for _, record := range records {
		var candidate types.Candidate
		if err := json.Unmarshal(record, &candidate); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
		}
		if err := validateCandidateBytes(candidate.ID, record); err != nil {
			return nil, err
		}
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// loadJobs reads a JSON array of jobs and validates every record.
func loadJobs(path string) ([]types.Job, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}

	var jobs []types.Job
	if err := json.Unmarshal(content, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jobs JSON: %w", err)
	}
	for i := range jobs {
		if err := jobs[i].Validate(); err != nil {
			return nil, err
		}
	}

	return jobs, nil
}

// writeJSONOutput marshals v with indentation and writes it to outPath,
// creating parent directories as needed. When outPath is empty the JSON is
// written to stdout instead.
func writeJSONOutput(outPath string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if outPath == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonOutput)
		return nil
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}

	return nil
}

// validateAgainstSchema checks outPath against the named schema if the schema
// file can be located. Validation is a safety check, not a requirement, so
// failures are reported as warnings.
func validateAgainstSchema(schemaRelPath, outPath string) {
	if outPath == "" {
		return
	}

	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return
	}

	if err := schemas.ValidateJSON(schemaPath, outPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
	}
}
