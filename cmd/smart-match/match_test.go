package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantError   bool
		errorString string
	}{
		{
			name:        "Missing --candidate flag",
			args:        []string{"match", "--job", "job.json"},
			wantError:   true,
			errorString: "required",
		},
		{
			name:        "Missing --job flag",
			args:        []string{"match", "--candidate", "candidate.json"},
			wantError:   true,
			errorString: "required",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorString != "" {
					assert.Contains(t, string(output), tt.errorString)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIngestJobCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "No source provided",
			args:        []string{"ingest-job"},
			errorString: "either --file or --url must be provided",
		},
		{
			name:        "Both sources provided",
			args:        []string{"ingest-job", "--file", "a.html", "--url", "http://example.com"},
			errorString: "mutually exclusive",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}
