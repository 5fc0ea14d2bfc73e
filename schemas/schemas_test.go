package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/smart-match/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"candidate.schema.json",
		"job.schema.json",
		"match_result.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestCandidateSchema_AcceptsMinimalDocument(t *testing.T) {
	doc := `{"id": "cand-1"}`

	schema, err := os.ReadFile("candidate.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), doc)
	assert.NoError(t, err, "candidate with only an id should validate")
}

func TestCandidateSchema_RejectsMissingID(t *testing.T) {
	doc := `{"skills": ["go"]}`

	schema, err := os.ReadFile("candidate.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), doc)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestJobSchema_RejectsUnknownField(t *testing.T) {
	doc := `{"id": "job-1", "headcount": 3}`

	schema, err := os.ReadFile("job.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), doc)
	assert.Error(t, err, "unknown fields should be rejected")
}

func TestMatchResultSchema_AcceptsFullDocument(t *testing.T) {
	doc := `{
		"candidate_id": "cand-1",
		"job_id": "job-1",
		"overall_score": 87,
		"breakdown": {
			"skill_match": 100,
			"experience_match": 100,
			"location_match": 50,
			"salary_match": 75,
			"culture_fit": 70
		},
		"strengths": ["Strong skill alignment"],
		"gaps": [],
		"recommendation": "strong"
	}`

	schema, err := os.ReadFile("match_result.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), doc)
	assert.NoError(t, err)
}

func TestMatchResultSchema_RejectsOutOfRangeScore(t *testing.T) {
	doc := `{
		"candidate_id": "cand-1",
		"job_id": "job-1",
		"overall_score": 120,
		"breakdown": {
			"skill_match": 100,
			"experience_match": 100,
			"location_match": 50,
			"salary_match": 75,
			"culture_fit": 70
		},
		"strengths": [],
		"gaps": [],
		"recommendation": "strong"
	}`

	schema, err := os.ReadFile("match_result.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), doc)
	assert.Error(t, err, "scores above 100 should be rejected")
}
