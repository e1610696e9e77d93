package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateSchemaPath(t *testing.T) string {
	t.Helper()
	path := ResolveSchemaPath(filepath.Join("schemas", "candidate_record.schema.json"))
	require.NotEmpty(t, path, "candidate schema should be resolvable from the package directory")
	return path
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "does_not_exist.schema.json")))
}

func TestValidateDocument_ValidCandidate(t *testing.T) {
	document := []byte(`{
		"name": "Test Candidate",
		"educational_background": {
			"college": {"course": "BS Human Resource Management"},
			"graduate_studies": [{"course": "MBA"}]
		},
		"work_experience": [{"position_title": "HR Officer"}],
		"civil_service_eligibility": ["Career Service Professional"]
	}`)

	assert.NoError(t, ValidateDocument(candidateSchemaPath(t), document))
}

func TestValidateDocument_InvalidCandidate(t *testing.T) {
	document := []byte(`{"work_experience": "should be a list"}`)

	err := ValidateDocument(candidateSchemaPath(t), document)

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateDocument_JobRequirement(t *testing.T) {
	schemaPath := ResolveSchemaPath(filepath.Join("schemas", "job_requirement.schema.json"))
	require.NotEmpty(t, schemaPath)

	valid := []byte(`{"position_title": "Administrative Officer IV", "education_requirements": ""}`)
	assert.NoError(t, ValidateDocument(schemaPath, valid))

	missingTitle := []byte(`{"education_requirements": "Bachelor's degree"}`)
	assert.Error(t, ValidateDocument(schemaPath, missingTitle))
}

func TestValidateDocument_AssessmentResult(t *testing.T) {
	schemaPath := ResolveSchemaPath(filepath.Join("schemas", "assessment_result.schema.json"))
	require.NotEmpty(t, schemaPath)

	valid := []byte(`{
		"total_score": 64.8, "education_score": 60, "experience_score": 50,
		"training_score": 100, "eligibility_score": 75
	}`)
	assert.NoError(t, ValidateDocument(schemaPath, valid))

	outOfRange := []byte(`{
		"total_score": 120, "education_score": 60, "experience_score": 50,
		"training_score": 100, "eligibility_score": 75
	}`)
	assert.Error(t, ValidateDocument(schemaPath, outOfRange))
}

func TestValidateDocument_MissingSchema(t *testing.T) {
	err := ValidateDocument(filepath.Join(t.TempDir(), "missing.schema.json"), []byte(`{}`))
	assert.Error(t, err)
}

func TestValidateJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"position_title": "Clerk"}`), 0644))

	schemaPath := ResolveSchemaPath(filepath.Join("schemas", "job_requirement.schema.json"))
	require.NotEmpty(t, schemaPath)

	assert.NoError(t, ValidateJSON(schemaPath, path))
	assert.Error(t, ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "missing.json")))
}
