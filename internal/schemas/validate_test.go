package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schemafiles "github.com/jonathan/devmatch/schemas"
)

func TestValidateDocument_MatchRequest_Valid(t *testing.T) {
	doc := `{
		"profile": {
			"professionalDetails": {"skills": ["Go"], "yearsOfExperience": 4},
			"preferredLocations": "Remote",
			"workMode": "Remote",
			"expectedStipend": ["40000"]
		},
		"job": {
			"requiredSkills": ["Go", 3],
			"experienceLevel": "Mid",
			"salaryRange": "30000-50000",
			"acceptingApplications": true
		}
	}`

	assert.NoError(t, ValidateDocument(schemafiles.MatchRequest, []byte(doc)))
}

func TestValidateDocument_MatchRequest_MissingJob(t *testing.T) {
	err := ValidateDocument(schemafiles.MatchRequest, []byte(`{"profile": {}}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "job")
}

func TestValidateDocument_MatchRequest_WrongShapes(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"profile is array", `{"profile": [], "job": {}}`, "profile"},
		{"job is string", `{"profile": {}, "job": "job"}`, "job"},
		{"skills is object", `{"profile": {"skills": {"a": 1}}, "job": {}}`, "profile.skills"},
		{"years is bool", `{"profile": {"yearsOfExperience": true}, "job": {}}`, "profile.yearsOfExperience"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(schemafiles.MatchRequest, []byte(tt.doc))
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			var fields []string
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateDocument_RejectsUnknownTopLevelKeys(t *testing.T) {
	err := ValidateDocument(schemafiles.MatchRequest, []byte(`{"profile": {}, "job": {}, "extra": 1}`))
	assert.Error(t, err)
}

func TestValidateDocument_NotJSON(t *testing.T) {
	err := ValidateDocument(schemafiles.DeveloperProfile, []byte(`{not json`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Errors[0].Message, "invalid JSON")
}

func TestValidateDocument_JobList(t *testing.T) {
	assert.NoError(t, ValidateDocument(schemafiles.JobList, []byte(`[{"jobTitle": "Backend"}, {}]`)))
	assert.Error(t, ValidateDocument(schemafiles.JobList, []byte(`{"jobTitle": "Backend"}`)))
	assert.Error(t, ValidateDocument(schemafiles.JobList, []byte(`[1]`)))
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("missing.schema.json", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "missing.schema.json", loadErr.Path)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`
	assert.NoError(t, ValidateJSONString(schema, `{"name": "x"}`))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	err := ValidateJSONString(schema, `{"name": 5}`)
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "name", validationErr.Errors[0].Field)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{not a schema`, `{}`)
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type")
}
