package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		content string
		want    Format
	}{
		{"profile.json", "skills: [Go]", FormatJSON},
		{"profile.YAML", `{"skills": []}`, FormatYAML},
		{"profile.yml", "", FormatYAML},
		{"profile", `  {"skills": []}`, FormatJSON},
		{"jobs.txt", "[]", FormatJSON},
		{"profile", "skills:\n  - Go", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path, []byte(tt.content)))
		})
	}
}

func TestToJSON_YAML(t *testing.T) {
	out, err := ToJSON([]byte(`
skills:
  - Go
  - PostgreSQL
yearsOfExperience: 4
workMode: Remote
expectedStipend: "40000"
`), FormatYAML)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"skills": ["Go", "PostgreSQL"],
		"yearsOfExperience": 4,
		"workMode": "Remote",
		"expectedStipend": "40000"
	}`, string(out))
}

func TestToJSON_YAMLNonStringKeys(t *testing.T) {
	out, err := ToJSON([]byte("levels:\n  1: Junior\n  2: Mid\n"), FormatYAML)
	require.NoError(t, err)
	assert.JSONEq(t, `{"levels": {"1": "Junior", "2": "Mid"}}`, string(out))
}

func TestToJSON_Invalid(t *testing.T) {
	_, err := ToJSON([]byte(`{"skills":`), FormatJSON)
	assert.Error(t, err)

	_, err = ToJSON([]byte("skills: [Go"), FormatYAML)
	assert.Error(t, err)
}

func TestLoadDocument(t *testing.T) {
	path := writeFile(t, "job.yaml", "jobTitle: Backend Engineer\n")

	doc, err := LoadDocument(path)
	require.NoError(t, err)

	assert.JSONEq(t, `{"jobTitle": "Backend Engineer"}`, string(doc.JSON))
	assert.Equal(t, path, doc.Metadata.Path)
	assert.Equal(t, FormatYAML, doc.Metadata.Format)
	assert.Len(t, doc.Metadata.Hash, 64)
	assert.False(t, doc.Metadata.LoadedAt.IsZero())
}

func TestLoadDocument_SameContentSameHash(t *testing.T) {
	a, err := LoadDocument(writeFile(t, "a.json", `{"jobTitle":"SRE"}`))
	require.NoError(t, err)
	b, err := LoadDocument(writeFile(t, "b.json", `{"jobTitle":"SRE"}`))
	require.NoError(t, err)
	c, err := LoadDocument(writeFile(t, "c.json", `{"jobTitle":"QA"}`))
	require.NoError(t, err)

	assert.Equal(t, a.Metadata.Hash, b.Metadata.Hash)
	assert.NotEqual(t, a.Metadata.Hash, c.Metadata.Hash)
}

func TestLoadDocument_FileNotFound(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
