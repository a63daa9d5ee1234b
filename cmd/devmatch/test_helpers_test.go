package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const scenarioProfile = `{
	"skills": ["Node.js", "React"],
	"yearsOfExperience": 4,
	"jobRolesInterested": ["Backend Developer"],
	"preferredLocations": ["Remote"],
	"workMode": "Remote",
	"expectedStipend": ["40000"]
}`

const scenarioJob = `{
	"requiredSkills": ["Node.js"],
	"experienceLevel": "Mid",
	"jobTitle": "Backend Engineer",
	"companyName": "Acme",
	"location": "Remote",
	"workMode": "Remote",
	"salaryRange": "30000-50000"
}`

// executeCommand runs the root command with args and returns everything written to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
