package main

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/devmatch/internal/config"
	"github.com/jonathan/devmatch/internal/server"
)

func TestValidateCommand(t *testing.T) {
	valid := writeTemp(t, "job.json", scenarioJob)
	invalid := writeTemp(t, "job.json", `{"requiredSkills": {"a": 1}}`)

	t.Run("passes", func(t *testing.T) {
		out, err := executeCommand(t, "validate", "--kind", "job", "--file", valid)
		require.NoError(t, err)
		assert.Contains(t, out, "Validation passed")
	})

	t.Run("fails", func(t *testing.T) {
		out, err := executeCommand(t, "validate", "-k", "job", "-f", invalid)
		require.Error(t, err)
		assert.Contains(t, out, "Validation failed")
		assert.Contains(t, out, "requiredSkills")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := executeCommand(t, "validate", "-k", "resume", "-f", valid)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown --kind")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := executeCommand(t, "validate", "-k", "job", "-f", "nonexistent.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-jwt-signing-minimum-32-bytes")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("JWT_ISSUER", "")
	developerID := uuid.New()

	out, err := executeCommand(t, "token", "--developer", developerID.String())
	require.NoError(t, err)

	jwtConfig, err := config.NewJWTConfig()
	require.NoError(t, err)
	claims, err := server.NewJWTService(jwtConfig).ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, developerID, claims.DeveloperID)
}

func TestTokenCommand_Errors(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := executeCommand(t, "token", "--developer", "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --developer")

	_, err = executeCommand(t, "token", "--developer", uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestImportCommand_FlagRules(t *testing.T) {
	profile := writeTemp(t, "profile.json", scenarioProfile)
	jobs := writeTemp(t, "jobs.json", "["+scenarioJob+"]")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"nothing to import", []string{"import"}, "at least one of the flags"},
		{"profile without developer", []string{"import", "--profile", profile}, "must all be set"},
		{"profile and jobs", []string{"import", "--profile", profile, "--developer", uuid.NewString(), "--jobs", jobs}, "none of the others can be"},
		{"bad developer", []string{"import", "--profile", profile, "--developer", "nope"}, "invalid --developer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestImportCommand_RequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	jobs := writeTemp(t, "jobs.json", "["+scenarioJob+"]")

	_, err := executeCommand(t, "import", "--jobs", jobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestJobStatusCommand(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing accepting", []string{"job-status", "--job", uuid.NewString()}, "required"},
		{"bad job id", []string{"job-status", "--job", "nope", "--accepting=false"}, "invalid --job"},
		{"no database", []string{"job-status", "--job", uuid.NewString(), "--accepting=false"}, "DATABASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestServeCommand_RequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := executeCommand(t, "serve", "--port", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
