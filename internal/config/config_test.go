package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "PORT", "RANK_WORKERS", "LOG_JSON", "LOG_DEBUG", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"database_url": "postgres://localhost/devmatch",
		"port": 9090,
		"rank_workers": 4,
		"allowed_origins": ["https://app.example.com"],
		"log_json": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/devmatch", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 4, cfg.RankWorkers)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.LogJSON)
	assert.False(t, cfg.LogDebug)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero value", Config{}, false},
		{"valid", Config{Port: 8080, RankWorkers: 8, AllowedOrigins: []string{"*"}}, false},
		{"negative port", Config{Port: -1}, true},
		{"port too large", Config{Port: 70000}, true},
		{"negative workers", Config{RankWorkers: -2}, true},
		{"blank origin", Config{AllowedOrigins: []string{""}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "config error")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApplyEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://env/devmatch")
	t.Setenv("PORT", "7070")
	t.Setenv("RANK_WORKERS", "2")
	t.Setenv("LOG_DEBUG", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg := &Config{DatabaseURL: "postgres://file/devmatch", Port: 9090}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "postgres://env/devmatch", cfg.DatabaseURL)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 2, cfg.RankWorkers)
	assert.True(t, cfg.LogDebug)
	assert.False(t, cfg.LogJSON)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestApplyEnv_UnsetKeepsValues(t *testing.T) {
	clearEnv(t)

	cfg := &Config{Port: 9090, LogJSON: true}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.LogJSON)
}

func TestApplyEnv_Malformed(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")
	assert.ErrorContains(t, (&Config{}).ApplyEnv(), "invalid PORT")

	clearEnv(t)
	t.Setenv("LOG_JSON", "maybe")
	assert.ErrorContains(t, (&Config{}).ApplyEnv(), "invalid LOG_JSON")
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		DatabaseURL:    "postgres://default/devmatch",
		Port:           8000,
		RankWorkers:    4,
		AllowedOrigins: []string{"*"},
	}
	partial := Config{Port: 9000}

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "postgres://default/devmatch", merged.DatabaseURL)
	assert.Equal(t, 4, merged.RankWorkers)
	assert.Equal(t, []string{"*"}, merged.AllowedOrigins)
}

func TestMergeWithDefaults_FallsBackToDefaultPort(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultPort, merged.Port)
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	t.Setenv("RANK_WORKERS", "3")

	cfg, err := Load(writeConfig(t, `{"database_url": "postgres://file/devmatch"}`))
	require.NoError(t, err)
	assert.Equal(t, "postgres://file/devmatch", cfg.DatabaseURL)
	assert.Equal(t, 3, cfg.RankWorkers)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoad_NoFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoad_InvalidAfterEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RANK_WORKERS", "1000")

	_, err := Load("")
	assert.ErrorContains(t, err, "config error")
}
