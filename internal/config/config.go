// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultPort is used when neither the file nor the environment sets a port.
const DefaultPort = 8080

// Config is the service configuration. It can be loaded from a JSON file and
// overridden from the environment; every field is optional.
type Config struct {
	DatabaseURL    string   `json:"database_url,omitempty"`                             // PostgreSQL connection URL
	Port           int      `json:"port,omitempty" validate:"gte=0,lte=65535"`          // HTTP listen port
	RankWorkers    int      `json:"rank_workers,omitempty" validate:"gte=0,lte=256"`    // Concurrent scorers per request
	AllowedOrigins []string `json:"allowed_origins,omitempty" validate:"dive,required"` // CORS origins, "*" for any
	ExplainScores  bool     `json:"explain_scores,omitempty"`                           // Attach breakdowns by default
	LogJSON        bool     `json:"log_json,omitempty"`                                 // JSON log encoding
	LogDebug       bool     `json:"log_debug,omitempty"`                                // Debug log level
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from DATABASE_URL, PORT, RANK_WORKERS, LOG_JSON and LOG_DEBUG.
// Unset variables leave the field untouched; malformed numbers are reported.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}

	var err error
	if c.Port, err = envInt("PORT", c.Port); err != nil {
		return err
	}
	if c.RankWorkers, err = envInt("RANK_WORKERS", c.RankWorkers); err != nil {
		return err
	}
	if c.LogJSON, err = envBool("LOG_JSON", c.LogJSON); err != nil {
		return err
	}
	if c.LogDebug, err = envBool("LOG_DEBUG", c.LogDebug); err != nil {
		return err
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.RankWorkers == 0 {
		result.RankWorkers = defaults.RankWorkers
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge

	return result
}

// Load reads the optional config file, applies the environment, fills defaults and validates.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	merged := cfg.MergeWithDefaults(Config{})
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func envInt(key string, current int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return current, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, current bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return current, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
