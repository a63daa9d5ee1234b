package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultJWTIssuer is the issuer claim expected when JWT_ISSUER is unset.
const DefaultJWTIssuer = "devmatch"

// JWTConfig holds the settings for validating developer bearer tokens.
type JWTConfig struct {
	Secret          string `validate:"required"`
	ExpirationHours int    `validate:"gte=1,lte=720"`
	Issuer          string `validate:"required"`
}

// NewJWTConfig creates a JWT configuration from environment variables.
// It reads JWT_SECRET (required), JWT_EXPIRATION_HOURS (default: 24) and JWT_ISSUER.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24"
	}
	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %w", err)
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = DefaultJWTIssuer
	}

	cfg := &JWTConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
		Issuer:          issuer,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the JWT settings.
func (c *JWTConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid JWT config: %w", err)
	}
	return nil
}

// TTL returns the token lifetime.
func (c *JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}
