package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Company is a canonical company record.
type Company struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	NameNormalized string    `json:"name_normalized"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NormalizeName reduces a company name to lowercase letters and digits for de-duplication.
func NormalizeName(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// FindOrCreateCompany finds an existing company by name or creates a new one
func (db *DB) FindOrCreateCompany(ctx context.Context, name string) (*Company, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return nil, fmt.Errorf("company name cannot be empty")
	}

	var c Company
	err := db.pool.QueryRow(ctx,
		`INSERT INTO companies (name, name_normalized)
		 VALUES ($1, $2)
		 ON CONFLICT (name_normalized) DO UPDATE SET updated_at = NOW()
		 RETURNING id, name, name_normalized, created_at, updated_at`,
		strings.TrimSpace(name), normalized,
	).Scan(&c.ID, &c.Name, &c.NameNormalized, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &c, nil
}

// GetCompanyByID retrieves a company by its ID
func (db *DB) GetCompanyByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	var c Company
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, name_normalized, created_at, updated_at
		 FROM companies WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.NameNormalized, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}
