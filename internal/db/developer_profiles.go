package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/devmatch/internal/types"
)

// GetDeveloperProfile loads and coerces a developer's profile document.
// Returns nil, nil when the developer has no profile.
func (db *DB) GetDeveloperProfile(ctx context.Context, developerID uuid.UUID) (*types.DeveloperProfile, error) {
	var document []byte
	err := db.pool.QueryRow(ctx,
		`SELECT document FROM developer_profiles WHERE developer_id = $1`,
		developerID,
	).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get developer profile: %w", err)
	}

	profile, err := types.ParseDeveloperProfile(document)
	if err != nil {
		return nil, fmt.Errorf("stored profile for %s is unusable: %w", developerID, err)
	}
	profile.DeveloperID = developerID
	return profile, nil
}

// UpsertDeveloperProfile stores the raw profile document for a developer.
// The document is parsed first so that only object-shaped documents are stored.
func (db *DB) UpsertDeveloperProfile(ctx context.Context, developerID uuid.UUID, document []byte) (*types.DeveloperProfile, error) {
	if developerID == uuid.Nil {
		return nil, &types.InvalidInputError{Field: "developer_id", Reason: "developer id is required"}
	}
	profile, err := types.ParseDeveloperProfile(document)
	if err != nil {
		return nil, err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO developer_profiles (developer_id, document)
		 VALUES ($1, $2)
		 ON CONFLICT (developer_id) DO UPDATE SET document = $2, updated_at = NOW()`,
		developerID, document,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert developer profile: %w", err)
	}

	profile.DeveloperID = developerID
	return profile, nil
}
