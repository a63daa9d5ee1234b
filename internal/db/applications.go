package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jonathan/devmatch/internal/types"
)

// ErrJobNotFound is returned when a swipe references a job that does not exist.
var ErrJobNotFound = errors.New("job posting not found")

// foreignKeyViolation is the PostgreSQL SQLSTATE for a foreign key violation.
const foreignKeyViolation = "23503"

// RecordSwipe moves a job into the application list named by action.
// A later swipe on the same job replaces the earlier one.
func (db *DB) RecordSwipe(ctx context.Context, developerID, jobID uuid.UUID, action types.SwipeAction) (types.ApplicationStatus, error) {
	status, err := action.Status()
	if err != nil {
		return "", err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO developer_applications (developer_id, job_id, status)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (developer_id, job_id) DO UPDATE SET status = $3, updated_at = NOW()`,
		developerID, jobID, string(status),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return "", fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
		}
		return "", fmt.Errorf("failed to record swipe: %w", err)
	}
	return status, nil
}

// ListApplications returns the developer's job ids grouped by application status.
func (db *DB) ListApplications(ctx context.Context, developerID uuid.UUID) (map[types.ApplicationStatus][]uuid.UUID, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT status, job_id FROM developer_applications
		 WHERE developer_id = $1
		 ORDER BY created_at, job_id`,
		developerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	lists := make(map[types.ApplicationStatus][]uuid.UUID)
	for rows.Next() {
		var (
			status string
			jobID  uuid.UUID
		)
		if err := rows.Scan(&status, &jobID); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		key := types.ApplicationStatus(status)
		lists[key] = append(lists[key], jobID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}
	return lists, nil
}
