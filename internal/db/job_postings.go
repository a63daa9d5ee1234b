package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/devmatch/internal/types"
)

// listEligibleJobsQuery selects the open postings a developer has not yet acted on.
// The company name from the companies table wins over the one stored in the document.
const listEligibleJobsQuery = `
SELECT jp.id, jp.company_id, COALESCE(c.name, ''), jp.document
FROM job_postings jp
LEFT JOIN companies c ON c.id = jp.company_id
WHERE jp.accepting_applications
  AND jp.last_date_to_apply >= $2
  AND NOT EXISTS (
      SELECT 1 FROM developer_applications da
      WHERE da.developer_id = $1 AND da.job_id = jp.id
  )
ORDER BY jp.created_at, jp.id`

// ListEligibleJobs returns postings that accept applications, have a deadline at or after now,
// and are not in any of the developer's application lists, in creation order.
func (db *DB) ListEligibleJobs(ctx context.Context, developerID uuid.UUID, now time.Time) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx, listEligibleJobsQuery, developerID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobPosting
	for rows.Next() {
		job, err := scanJobPosting(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate eligible jobs: %w", err)
	}
	return jobs, nil
}

// scanJobPosting decodes one row of (id, company_id, company_name, document).
func scanJobPosting(rows pgx.Rows) (*types.JobPosting, error) {
	var (
		id          uuid.UUID
		companyID   *uuid.UUID
		companyName string
		document    []byte
	)
	if err := rows.Scan(&id, &companyID, &companyName, &document); err != nil {
		return nil, fmt.Errorf("failed to scan job posting: %w", err)
	}

	job, err := types.ParseJobPosting(document)
	if err != nil {
		return nil, fmt.Errorf("stored job %s is unusable: %w", id, err)
	}
	job.ID = id
	job.CompanyID = companyID
	resolveCompanyName(job, companyName)
	return job, nil
}

// resolveCompanyName prefers the joined company name, then the document's, then the default.
func resolveCompanyName(job *types.JobPosting, joined string) {
	switch {
	case joined != "":
		job.CompanyName = joined
	case job.CompanyName == "":
		job.CompanyName = types.DefaultCompanyName
	}
}

// UpsertJobPosting stores a job document. The id, deadline and accepting flag are
// lifted into columns; a posting without an id gets a new one. A company name in the
// document is resolved to a companies row when no company id is given.
func (db *DB) UpsertJobPosting(ctx context.Context, document []byte) (*types.JobPosting, error) {
	job, err := types.ParseJobPosting(document)
	if err != nil {
		return nil, err
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.CompanyID == nil && job.CompanyName != types.DefaultCompanyName {
		company, err := db.FindOrCreateCompany(ctx, job.CompanyName)
		if err != nil {
			return nil, err
		}
		job.CompanyID = &company.ID
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_postings (id, company_id, document, last_date_to_apply, accepting_applications)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET
		     company_id = COALESCE($2, job_postings.company_id),
		     document = $3,
		     last_date_to_apply = $4,
		     accepting_applications = $5,
		     updated_at = NOW()`,
		job.ID, job.CompanyID, document, job.LastDateToApply, job.AcceptingApplications,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert job posting: %w", err)
	}
	return job, nil
}

// SetAcceptingApplications opens or closes a posting.
func (db *DB) SetAcceptingApplications(ctx context.Context, jobID uuid.UUID, accepting bool) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE job_postings SET accepting_applications = $2, updated_at = NOW() WHERE id = $1`,
		jobID, accepting,
	)
	if err != nil {
		return fmt.Errorf("failed to update job posting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job posting not found: %s", jobID)
	}
	return nil
}
