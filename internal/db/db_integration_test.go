//go:build integration

package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/devmatch/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.EnsureSchema(ctx))
	t.Cleanup(db.Close)
	return db
}

func insertJob(t *testing.T, db *DB, doc string) *types.JobPosting {
	t.Helper()
	job, err := db.UpsertJobPosting(context.Background(), []byte(doc))
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.pool.Exec(context.Background(), "DELETE FROM job_postings WHERE id = $1", job.ID)
	})
	return job
}

func TestIntegration_DeveloperProfile_RoundTrip(t *testing.T) {
	db := getTestDB(t)
	ctx := context.Background()
	developerID := uuid.New()
	t.Cleanup(func() {
		_, _ = db.pool.Exec(ctx, "DELETE FROM developer_profiles WHERE developer_id = $1", developerID)
	})

	missing, err := db.GetDeveloperProfile(ctx, developerID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = db.UpsertDeveloperProfile(ctx, developerID, []byte(`{
		"professionalDetails": {"skills": ["Go"], "yearsOfExperience": 3},
		"workMode": "Remote"
	}`))
	require.NoError(t, err)

	profile, err := db.GetDeveloperProfile(ctx, developerID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, developerID, profile.DeveloperID)
	assert.Equal(t, []string{"Go"}, profile.Skills.Values)
	assert.Equal(t, 3, profile.YearsOfExperience)
	assert.Equal(t, types.WorkModeRemote, profile.WorkMode)

	_, err = db.UpsertDeveloperProfile(ctx, developerID, []byte(`[]`))
	assert.True(t, types.IsInvalidInput(err))
}

func TestIntegration_ListEligibleJobs(t *testing.T) {
	db := getTestDB(t)
	ctx := context.Background()
	developerID := uuid.New()
	now := time.Now().UTC()
	future := now.Add(72 * time.Hour).Format(time.RFC3339)
	past := now.Add(-72 * time.Hour).Format(time.RFC3339)
	suffix := uuid.NewString()[:8]

	open := insertJob(t, db, fmt.Sprintf(`{"jobTitle": "Open %s", "companyName": "Eligible Co %s", "lastDateToApply": %q}`, suffix, suffix, future))
	anonymous := insertJob(t, db, fmt.Sprintf(`{"jobTitle": "Anonymous %s", "lastDateToApply": %q}`, suffix, future))
	expired := insertJob(t, db, fmt.Sprintf(`{"jobTitle": "Expired %s", "lastDateToApply": %q}`, suffix, past))
	closed := insertJob(t, db, fmt.Sprintf(`{"jobTitle": "Closed %s", "lastDateToApply": %q, "acceptingApplications": false}`, suffix, future))
	swiped := insertJob(t, db, fmt.Sprintf(`{"jobTitle": "Swiped %s", "lastDateToApply": %q}`, suffix, future))
	t.Cleanup(func() {
		_, _ = db.pool.Exec(ctx, "DELETE FROM companies WHERE name_normalized = $1", NormalizeName("Eligible Co "+suffix))
	})

	_, err := db.RecordSwipe(ctx, developerID, swiped.ID, types.SwipeLeft)
	require.NoError(t, err)

	jobs, err := db.ListEligibleJobs(ctx, developerID, now)
	require.NoError(t, err)

	byID := make(map[uuid.UUID]types.JobPosting)
	for _, job := range jobs {
		byID[job.ID] = job
	}
	require.Contains(t, byID, open.ID)
	require.Contains(t, byID, anonymous.ID)
	assert.NotContains(t, byID, expired.ID)
	assert.NotContains(t, byID, closed.ID)
	assert.NotContains(t, byID, swiped.ID)

	assert.Equal(t, "Eligible Co "+suffix, byID[open.ID].CompanyName)
	assert.Equal(t, types.DefaultCompanyName, byID[anonymous.ID].CompanyName)

	lists, err := db.ListApplications(ctx, developerID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{swiped.ID}, lists[types.ApplicationRejected])
}

func TestIntegration_RecordSwipe_UnknownJob(t *testing.T) {
	db := getTestDB(t)

	_, err := db.RecordSwipe(context.Background(), uuid.New(), uuid.New(), types.SwipeRight)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrJobNotFound))
}

func TestIntegration_SetAcceptingApplications(t *testing.T) {
	db := getTestDB(t)
	ctx := context.Background()
	job := insertJob(t, db, `{"jobTitle": "Toggle"}`)

	require.NoError(t, db.SetAcceptingApplications(ctx, job.ID, false))
	assert.Error(t, db.SetAcceptingApplications(ctx, uuid.New(), false))
}
