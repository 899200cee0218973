package services

import (
	"testing"

	"shiftmate/internal/models"
	"shiftmate/internal/repositories"
	"shiftmate/internal/services/dto"
	"shiftmate/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobFixture(t *testing.T, repo *fakeJobRepo, ownerID, title string) *models.Job {
	t.Helper()
	job := &models.Job{UserID: ownerID, Title: title, Description: "desc", Location: "Berlin"}
	require.NoError(t, repo.Create(job))
	return job
}

func TestJobCreate(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)

	employmentType := "part-time"
	job, err := svc.Create(uuid.NewString(), &dto.CreateJobRequest{
		Title:          "Barista",
		Description:    "Weekend shifts",
		Location:       "Berlin",
		EmploymentType: &employmentType,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.True(t, job.IsActive)
}

func TestJobSearch_RequiresFilter(t *testing.T) {
	svc := NewJobService(newFakeJobRepo())

	_, err := svc.Search(repositories.JobSearchCriteria{})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestJobSearch_Conjunctive(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)

	ownerID := uuid.NewString()
	newJobFixture(t, repo, ownerID, "Barista morning")
	match := newJobFixture(t, repo, ownerID, "Barista evening")
	match.Location = "Hamburg"

	jobs, err := svc.Search(repositories.JobSearchCriteria{Keyword: "barista", Location: "hamburg"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, match.ID, jobs[0].ID)
}

func TestJobListByOwner_InvalidID(t *testing.T) {
	svc := NewJobService(newFakeJobRepo())

	_, err := svc.ListByOwner("not-a-uuid")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestJobListByOwner_EmptyIsNotError(t *testing.T) {
	svc := NewJobService(newFakeJobRepo())

	jobs, err := svc.ListByOwner(uuid.NewString())
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestJobDelete_OwnerOnly(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)

	ownerID := uuid.NewString()
	job := newJobFixture(t, repo, ownerID, "Barista")

	err := svc.Delete(uuid.NewString(), job.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)

	require.NoError(t, svc.Delete(ownerID, job.ID))

	err = svc.Delete(ownerID, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestJobListAll_CompanyNameFallback(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)

	job := newJobFixture(t, repo, uuid.NewString(), "Barista")
	job.Owner = nil

	jobs, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Unknown", jobs[0].CompanyName)
}
