package services

import (
	"encoding/json"
	"testing"

	"shiftmate/internal/models"
	"shiftmate/internal/services/dto"
	"shiftmate/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func strPtr(s string) *string { return &s }

func newWorker(t *testing.T, repo *fakeUserRepo, email string, skills []string, availability string) *models.User {
	t.Helper()
	var skillsJSON datatypes.JSON
	if skills != nil {
		raw, err := json.Marshal(skills)
		require.NoError(t, err)
		skillsJSON = raw
	}
	user := &models.User{
		Name:         "Worker",
		Email:        email,
		PasswordHash: "hash",
		UserType:     models.UserTypeWorker,
		Skills:       skillsJSON,
	}
	if availability != "" {
		user.Availability = &availability
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestUpdateProfile_EmptyRequest(t *testing.T) {
	svc := NewProfileService(newFakeUserRepo())

	_, err := svc.UpdateProfile(uuid.NewString(), &dto.UpdateProfileRequest{})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestUpdateProfile_PartialUpdateLeavesOtherFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewProfileService(repo)

	user := newWorker(t, repo, "w@example.com", nil, "")
	user.Bio = strPtr("old bio")

	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		Phone: strPtr("+49123"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+49123", *updated.Phone)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "old bio", *updated.Bio)
}

func TestUpdateProfile_SkillsStoredAsJSON(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewProfileService(repo)

	user := newWorker(t, repo, "w@example.com", nil, "")

	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		Skills: []string{"barista", "cashier"},
	})
	require.NoError(t, err)

	var skills []string
	require.NoError(t, json.Unmarshal(updated.Skills, &skills))
	assert.Equal(t, []string{"barista", "cashier"}, skills)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc := NewProfileService(newFakeUserRepo())

	_, err := svc.UpdateProfile(uuid.NewString(), &dto.UpdateProfileRequest{Phone: strPtr("+49123")})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSearchWorkers_RequiresFilter(t *testing.T) {
	svc := NewProfileService(newFakeUserRepo())

	_, err := svc.SearchWorkers(&dto.WorkerSearchQuery{})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)

	// Запятые без навыков - тоже пустой фильтр
	_, err = svc.SearchWorkers(&dto.WorkerSearchQuery{Skills: " , ,"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestSearchWorkers_AllSkillsRequired(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewProfileService(repo)

	match := newWorker(t, repo, "a@example.com", []string{"barista", "cashier"}, "weekends")
	newWorker(t, repo, "b@example.com", []string{"barista"}, "weekends")

	workers, err := svc.SearchWorkers(&dto.WorkerSearchQuery{Skills: "barista, cashier"})
	require.NoError(t, err)
	require.Len(t, workers, 1)
	assert.Equal(t, match.ID, workers[0].ID)
}

func TestSearchWorkers_AvailabilityFilter(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewProfileService(repo)

	match := newWorker(t, repo, "a@example.com", []string{"barista"}, "weekends")
	newWorker(t, repo, "b@example.com", []string{"barista"}, "evenings")

	workers, err := svc.SearchWorkers(&dto.WorkerSearchQuery{Availability: "weekends"})
	require.NoError(t, err)
	require.Len(t, workers, 1)
	assert.Equal(t, match.ID, workers[0].ID)
}

func TestSearchWorkers_EmptyResultIsNotError(t *testing.T) {
	svc := NewProfileService(newFakeUserRepo())

	workers, err := svc.SearchWorkers(&dto.WorkerSearchQuery{Availability: "weekends"})
	require.NoError(t, err)
	assert.NotNil(t, workers)
	assert.Empty(t, workers)
}

func TestStatsTotals(t *testing.T) {
	userRepo := newFakeUserRepo()
	jobRepo := newFakeJobRepo()
	svc := NewStatsService(userRepo, jobRepo)

	newWorker(t, userRepo, "a@example.com", nil, "")
	newJobFixture(t, jobRepo, uuid.NewString(), "Barista")
	newJobFixture(t, jobRepo, uuid.NewString(), "Cashier")

	totals, err := svc.Totals()
	require.NoError(t, err)
	assert.Equal(t, int64(1), totals.TotalUsers)
	assert.Equal(t, int64(2), totals.TotalJobs)
}
