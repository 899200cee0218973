package services

import (
	"shiftmate/internal/models"
	"shiftmate/internal/repositories"
	"shiftmate/internal/services/dto"
	"shiftmate/pkg/apperrors"

	"github.com/google/uuid"
)

type JobService interface {
	Create(ownerID string, req *dto.CreateJobRequest) (*models.Job, error)
	ListAll() ([]dto.JobWithCompany, error)
	Search(criteria repositories.JobSearchCriteria) ([]dto.JobWithCompany, error)
	ListByOwner(ownerID string) ([]models.Job, error)
	Delete(callerID, jobID string) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) Create(ownerID string, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		UserID:           ownerID,
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		Industry:         req.Industry,
		EmploymentType:   req.EmploymentType,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		DateStart:        req.DateStart,
		DateEnd:          req.DateEnd,
		TimeStart:        req.TimeStart,
		TimeEnd:          req.TimeEnd,
		IsActive:         true,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListAll() ([]dto.JobWithCompany, error) {
	jobs, err := s.jobRepo.ListAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toJobsWithCompany(jobs), nil
}

// Search требует хотя бы один фильтр; фильтры собираются конъюнктивно
func (s *JobServiceImpl) Search(criteria repositories.JobSearchCriteria) ([]dto.JobWithCompany, error) {
	if criteria.Empty() {
		return nil, apperrors.NewBadRequestError("At least one search parameter is required")
	}

	jobs, err := s.jobRepo.Search(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toJobsWithCompany(jobs), nil
}

func (s *JobServiceImpl) ListByOwner(ownerID string) ([]models.Job, error) {
	if err := uuid.Validate(ownerID); err != nil {
		return nil, apperrors.NewBadRequestError("Invalid user ID format")
	}

	jobs, err := s.jobRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// Delete разрешен только владельцу вакансии; зависимые отклики и
// сообщения удаляются вместе с ней (см. JobRepository.Delete).
func (s *JobServiceImpl) Delete(callerID, jobID string) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if job.UserID != callerID {
		return apperrors.ErrNotJobOwner
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func toJobsWithCompany(jobs []models.Job) []dto.JobWithCompany {
	result := make([]dto.JobWithCompany, 0, len(jobs))
	for _, job := range jobs {
		result = append(result, dto.NewJobWithCompany(job))
	}
	return result
}
