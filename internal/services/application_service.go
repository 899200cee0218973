package services

import (
	"shiftmate/internal/models"
	"shiftmate/internal/repositories"
	"shiftmate/internal/services/dto"
	"shiftmate/pkg/apperrors"
)

type ApplicationService interface {
	Apply(workerID string, req *dto.ApplyRequest) (*models.Application, error)
	ListForWorker(workerID string) ([]dto.ApplicationWithJob, error)
	ListAppliedJobs(workerID string) ([]dto.AppliedJobShort, error)
	Cancel(workerID string, req *dto.CancelApplicationRequest) error
	ChangeStatus(callerID string, req *dto.ChangeStatusRequest) error
}

type ApplicationServiceImpl struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
}

func NewApplicationService(appRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository) ApplicationService {
	return &ApplicationServiceImpl{appRepo: appRepo, jobRepo: jobRepo}
}

// Apply создает отклик работника на вакансию. Если передано message,
// вводное сообщение владельцу вакансии создается той же транзакцией:
// либо появляются оба, либо ничего.
func (s *ApplicationServiceImpl) Apply(workerID string, req *dto.ApplyRequest) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	app := &models.Application{
		UserID: workerID,
		JobID:  job.ID,
		Status: models.ApplicationStatusPending,
	}

	var msg *models.Message
	if req.Message != "" {
		msg = &models.Message{
			SenderID:   workerID,
			ReceiverID: job.UserID,
			JobID:      job.ID,
			Content:    req.Message,
		}
	}

	if err := s.appRepo.CreateWithMessage(app, msg); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	return app, nil
}

// ListForWorker отдает отклики работника вместе с вакансиями и
// контактами компаний. Пустой список - валидный ответ.
func (s *ApplicationServiceImpl) ListForWorker(workerID string) ([]dto.ApplicationWithJob, error) {
	apps, err := s.appRepo.ListByWorker(workerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.ApplicationWithJob, 0, len(apps))
	for _, app := range apps {
		item := dto.ApplicationWithJob{
			ID:     app.ID,
			JobID:  app.JobID,
			Status: app.Status,
		}
		if app.Job != nil {
			withContacts := &dto.JobWithCompanyContacts{Job: *app.Job}
			if app.Job.Owner != nil {
				withContacts.CompanyName = app.Job.Owner.CompanyName
				withContacts.CompanyWebsite = app.Job.Owner.CompanyWebsite
			}
			item.Job = withContacts
		}
		result = append(result, item)
	}
	return result, nil
}

// ListAppliedJobs - узкая проекция для дашборда работника:
// вакансия плюс статус отклика. Отклики на удаленные вакансии
// пропускаются.
func (s *ApplicationServiceImpl) ListAppliedJobs(workerID string) ([]dto.AppliedJobShort, error) {
	apps, err := s.appRepo.ListByWorker(workerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.AppliedJobShort, 0, len(apps))
	for _, app := range apps {
		if app.Job == nil {
			continue
		}
		result = append(result, dto.AppliedJobShort{
			ID:               app.Job.ID,
			Title:            app.Job.Title,
			Location:         app.Job.Location,
			Industry:         app.Job.Industry,
			EmploymentType:   app.Job.EmploymentType,
			SalaryMin:        app.Job.SalaryMin,
			SalaryMax:        app.Job.SalaryMax,
			DateStart:        app.Job.DateStart,
			DateEnd:          app.Job.DateEnd,
			TimeStart:        app.Job.TimeStart,
			TimeEnd:          app.Job.TimeEnd,
			Requirements:     app.Job.Requirements,
			Responsibilities: app.Job.Responsibilities,
			Status:           app.Status,
		})
	}
	return result, nil
}

// Cancel удаляет собственный отклик работника. Идемпотентен.
func (s *ApplicationServiceImpl) Cancel(workerID string, req *dto.CancelApplicationRequest) error {
	if err := s.appRepo.Delete(workerID, req.JobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ChangeStatus переводит pending-отклик в accepted/rejected.
// Разрешено только владельцу вакансии; финальный статус неизменяем.
func (s *ApplicationServiceImpl) ChangeStatus(callerID string, req *dto.ChangeStatusRequest) error {
	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if job.UserID != callerID {
		return apperrors.ErrNotJobOwner
	}

	err = s.appRepo.UpdateStatusIfPending(req.UserID, req.JobID, models.ApplicationStatus(req.Status))
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrApplicationNotFound):
			return apperrors.ErrApplicationNotFound
		case apperrors.Is(err, repositories.ErrApplicationNotPending):
			return apperrors.ErrApplicationNotPending
		default:
			return apperrors.InternalError(err)
		}
	}
	return nil
}
