package repositories

import (
	"errors"

	"shiftmate/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound   = errors.New("application not found")
	ErrDuplicateApplication  = errors.New("application already exists for this user and job")
	ErrApplicationNotPending = errors.New("application is not pending")
)

type ApplicationRepository interface {
	CreateWithMessage(app *models.Application, msg *models.Message) error
	FindByUserAndJob(userID, jobID string) (*models.Application, error)
	ListByWorker(workerID string) ([]models.Application, error)
	Delete(userID, jobID string) error
	UpdateStatusIfPending(userID, jobID string, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// CreateWithMessage создает отклик и, если задано, вводное сообщение
// в одной транзакции. msg == nil - обычный отклик без сообщения.
// Нарушение уникального индекса (user_id, job_id) транслируется в
// ErrDuplicateApplication: это закрывает гонку двух конкурентных apply.
func (r *ApplicationRepositoryImpl) CreateWithMessage(app *models.Application, msg *models.Message) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		if msg != nil {
			if err := tx.Create(msg).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByUserAndJob(userID, jobID string) (*models.Application, error) {
	var app models.Application
	err := r.db.Where("user_id = ? AND job_id = ?", userID, jobID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByWorker(workerID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Job").Preload("Job.Owner").
		Where("user_id = ?", workerID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// Delete идемпотентен: удаление несуществующего отклика - не ошибка
func (r *ApplicationRepositoryImpl) Delete(userID, jobID string) error {
	return r.db.Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&models.Application{}).Error
}

// UpdateStatusIfPending переводит pending-отклик в финальный статус.
// Условие status='pending' входит в сам UPDATE, поэтому два
// конкурентных перехода не перезапишут друг друга.
func (r *ApplicationRepositoryImpl) UpdateStatusIfPending(userID, jobID string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ? AND status = ?", userID, jobID, models.ApplicationStatusPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Либо отклика нет, либо статус уже финальный
		if _, err := r.FindByUserAndJob(userID, jobID); err != nil {
			return err
		}
		return ErrApplicationNotPending
	}
	return nil
}
