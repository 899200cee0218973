package repositories

import (
	"errors"

	"shiftmate/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	ListAll() ([]models.Job, error)
	ListByOwner(ownerID string) ([]models.Job, error)
	Search(criteria JobSearchCriteria) ([]models.Job, error)
	Delete(jobID string) error
	CountAll() (int64, error)
}

// JobSearchCriteria - фильтры публичного поиска, собираются конъюнктивно.
type JobSearchCriteria struct {
	Keyword        string `form:"keyword"`
	Location       string `form:"location"`
	EmploymentType string `form:"type"`
}

func (c JobSearchCriteria) Empty() bool {
	return c.Keyword == "" && c.Location == "" && c.EmploymentType == ""
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) ListAll() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("Owner").Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListByOwner возвращает все вакансии владельца, включая неактивные
func (r *JobRepositoryImpl) ListByOwner(ownerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) Search(criteria JobSearchCriteria) ([]models.Job, error) {
	query := r.db.Model(&models.Job{}).Preload("Owner")

	if criteria.Keyword != "" {
		query = query.Where("title ILIKE ?", "%"+criteria.Keyword+"%")
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.EmploymentType != "" {
		query = query.Where("employment_type = ?", criteria.EmploymentType)
	}

	var jobs []models.Job
	if err := query.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Delete жестко удаляет вакансию вместе с зависимыми откликами и
// сообщениями в одной транзакции: осиротевших строк не остается.
func (r *JobRepositoryImpl) Delete(jobID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Message{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", jobID).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}
