package repositories

import (
	"encoding/json"
	"errors"
	"strings"

	"shiftmate/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	UpdateFields(userID string, fields map[string]interface{}) (*models.User, error)
	SearchWorkers(criteria WorkerSearchCriteria) ([]models.User, error)
	CountAll() (int64, error)
}

// WorkerSearchCriteria - фильтры дашборда работодателя.
// Skills - AND-семантика: работник должен владеть всеми перечисленными.
type WorkerSearchCriteria struct {
	Skills       []string
	Availability string
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	if err := r.db.Create(user).Error; err != nil {
		// Гонка двух регистраций: уникальный индекс по email срабатывает
		// после пройденной проверки существования.
		if isDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateFields пишет только переданные колонки; состав карты
// контролирует сервис (whitelist в ProfileService).
func (r *UserRepositoryImpl) UpdateFields(userID string, fields map[string]interface{}) (*models.User, error) {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return r.FindByID(userID)
}

func (r *UserRepositoryImpl) SearchWorkers(criteria WorkerSearchCriteria) ([]models.User, error) {
	query := r.db.Model(&models.User{}).Where("user_type = ?", models.UserTypeWorker)

	if len(criteria.Skills) > 0 {
		skillsJSON, err := json.Marshal(criteria.Skills)
		if err != nil {
			return nil, err
		}
		// JSONB containment: у работника должны быть все запрошенные навыки
		query = query.Where("skills::jsonb @> ?", datatypes.JSON(skillsJSON))
	}

	if criteria.Availability != "" {
		query = query.Where("availability = ?", criteria.Availability)
	}

	var workers []models.User
	if err := query.Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *UserRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// isDuplicateKeyError распознает нарушение уникального индекса Postgres
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key value")
}
