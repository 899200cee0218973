package repositories

import (
	"errors"

	"shiftmate/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(msg *models.Message) error
	FindByID(id string) (*models.Message, error)
	ListForUser(userID string) ([]models.Message, error)
	MarkRead(id string) error
	SetDeletedForRole(id string, role models.UserType) error
	CountUnread(userID string) (int64, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(msg *models.Message) error {
	return r.db.Create(msg).Error
}

func (r *MessageRepositoryImpl) FindByID(id string) (*models.Message, error) {
	var msg models.Message
	err := r.db.First(&msg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

// ListForUser возвращает все сообщения, где пользователь - отправитель
// или получатель, новые сверху. Фильтрация по флагу удаления для роли
// делается в сервисе: роль берется из токена, не из запроса.
func (r *MessageRepositoryImpl) ListForUser(userID string) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Preload("Sender").Preload("Job").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *MessageRepositoryImpl) MarkRead(id string) error {
	result := r.db.Model(&models.Message{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// SetDeletedForRole ставит флаг удаления для одной роли.
// Единственная точка выбора колонки role -> flag.
func (r *MessageRepositoryImpl) SetDeletedForRole(id string, role models.UserType) error {
	column := "deleted_by_worker"
	if role == models.UserTypeBusiness {
		column = "deleted_by_business"
	}

	result := r.db.Model(&models.Message{}).Where("id = ?", id).Update(column, true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepositoryImpl) CountUnread(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
