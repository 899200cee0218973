package services

import (
	"shiftmate/internal/models"
	"shiftmate/internal/repositories"
	"shiftmate/internal/services/dto"
	"shiftmate/pkg/apperrors"
)

type MessageService interface {
	Send(senderID string, req *dto.SendMessageRequest) (*models.Message, error)
	ListForUser(userID string, role models.UserType) ([]dto.MessageView, error)
	MarkRead(callerID string, req *dto.MarkReadRequest) error
	SoftDelete(callerID string, role models.UserType, messageID string) error
	UnreadCount(userID string) (int64, error)
}

type MessageServiceImpl struct {
	msgRepo repositories.MessageRepository
	jobRepo repositories.JobRepository
}

func NewMessageService(msgRepo repositories.MessageRepository, jobRepo repositories.JobRepository) MessageService {
	return &MessageServiceImpl{msgRepo: msgRepo, jobRepo: jobRepo}
}

// Send отправляет сообщение в рамках вакансии. Получатель не
// передается клиентом: им всегда становится владелец вакансии.
func (s *MessageServiceImpl) Send(senderID string, req *dto.SendMessageRequest) (*models.Message, error) {
	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: job.UserID,
		JobID:      job.ID,
		Content:    req.Content,
	}

	if err := s.msgRepo.Create(msg); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return msg, nil
}

// ListForUser возвращает переписку пользователя без сообщений,
// скрытых им самим. Роль берется из токена: она определяет, какой
// из двух флагов удаления отфильтровывает строку.
func (s *MessageServiceImpl) ListForUser(userID string, role models.UserType) ([]dto.MessageView, error) {
	msgs, err := s.msgRepo.ListForUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.MessageView, 0, len(msgs))
	for _, msg := range msgs {
		if deletedForRole(&msg, role) {
			continue
		}

		view := dto.MessageView{
			ID:         msg.ID,
			Content:    msg.Content,
			CreatedAt:  msg.CreatedAt,
			JobID:      msg.JobID,
			IsRead:     msg.IsRead,
			SenderID:   msg.SenderID,
			ReceiverID: msg.ReceiverID,
		}
		if msg.Job != nil {
			view.JobTitle = msg.Job.Title
		}
		if msg.Sender != nil {
			view.Sender = dto.MessageSender{
				ID:    msg.Sender.ID,
				Name:  msg.Sender.Name,
				Email: msg.Sender.Email,
			}
		}
		result = append(result, view)
	}
	return result, nil
}

// MarkRead отмечает сообщение прочитанным. Разрешено только получателю.
func (s *MessageServiceImpl) MarkRead(callerID string, req *dto.MarkReadRequest) error {
	msg, err := s.msgRepo.FindByID(req.MessageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return apperrors.InternalError(err)
	}

	if msg.ReceiverID != callerID {
		return apperrors.ErrNotMessageReceiver
	}

	if err := s.msgRepo.MarkRead(req.MessageID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// SoftDelete скрывает сообщение для стороны вызывающего. Вторая
// сторона продолжает его видеть; строка из БД не удаляется.
func (s *MessageServiceImpl) SoftDelete(callerID string, role models.UserType, messageID string) error {
	msg, err := s.msgRepo.FindByID(messageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return apperrors.InternalError(err)
	}

	if msg.SenderID != callerID && msg.ReceiverID != callerID {
		return apperrors.ErrNotMessageParticipant
	}

	if err := s.msgRepo.SetDeletedForRole(messageID, role); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *MessageServiceImpl) UnreadCount(userID string) (int64, error) {
	count, err := s.msgRepo.CountUnread(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func deletedForRole(msg *models.Message, role models.UserType) bool {
	if role == models.UserTypeBusiness {
		return msg.DeletedByBusiness
	}
	return msg.DeletedByWorker
}
