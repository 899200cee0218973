package dto

import (
	"time"
)

// SendMessageRequest - сообщение в рамках вакансии.
// Получатель не передается: им всегда становится владелец вакансии.
type SendMessageRequest struct {
	JobID   string `json:"job_id" validate:"required,uuid"`
	Content string `json:"content" validate:"required"`
}

// MarkReadRequest - отметка о прочтении
type MarkReadRequest struct {
	MessageID string `json:"message_id" validate:"required,uuid"`
}

// MessageSender - краткая карточка отправителя для списка сообщений
type MessageSender struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MessageView - строка списка сообщений с заголовком вакансии
// и данными отправителя
type MessageView struct {
	ID         string        `json:"id"`
	Content    string        `json:"content"`
	CreatedAt  time.Time     `json:"created_at"`
	JobID      string        `json:"job_id"`
	JobTitle   string        `json:"job_title"`
	IsRead     bool          `json:"is_read"`
	SenderID   string        `json:"sender_id"`
	ReceiverID string        `json:"receiver_id"`
	Sender     MessageSender `json:"sender"`
}

// UnreadCountResponse - счетчик непрочитанных
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
