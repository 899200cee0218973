package models

// Application - отклик работника на вакансию.
// Уникальный индекс на (user_id, job_id) - гарантия "не больше одного
// отклика на пару" даже при конкурентных запросах; проверка в сервисе
// нужна только для понятного 409.
type Application struct {
	BaseModel
	UserID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"user_id"`
	JobID  string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"job_id"`
	Status ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Job *Job `gorm:"foreignKey:JobID" json:"-"`
}
