package models

// Message привязано к вакансии; receiver_id фиксируется в момент
// отправки (владелец вакансии) и дальше не пересчитывается.
// Два флага удаления независимы: каждый скрывает сообщение только
// для своей роли, обратного перехода нет.
type Message struct {
	BaseModel
	SenderID          string `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID        string `gorm:"type:uuid;not null;index" json:"receiver_id"`
	JobID             string `gorm:"type:uuid;not null;index" json:"job_id"`
	Content           string `gorm:"not null" json:"content"`
	IsRead            bool   `gorm:"default:false" json:"is_read"`
	DeletedByWorker   bool   `gorm:"default:false" json:"deleted_by_worker"`
	DeletedByBusiness bool   `gorm:"default:false" json:"deleted_by_business"`

	Sender *User `gorm:"foreignKey:SenderID" json:"-"`
	Job    *Job  `gorm:"foreignKey:JobID" json:"-"`
}
