package models

import (
	"gorm.io/datatypes"
)

// User хранит и общие, и ролевые поля профиля в одной таблице:
// company_* заполняются только у business, skills/availability/
// experience_years - только у worker. Пустые ролевые поля - это норма.
type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	UserType     UserType `gorm:"type:varchar(20);not null" json:"user_type"`

	// Общие опциональные поля профиля
	Phone    *string `json:"phone,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`

	// Business
	CompanyName    *string `json:"company_name,omitempty"`
	CompanyWebsite *string `json:"company_website,omitempty"`
	Industry       *string `json:"industry,omitempty"`

	// Worker
	Skills          datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`
	Availability    *string        `json:"availability,omitempty"`
	ExperienceYears *int           `json:"experience_years,omitempty"`
}
