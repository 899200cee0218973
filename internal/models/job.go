package models

// Job - объявление о смене. Даты и время хранятся строками как пришли:
// сервер их не интерпретирует (см. профиль/поиск - фильтры только по
// title/location/employment_type).
type Job struct {
	BaseModel
	UserID           string   `gorm:"type:uuid;not null;index" json:"user_id"`
	Title            string   `gorm:"not null" json:"title"`
	Description      string   `gorm:"not null" json:"description"`
	Location         string   `gorm:"not null" json:"location"`
	Industry         *string  `json:"industry,omitempty"`
	EmploymentType   *string  `json:"employment_type,omitempty"`
	SalaryMin        *float64 `json:"salary_min,omitempty"`
	SalaryMax        *float64 `json:"salary_max,omitempty"`
	Requirements     *string  `json:"requirements,omitempty"`
	Responsibilities *string  `json:"responsibilities,omitempty"`
	DateStart        *string  `json:"date_start,omitempty"`
	DateEnd          *string  `json:"date_end,omitempty"`
	TimeStart        *string  `json:"time_start,omitempty"`
	TimeEnd          *string  `json:"time_end,omitempty"`
	IsActive         bool     `gorm:"default:true" json:"is_active"`

	Owner *User `gorm:"foreignKey:UserID" json:"-"`
}
