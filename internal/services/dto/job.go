package dto

import (
	"shiftmate/internal/models"
)

// CreateJobRequest - объявление о смене. Обязательны только
// title/description/location; остальное сохраняется как есть.
type CreateJobRequest struct {
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	Location         string   `json:"location" validate:"required"`
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
}

// JobWithCompany - вакансия с денормализованным именем компании владельца
type JobWithCompany struct {
	models.Job
	CompanyName string `json:"company_name"`
}

// NewJobWithCompany подставляет "Unknown", если профиль владельца
// не заполнен (company_name опционален до завершения профиля).
func NewJobWithCompany(job models.Job) JobWithCompany {
	companyName := "Unknown"
	if job.Owner != nil && job.Owner.CompanyName != nil && *job.Owner.CompanyName != "" {
		companyName = *job.Owner.CompanyName
	}
	return JobWithCompany{Job: job, CompanyName: companyName}
}
