package dto

import (
	"shiftmate/internal/models"
)

// ApplyRequest - отклик на вакансию. Message опционален: если он задан,
// отклик и вводное сообщение владельцу создаются одной транзакцией.
type ApplyRequest struct {
	JobID   string `json:"job_id" validate:"required,uuid"`
	Message string `json:"message,omitempty"`
}

// CancelApplicationRequest - отмена собственного отклика
type CancelApplicationRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

// ChangeStatusRequest - перевод отклика в финальный статус владельцем
// вакансии. UserID - работник, чей отклик меняется.
type ChangeStatusRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	JobID  string `json:"job_id" validate:"required,uuid"`
	Status string `json:"status" validate:"required,is-application-status"`
}

// ApplicationWithJob - отклик вместе с вакансией и данными компании
type ApplicationWithJob struct {
	ID     string                   `json:"id"`
	JobID  string                   `json:"job_id"`
	Status models.ApplicationStatus `json:"status"`
	Job    *JobWithCompanyContacts  `json:"jobs,omitempty"`
}

// JobWithCompanyContacts - вакансия с контактами компании,
// денормализованными на чтении (в БД не хранятся).
type JobWithCompanyContacts struct {
	models.Job
	CompanyName    *string `json:"company_name"`
	CompanyWebsite *string `json:"company_website"`
}

// AppliedJobShort - узкая проекция для дашборда работника
type AppliedJobShort struct {
	ID               string                   `json:"id"`
	Title            string                   `json:"title"`
	Location         string                   `json:"location"`
	Industry         *string                  `json:"industry,omitempty"`
	EmploymentType   *string                  `json:"employment_type,omitempty"`
	SalaryMin        *float64                 `json:"salary_min,omitempty"`
	SalaryMax        *float64                 `json:"salary_max,omitempty"`
	DateStart        *string                  `json:"date_start,omitempty"`
	DateEnd          *string                  `json:"date_end,omitempty"`
	TimeStart        *string                  `json:"time_start,omitempty"`
	TimeEnd          *string                  `json:"time_end,omitempty"`
	Requirements     *string                  `json:"requirements,omitempty"`
	Responsibilities *string                  `json:"responsibilities,omitempty"`
	Status           models.ApplicationStatus `json:"status"`
}
