package dto

// UpdateProfileRequest - частичное обновление профиля.
// Все поля опциональны; присланные проходят whitelist-проверку
// по типу, остальные не трогаются.
type UpdateProfileRequest struct {
	Phone    *string `json:"phone,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`

	// Business
	CompanyName    *string `json:"company_name,omitempty"`
	CompanyWebsite *string `json:"company_website,omitempty" validate:"omitempty,url"`
	Industry       *string `json:"industry,omitempty"`

	// Worker
	Skills          []string `json:"skills,omitempty"`
	Availability    *string  `json:"availability,omitempty"`
	ExperienceYears *int     `json:"experience_years,omitempty" validate:"omitempty,gte=0"`
}

// Empty сообщает, что ни одно распознанное поле не прислано
func (r *UpdateProfileRequest) Empty() bool {
	return r.Phone == nil && r.Bio == nil && r.Location == nil &&
		r.CompanyName == nil && r.CompanyWebsite == nil && r.Industry == nil &&
		r.Skills == nil && r.Availability == nil && r.ExperienceYears == nil
}

// WorkerSearchQuery - параметры поиска работников.
// Skills приходит строкой через запятую, как шлет SPA.
type WorkerSearchQuery struct {
	Skills       string `form:"skills"`
	Availability string `form:"availability"`
}
