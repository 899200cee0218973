package services

import (
	"encoding/json"
	"strings"

	"shiftmate/internal/models"
	"shiftmate/internal/repositories"
	"shiftmate/internal/services/dto"
	"shiftmate/pkg/apperrors"

	"gorm.io/datatypes"
)

type ProfileService interface {
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	GetUser(userID string) (*models.User, error)
	SearchWorkers(query *dto.WorkerSearchQuery) ([]models.User, error)
}

type ProfileServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewProfileService(userRepo repositories.UserRepository) ProfileService {
	return &ProfileServiceImpl{userRepo: userRepo}
}

// UpdateProfile пишет только присланные поля. Состав карты - whitelist:
// email, password и user_type через этот путь не меняются.
func (s *ProfileServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	if req.Empty() {
		return nil, apperrors.NewBadRequestError("No valid fields to update")
	}

	fields := map[string]interface{}{}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.CompanyWebsite != nil {
		fields["company_website"] = *req.CompanyWebsite
	}
	if req.Industry != nil {
		fields["industry"] = *req.Industry
	}
	if req.Skills != nil {
		skillsJSON, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		fields["skills"] = datatypes.JSON(skillsJSON)
	}
	if req.Availability != nil {
		fields["availability"] = *req.Availability
	}
	if req.ExperienceYears != nil {
		fields["experience_years"] = *req.ExperienceYears
	}

	user, err := s.userRepo.UpdateFields(userID, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *ProfileServiceImpl) GetUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// SearchWorkers требует хотя бы один фильтр. Skills приходит строкой
// через запятую; пустые элементы после разбиения отбрасываются.
func (s *ProfileServiceImpl) SearchWorkers(query *dto.WorkerSearchQuery) ([]models.User, error) {
	criteria := repositories.WorkerSearchCriteria{
		Availability: strings.TrimSpace(query.Availability),
	}
	for _, skill := range strings.Split(query.Skills, ",") {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			criteria.Skills = append(criteria.Skills, trimmed)
		}
	}

	if len(criteria.Skills) == 0 && criteria.Availability == "" {
		return nil, apperrors.NewBadRequestError("At least one search parameter is required")
	}

	workers, err := s.userRepo.SearchWorkers(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if workers == nil {
		workers = []models.User{}
	}
	return workers, nil
}
