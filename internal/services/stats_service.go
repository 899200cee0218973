package services

import (
	"shiftmate/internal/repositories"
	"shiftmate/internal/services/dto"
	"shiftmate/pkg/apperrors"
)

type StatsService interface {
	Totals() (*dto.StatsResponse, error)
}

type StatsServiceImpl struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
}

func NewStatsService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository) StatsService {
	return &StatsServiceImpl{userRepo: userRepo, jobRepo: jobRepo}
}

// Totals - публичные счетчики для лендинга
func (s *StatsServiceImpl) Totals() (*dto.StatsResponse, error) {
	users, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	jobs, err := s.jobRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.StatsResponse{TotalUsers: users, TotalJobs: jobs}, nil
}
