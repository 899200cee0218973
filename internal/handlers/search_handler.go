package handlers

import (
	"net/http"

	"shiftmate/internal/repositories"
	"shiftmate/internal/services"
	"shiftmate/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	jobService     services.JobService
	profileService services.ProfileService
}

func NewSearchHandler(base *BaseHandler, jobService services.JobService, profileService services.ProfileService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:    base,
		jobService:     jobService,
		profileService: profileService,
	}
}

// RegisterRoutes регистрирует публичные поисковые маршруты
func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.SearchJobs)
	rg.GET("/search/users", h.SearchWorkers)
}

func (h *SearchHandler) SearchJobs(c *gin.Context) {
	var criteria repositories.JobSearchCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}

	jobs, err := h.jobService.Search(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *SearchHandler) SearchWorkers(c *gin.Context) {
	var query dto.WorkerSearchQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	workers, err := h.profileService.SearchWorkers(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workers)
}
