package handlers

import (
	"net/http"

	"shiftmate/internal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(base *BaseHandler, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  base,
		statsService: statsService,
	}
}

// RegisterRoutes регистрирует публичные счетчики для лендинга.
// Пути исторические, их знает SPA.
func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tot-post", h.TotalJobs)
	rg.GET("/tot-users", h.TotalUsers)
}

func (h *StatsHandler) TotalJobs(c *gin.Context) {
	totals, err := h.statsService.Totals()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": totals.TotalJobs})
}

func (h *StatsHandler) TotalUsers(c *gin.Context) {
	totals, err := h.statsService.Totals()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": totals.TotalUsers})
}
