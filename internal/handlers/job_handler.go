package handlers

import (
	"net/http"

	"shiftmate/internal/middleware"
	"shiftmate/internal/models"
	"shiftmate/internal/services"
	"shiftmate/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes регистрирует маршруты вакансий.
// Листинг публичный; создание и удаление - только с токеном,
// создание дополнительно требует роль business.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/job", h.ListAll)

	authed := rg.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/job", middleware.RoleMiddleware(string(models.UserTypeBusiness)), h.Create)
		authed.DELETE("/jobs/:id", h.Delete)
		authed.GET("/user/:id/jobs", h.ListByOwner)
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job created successfully",
		"data":    job,
	})
}

func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.jobService.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) ListByOwner(c *gin.Context) {
	ownerID := c.Param("id")

	jobs, err := h.jobService.ListByOwner(ownerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
