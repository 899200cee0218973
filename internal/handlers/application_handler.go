package handlers

import (
	"net/http"

	"shiftmate/internal/middleware"
	"shiftmate/internal/models"
	"shiftmate/internal/services"
	"shiftmate/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

// RegisterRoutes регистрирует маршруты откликов. Все защищены токеном:
// работник действует от своего id из токена, работодатель меняет
// статусы только по своим вакансиям.
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authed := rg.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/apply", middleware.RoleMiddleware(string(models.UserTypeWorker)), h.Apply)
		authed.GET("/user/:id/applications", h.ListForWorker)
		authed.GET("/user/:id/applied-jobs", h.ListAppliedJobs)
		authed.POST("/applications/cancel", h.Cancel)
		authed.POST("/applications/change-status",
			middleware.RoleMiddleware(string(models.UserTypeBusiness)), h.ChangeStatus)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.appService.Apply(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Application submitted successfully",
		"data":    app,
	})
}

func (h *ApplicationHandler) ListForWorker(c *gin.Context) {
	userID, ok := h.RequireSelf(c, c.Param("id"))
	if !ok {
		return
	}

	apps, err := h.appService.ListForWorker(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListAppliedJobs(c *gin.Context) {
	userID, ok := h.RequireSelf(c, c.Param("id"))
	if !ok {
		return
	}

	jobs, err := h.appService.ListAppliedJobs(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *ApplicationHandler) Cancel(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CancelApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.appService.Cancel(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application cancelled successfully"})
}

func (h *ApplicationHandler) ChangeStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.appService.ChangeStatus(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application status updated"})
}
