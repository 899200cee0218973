package handlers

import (
	"net/http"

	"shiftmate/internal/middleware"
	"shiftmate/internal/services"
	"shiftmate/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	msgService services.MessageService
}

func NewMessageHandler(base *BaseHandler, msgService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler: base,
		msgService:  msgService,
	}
}

// RegisterRoutes регистрирует маршруты переписки. Все защищены токеном;
// userId в пути сверяется с id из токена, userType из запроса не читается.
func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authed := rg.Group("/messages")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.Send)
		authed.PATCH("/mark-read", h.MarkRead)
		// Один параметр :id на оба маршрута: gin не допускает разные
		// имена параметров в одной позиции сегмента
		authed.GET("/:id/all", h.ListForUser)
		authed.PATCH("/:id/delete", h.SoftDelete)
		authed.GET("/unread-count/:id", h.UnreadCount)
	}
}

func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	msg, err := h.msgService.Send(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"data":    msg,
	})
}

func (h *MessageHandler) ListForUser(c *gin.Context) {
	userID, ok := h.RequireSelf(c, c.Param("id"))
	if !ok {
		return
	}

	msgs, err := h.msgService.ListForUser(userID, h.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, msgs)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.MarkReadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.msgService.MarkRead(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

func (h *MessageHandler) SoftDelete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.msgService.SoftDelete(userID, h.GetRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}

func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID, ok := h.RequireSelf(c, c.Param("id"))
	if !ok {
		return
	}

	count, err := h.msgService.UnreadCount(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}
