package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"florist-backend/internal/domains/notification/service"
	"florist-backend/internal/shared/response"
)

type NotificationHandler struct {
	dispatcher service.DispatcherInterface
}

func NewNotificationHandler(dispatcher service.DispatcherInterface) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher}
}

// SelfTest verifies every transport is reachable (admin health check).
// GET /api/v1/admin/notifications/self-test
func (h *NotificationHandler) SelfTest(c *gin.Context) {
	results := h.dispatcher.SelfTest(c.Request.Context())
	response.Success(c, http.StatusOK, results)
}
