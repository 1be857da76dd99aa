package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "mechmarket/internal/adapter/http/dto/request"
	response "mechmarket/internal/adapter/http/dto/response"
	"mechmarket/internal/usecase"
	"mechmarket/pkg"
)

var errInvalidNotificationPayload = pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_INPUT", "Invalid notification payload", http.StatusBadRequest)

// NotificationHandler exposes the unread counter and the seen watermark.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := c.Param("user_id")
	unread, err := h.usecase.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.UnreadCountResponse{UserID: userID, Unread: unread})
}

// MarkSeen advances the user's watermark to the given event. Marking an
// older event than the current watermark is a no-op.
func (h *NotificationHandler) MarkSeen(c *gin.Context) {
	var payload request.MarkSeenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}

	userID := c.Param("user_id")
	if err := h.usecase.MarkSeen(c.Request.Context(), userID, payload.EventID); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MarkSeenResponse{UserID: userID, EventID: payload.EventID})
}
