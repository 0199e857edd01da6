package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamerways/internal/domain"
	"kamerways/internal/service"
)

// NotificationHandler handles HTTP requests for user notifications.
type NotificationHandler struct {
	notificationService *service.NotificationService
	authService         *service.AuthService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *service.NotificationService, authService *service.AuthService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		authService:         authService,
	}
}

// NotificationResponse is the HTTP representation of a notification.
type NotificationResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

func toNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// List handles GET /v1/notifications for the signed-in user.
func (h *NotificationHandler) List(c *gin.Context) {
	user, err := h.authService.Resolve(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	notifications, err := h.notificationService.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, toNotificationResponse(n))
	}
	respondJSON(c, http.StatusOK, response)
}

// MarkRead handles POST /v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notificationService.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, gin.H{"message": "notification read"})
}
