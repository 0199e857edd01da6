package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamerways/internal/repository"
)

// UserHandler handles HTTP requests for the admin user list.
type UserHandler struct {
	userRepo repository.UserRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// GetAll handles GET /v1/admin/users
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}
	respondJSON(c, http.StatusOK, response)
}
