package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kamerways/internal/domain"
	"kamerways/internal/service"
)

// AuthHandler handles HTTP requests for login sessions.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the HTTP request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the HTTP representation of a user.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// LoginResponse is the HTTP response for a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  string(u.Role),
	}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, LoginResponse{
		Token: session.Token,
		User:  toUserResponse(&session.User),
	})
}

// Logout handles POST /v1/auth/logout. Always succeeds; logging out an
// already-cleared session is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			respondError(c, err)
			return
		}
	}
	respondJSON(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Resolve(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// bearerToken extracts the opaque token from the Authorization header.
func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	return strings.TrimPrefix(auth, "Bearer ")
}
