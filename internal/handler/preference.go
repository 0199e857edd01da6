package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamerways/internal/redis"
	"kamerways/internal/service"
)

// PreferenceHandler handles HTTP requests for persisted UI preferences
// and the transient selected-route snapshot.
type PreferenceHandler struct {
	prefs       *redis.PreferenceStore
	authService *service.AuthService
	catalog     *service.CatalogService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(prefs *redis.PreferenceStore, authService *service.AuthService, catalog *service.CatalogService) *PreferenceHandler {
	return &PreferenceHandler{
		prefs:       prefs,
		authService: authService,
		catalog:     catalog,
	}
}

// PreferencesPayload carries language and theme over the wire.
type PreferencesPayload struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// Get handles GET /v1/preferences
func (h *PreferenceHandler) Get(c *gin.Context) {
	user, err := h.authService.Resolve(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	prefs, err := h.prefs.GetPreferences(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, PreferencesPayload{Language: prefs.Language, Theme: prefs.Theme})
}

// Set handles PUT /v1/preferences
func (h *PreferenceHandler) Set(c *gin.Context) {
	user, err := h.authService.Resolve(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	var req PreferencesPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	if err := h.prefs.SetPreferences(c.Request.Context(), user.ID, redis.Preferences{
		Language: req.Language,
		Theme:    req.Theme,
	}); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, req)
}

// SnapshotRequest is the HTTP request body for the selected-route snapshot.
type SnapshotRequest struct {
	RouteID string `json:"route_id"`
}

// SetSnapshot handles PUT /v1/wizard-snapshot, recording the route the
// user selected just before entering the wizard.
func (h *PreferenceHandler) SetSnapshot(c *gin.Context) {
	user, err := h.authService.Resolve(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	var req SnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	route, err := h.catalog.GetRoute(c.Request.Context(), req.RouteID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.prefs.SetRouteSnapshot(c.Request.Context(), user.ID, route); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toRouteResponse(route))
}

// GetSnapshot handles GET /v1/wizard-snapshot
func (h *PreferenceHandler) GetSnapshot(c *gin.Context) {
	user, err := h.authService.Resolve(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	route, err := h.prefs.GetRouteSnapshot(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if route == nil {
		respondJSON(c, http.StatusOK, gin.H{"route": nil})
		return
	}
	respondJSON(c, http.StatusOK, toRouteResponse(route))
}
