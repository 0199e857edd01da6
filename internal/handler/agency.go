package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamerways/internal/domain"
	"kamerways/internal/service"
)

// AgencyHandler handles HTTP requests for agencies.
type AgencyHandler struct {
	catalog *service.CatalogService
}

// NewAgencyHandler creates a new AgencyHandler.
func NewAgencyHandler(catalog *service.CatalogService) *AgencyHandler {
	return &AgencyHandler{catalog: catalog}
}

// AgencyResponse is the HTTP representation of an agency.
type AgencyResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	City        string  `json:"city"`
	Rating      float64 `json:"rating"`
	RouteCount  int     `json:"route_count"`
}

// AgencyRequest is the HTTP request body for creating or updating an agency.
type AgencyRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	City        string  `json:"city"`
	Rating      float64 `json:"rating"`
}

func toAgencyResponse(a *domain.Agency) AgencyResponse {
	return AgencyResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Phone:       a.Phone,
		Email:       a.Email,
		City:        a.City,
		Rating:      a.Rating,
		RouteCount:  a.RouteCount,
	}
}

// List handles GET /v1/agencies
func (h *AgencyHandler) List(c *gin.Context) {
	agencies, err := h.catalog.ListAgencies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]AgencyResponse, 0, len(agencies))
	for _, a := range agencies {
		response = append(response, toAgencyResponse(a))
	}
	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/agencies/:id
func (h *AgencyHandler) Get(c *gin.Context) {
	agency, err := h.catalog.GetAgency(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toAgencyResponse(agency))
}

// Create handles POST /v1/admin/agencies
func (h *AgencyHandler) Create(c *gin.Context) {
	var req AgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	agency := &domain.Agency{
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		Email:       req.Email,
		City:        req.City,
		Rating:      req.Rating,
	}
	if err := h.catalog.CreateAgency(c.Request.Context(), agency); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toAgencyResponse(agency))
}

// Update handles PUT /v1/admin/agencies/:id
func (h *AgencyHandler) Update(c *gin.Context) {
	var req AgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	agency := &domain.Agency{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		Email:       req.Email,
		City:        req.City,
		Rating:      req.Rating,
	}
	if err := h.catalog.UpdateAgency(c.Request.Context(), agency); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toAgencyResponse(agency))
}

// Delete handles DELETE /v1/admin/agencies/:id
func (h *AgencyHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeleteAgency(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, gin.H{"message": "agency deleted"})
}
