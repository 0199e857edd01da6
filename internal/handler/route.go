package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamerways/internal/domain"
	"kamerways/internal/repository"
	"kamerways/internal/service"
)

// RouteHandler handles HTTP requests for routes.
type RouteHandler struct {
	catalog *service.CatalogService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(catalog *service.CatalogService) *RouteHandler {
	return &RouteHandler{catalog: catalog}
}

// RouteResponse is the HTTP representation of a route.
type RouteResponse struct {
	ID             string   `json:"id"`
	AgencyID       string   `json:"agency_id"`
	Origin         string   `json:"origin"`
	Destination    string   `json:"destination"`
	DepartureTime  string   `json:"departure_time"`
	ArrivalTime    string   `json:"arrival_time"`
	Duration       string   `json:"duration"`
	Price          int64    `json:"price"`
	BusType        string   `json:"bus_type"`
	Amenities      []string `json:"amenities"`
	AvailableSeats int      `json:"available_seats"`
	TotalSeats     int      `json:"total_seats"`
	Date           string   `json:"date"`
}

// RouteRequest is the HTTP request body for creating or updating a route.
type RouteRequest struct {
	AgencyID       string   `json:"agency_id"`
	Origin         string   `json:"origin"`
	Destination    string   `json:"destination"`
	DepartureTime  string   `json:"departure_time"`
	ArrivalTime    string   `json:"arrival_time"`
	Duration       string   `json:"duration"`
	Price          int64    `json:"price"`
	BusType        string   `json:"bus_type"`
	Amenities      []string `json:"amenities"`
	AvailableSeats int      `json:"available_seats"`
	TotalSeats     int      `json:"total_seats"`
	Date           string   `json:"date"`
}

func toRouteResponse(r *domain.Route) RouteResponse {
	return RouteResponse{
		ID:             r.ID,
		AgencyID:       r.AgencyID,
		Origin:         r.Origin,
		Destination:    r.Destination,
		DepartureTime:  r.DepartureTime,
		ArrivalTime:    r.ArrivalTime,
		Duration:       r.Duration,
		Price:          r.Price,
		BusType:        string(r.BusType),
		Amenities:      r.Amenities,
		AvailableSeats: r.AvailableSeats,
		TotalSeats:     r.TotalSeats,
		Date:           r.Date,
	}
}

func (req RouteRequest) toDomain(id string) *domain.Route {
	return &domain.Route{
		ID:             id,
		AgencyID:       req.AgencyID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
		Duration:       req.Duration,
		Price:          req.Price,
		BusType:        domain.BusType(req.BusType),
		Amenities:      req.Amenities,
		AvailableSeats: req.AvailableSeats,
		TotalSeats:     req.TotalSeats,
		Date:           req.Date,
	}
}

// List handles GET /v1/routes with optional origin/destination/date/agency filters.
func (h *RouteHandler) List(c *gin.Context) {
	filter := repository.RouteFilter{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
		AgencyID:    c.Query("agency"),
	}

	routes, err := h.catalog.ListRoutes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		response = append(response, toRouteResponse(r))
	}
	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/routes/:id
func (h *RouteHandler) Get(c *gin.Context) {
	route, err := h.catalog.GetRoute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toRouteResponse(route))
}

// Create handles POST /v1/admin/routes
func (h *RouteHandler) Create(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	route := req.toDomain("")
	if err := h.catalog.CreateRoute(c.Request.Context(), route); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toRouteResponse(route))
}

// Update handles PUT /v1/admin/routes/:id
func (h *RouteHandler) Update(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	route := req.toDomain(c.Param("id"))
	if err := h.catalog.UpdateRoute(c.Request.Context(), route); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toRouteResponse(route))
}

// Delete handles DELETE /v1/admin/routes/:id
func (h *RouteHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeleteRoute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, gin.H{"message": "route deleted"})
}
