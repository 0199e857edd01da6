package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"kamerways/internal/handler"
	"kamerways/internal/middleware"
	"kamerways/internal/service"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler         *handler.AuthHandler
	RouteHandler        *handler.RouteHandler
	AgencyHandler       *handler.AgencyHandler
	BookingHandler      *handler.BookingHandler
	WizardHandler       *handler.WizardHandler
	UserHandler         *handler.UserHandler
	NotificationHandler *handler.NotificationHandler
	PreferenceHandler   *handler.PreferenceHandler
	AuthService         *service.AuthService
	RedisClient         *redis.Client
	NewRelicApp         *newrelic.Application
	AllowedOrigins      []string
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Session routes.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/logout", deps.AuthHandler.Logout)
			auth.GET("/me", deps.AuthHandler.Me)
		}

		// Catalog routes.
		v1.GET("/routes", deps.RouteHandler.List)
		v1.GET("/routes/:id", deps.RouteHandler.Get)
		v1.GET("/agencies", deps.AgencyHandler.List)
		v1.GET("/agencies/:id", deps.AgencyHandler.Get)

		// Booking routes.
		bookings := v1.Group("/bookings")
		{
			bookings.POST("", deps.BookingHandler.Create)
			bookings.GET("", deps.BookingHandler.List)
			bookings.GET("/:id", deps.BookingHandler.Get)
			bookings.GET("/:id/receipt", deps.BookingHandler.Receipt)
		}

		// Booking wizard routes.
		wiz := v1.Group("/wizard")
		{
			wiz.POST("", deps.WizardHandler.Start)
			wiz.GET("/:id", deps.WizardHandler.Get)
			wiz.POST("/:id/passenger", deps.WizardHandler.SubmitPassenger)
			wiz.POST("/:id/confirm-route", deps.WizardHandler.ConfirmRoute)
			wiz.POST("/:id/seats", deps.WizardHandler.SelectSeats)
			wiz.POST("/:id/payment", deps.WizardHandler.Submit)
			wiz.POST("/:id/back", deps.WizardHandler.Back)
		}

		// Signed-in user routes.
		v1.GET("/notifications", deps.NotificationHandler.List)
		v1.POST("/notifications/:id/read", deps.NotificationHandler.MarkRead)
		v1.GET("/preferences", deps.PreferenceHandler.Get)
		v1.PUT("/preferences", deps.PreferenceHandler.Set)
		v1.GET("/wizard-snapshot", deps.PreferenceHandler.GetSnapshot)
		v1.PUT("/wizard-snapshot", deps.PreferenceHandler.SetSnapshot)

		// Admin back-office routes.
		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAdmin(deps.AuthService))
		{
			admin.GET("/users", deps.UserHandler.GetAll)

			admin.POST("/agencies", deps.AgencyHandler.Create)
			admin.PUT("/agencies/:id", deps.AgencyHandler.Update)
			admin.DELETE("/agencies/:id", deps.AgencyHandler.Delete)

			admin.POST("/routes", deps.RouteHandler.Create)
			admin.PUT("/routes/:id", deps.RouteHandler.Update)
			admin.DELETE("/routes/:id", deps.RouteHandler.Delete)

			admin.PUT("/bookings/:id", deps.BookingHandler.UpdateStatus)
			admin.DELETE("/bookings/:id", deps.BookingHandler.Delete)
		}
	}

	return router
}
