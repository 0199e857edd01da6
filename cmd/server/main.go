package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"kamerways/internal/app"
	"kamerways/internal/config"
	"kamerways/internal/handler"
	internalRedis "kamerways/internal/redis"
	"kamerways/internal/repository"
	"kamerways/internal/repository/memory"
	"kamerways/internal/repository/postgres"
	"kamerways/internal/service"
)

// repos groups the persistence-layer interfaces so the wiring below is
// identical whether they are backed by PostgreSQL or the demo seed data.
type repos struct {
	agencies      repository.AgencyRepository
	routes        repository.RouteRepository
	bookings      repository.BookingRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository
}

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Pick the persistence backend. Demo mode serves seeded in-memory
	// data; Redis is still required for drafts and sessions.
	var r repos
	if cfg.Server.DemoMode {
		store := memory.Seeded()
		r = repos{
			agencies:      store.Agencies(),
			routes:        store.Routes(),
			bookings:      store.Bookings(),
			users:         store.Users(),
			notifications: store.Notifications(),
		}
		log.Println("Demo mode: serving seeded in-memory data")
	} else {
		db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Println("Connected to PostgreSQL")

		r = repos{
			agencies:      postgres.NewAgencyRepository(db),
			routes:        postgres.NewRouteRepository(db),
			bookings:      postgres.NewBookingRepository(db),
			users:         postgres.NewUserRepository(db),
			notifications: postgres.NewNotificationRepository(db),
		}
	}

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(r, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(r repos, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	draftStore := internalRedis.NewDraftStore(redisClient)
	sessionStore := internalRedis.NewSessionStore(redisClient)
	lockStore := internalRedis.NewLockStore(redisClient)
	cacheStore := internalRedis.NewCacheStore(redisClient)
	prefStore := internalRedis.NewPreferenceStore(redisClient)

	// Initialize services.
	notificationService := service.NewNotificationService(r.notifications)
	receiptService := service.NewReceiptService(r.routes, notificationService)
	authService := service.NewAuthService(sessionStore)
	catalogService := service.NewCatalogService(r.routes, r.agencies, cacheStore)
	psp := service.NewMockPSP()
	bookingService := service.NewBookingService(r.bookings, r.routes, psp, notificationService)
	wizardService := service.NewWizardService(draftStore, lockStore, r.routes, bookingService)

	// Initialize handlers.
	authHandler := handler.NewAuthHandler(authService)
	routeHandler := handler.NewRouteHandler(catalogService)
	agencyHandler := handler.NewAgencyHandler(catalogService)
	bookingHandler := handler.NewBookingHandler(bookingService, receiptService)
	wizardHandler := handler.NewWizardHandler(wizardService)
	userHandler := handler.NewUserHandler(r.users)
	notificationHandler := handler.NewNotificationHandler(notificationService, authService)
	preferenceHandler := handler.NewPreferenceHandler(prefStore, authService, catalogService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:         authHandler,
		RouteHandler:        routeHandler,
		AgencyHandler:       agencyHandler,
		BookingHandler:      bookingHandler,
		WizardHandler:       wizardHandler,
		UserHandler:         userHandler,
		NotificationHandler: notificationHandler,
		PreferenceHandler:   preferenceHandler,
		AuthService:         authService,
		RedisClient:         redisClient,
		NewRelicApp:         nrApp,
		AllowedOrigins:      cfg.Server.AllowedOrigins,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
