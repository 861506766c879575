// File: tripweaver/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripweaver/config"
	"tripweaver/database"
	itineraryRepo "tripweaver/database/repository/itinerary"
	sessionRepo "tripweaver/database/repository/session"
	"tripweaver/handlers"
	"tripweaver/middleware"
	"tripweaver/routes"
	"tripweaver/services/assembler"
	"tripweaver/services/flights"
	"tripweaver/services/hotels"
	ai "tripweaver/services/intelligence"
	"tripweaver/services/planner"
	"tripweaver/services/trip"
	"tripweaver/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	utils.InitializeLogger(cfg.Env)
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}

	redisClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisHotelCacheDB)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Redis: %v", err)
	}

	aiClient, err := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, time.Duration(cfg.GenerateTimeoutS)*time.Second)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize text generation client: %v", err)
	}

	utils.StartHealthMonitor(redisClient, mongoClient)

	// Create the Gin router.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// repositories.
	sessions := sessionRepo.NewMongoSessionRepo(mongoClient, cfg.DatabaseName)
	itineraries := itineraryRepo.NewMongoItineraryRepo(mongoClient, cfg.DatabaseName)

	// external price lookups.
	lookupTimeout := time.Duration(cfg.LookupTimeoutS) * time.Second
	flightAPI := flights.NewClient(cfg.TravelpayoutsToken, cfg.AffiliateMarker, cfg.Currency, lookupTimeout)
	hotelSearch := hotels.NewCachedSearchClient(
		hotels.NewClient(cfg.TravelpayoutsToken, cfg.AffiliateMarker, cfg.Currency, lookupTimeout),
		redisClient,
		time.Duration(cfg.HotelCacheTTLMin)*time.Minute,
		logger,
	)

	// services.
	tripService := &trip.DefaultPlannerService{
		AI:          aiClient,
		Sessions:    sessions,
		Itineraries: itineraries,
		Extractor:   &flights.Extractor{AI: aiClient, Logger: logger},
		Flights:     flightAPI,
		Planner:     &planner.Generator{AI: aiClient, Logger: logger},
		Hotels:      &hotels.Aggregator{Search: hotelSearch, Logger: logger},
		Assembler:   &assembler.Assembler{AI: aiClient, Logger: logger},
		Logger:      logger,
	}

	tripHandler := handlers.NewTripHandler(tripService)
	routes.RegisterRoutes(router, tripHandler)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
