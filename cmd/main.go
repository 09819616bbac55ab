package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/interiorswala/studio-backend/internal/db"
	"github.com/interiorswala/studio-backend/internal/handlers"
	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/middleware"
	"github.com/interiorswala/studio-backend/internal/realtime"
	"github.com/interiorswala/studio-backend/internal/realtime/bus"
	"github.com/interiorswala/studio-backend/internal/repos"
	"github.com/interiorswala/studio-backend/internal/server"
	"github.com/interiorswala/studio-backend/internal/services"
	"github.com/interiorswala/studio-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment variables")
	}

	// SQLite
	sqliteService, err := db.NewSQLiteService(log)
	if err != nil {
		log.Fatal("SQLite init failed", "error", err)
	}
	if err := sqliteService.AutoMigrateAll(); err != nil {
		log.Fatal("SQLite auto migration failed", "error", err)
	}
	if err := sqliteService.SeedDefaults(); err != nil {
		log.Fatal("SQLite seeding failed", "error", err)
	}
	theDB := sqliteService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	profileRepo := repos.NewProfileRepo(theDB, log)
	portfolioRepo := repos.NewPortfolioRepo(theDB, log)
	quotationRepo := repos.NewQuotationRepo(theDB, log)

	// Realtime
	log.Info("Setting up realtime hub now...")
	hub := realtime.NewHub(log)

	var quotationBus bus.Bus
	if os.Getenv("REDIS_ADDR") != "" {
		quotationBus, err = bus.NewRedisBus(log)
		if err != nil {
			log.Warn("Redis bus init failed, staying single-instance", "error", err)
			quotationBus = nil
		} else if err := quotationBus.StartForwarder(context.Background(), hub.Broadcast); err != nil {
			log.Warn("Redis bus forwarder failed, staying single-instance", "error", err)
			_ = quotationBus.Close()
			quotationBus = nil
		}
	}

	// Services
	log.Info("Setting up services from main...")
	notifier := services.NewQuotationNotifier(hub, quotationBus)
	profileService := services.NewProfileService(theDB, log, profileRepo)
	portfolioService := services.NewPortfolioService(theDB, log, portfolioRepo)
	quotationService := services.NewQuotationService(theDB, log, quotationRepo, notifier)
	authService := services.NewAuthService(log)

	var conceptGenerator services.ConceptGenerator
	conceptGenerator, err = services.NewGeminiConceptGenerator(context.Background(), log)
	if err != nil {
		log.Warn("Concept generation disabled", "error", err)
		conceptGenerator = nil
	}

	// Handlers
	log.Info("Setting up handlers from main...")
	profileHandler := handlers.NewProfileHandler(profileService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	quotationHandler := handlers.NewQuotationHandler(quotationService)
	conceptHandler := handlers.NewConceptHandler(log, conceptGenerator)
	authHandler := handlers.NewAuthHandler(authService)
	realtimeHandler := handlers.NewRealtimeHandler(log, hub)

	// Middleware
	adminMiddleware := middleware.NewAdminMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		ProfileHandler:   profileHandler,
		PortfolioHandler: portfolioHandler,
		QuotationHandler: quotationHandler,
		ConceptHandler:   conceptHandler,
		AuthHandler:      authHandler,
		RealtimeHandler:  realtimeHandler,
		AdminMiddleware:  adminMiddleware,
		Environment:      utils.GetEnv("APP_ENV", "development", log),
		StaticDir:        utils.GetEnv("STATIC_DIR", "dist", log),
	})

	port := utils.GetEnv("PORT", "3000", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
