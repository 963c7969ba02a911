package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stagedai-backend/internal/config"
	"stagedai-backend/internal/database"
	"stagedai-backend/internal/gemini"
	"stagedai-backend/internal/handlers"
	"stagedai-backend/internal/imagefetch"
	"stagedai-backend/internal/middleware"
	"stagedai-backend/internal/payment"
	"stagedai-backend/internal/paypal"
	"stagedai-backend/internal/staging"
	"stagedai-backend/internal/supabase"
	"stagedai-backend/internal/wizard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbURL := cfg.DatabaseURL
	if dbURL == "" {
		log.Println("Warning: DATABASE_URL not set. Migrations will be skipped.")
		log.Println("Projects will only be kept in memory for this run.")
	}

	// Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	var dbClient *supabase.DatabaseClient
	var repo staging.Repository
	var inquiryStore handlers.InquiryStore = supabaseClient
	if dbURL != "" {
		dbClient, err = supabase.NewDatabaseClient(dbURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize database client: %v", err)
			log.Println("Persistence is disabled. Please configure DATABASE_URL properly.")
		} else {
			defer dbClient.Close()
			repo = supabase.NewRepository(dbClient, storageClient)
			inquiryStore = dbClient

			migrator, err := database.NewMigrator(dbURL)
			if err != nil {
				log.Printf("Warning: Failed to initialize migrator: %v", err)
			} else {
				defer migrator.Close()
				if err := migrator.Run(); err != nil {
					log.Printf("Warning: Migration failed: %v", err)
				} else {
					log.Println("Migrations completed successfully")
				}
			}
		}
	}

	// AI client
	geminiClient, err := gemini.NewClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}

	// Core services
	fetcher := imagefetch.New(cfg.ImageRelayURL)
	sessionStore := wizard.NewStore()
	stop := make(chan struct{})
	defer close(stop)
	sessionStore.StartJanitor(10*time.Minute, time.Hour, stop)

	wizardService := wizard.NewService(sessionStore, fetcher, geminiClient)
	stagingService := staging.NewService(geminiClient, repo)

	// Payment
	paypalClient := paypal.NewClient(cfg)
	flow := payment.NewFlow(paypalClient, stagingService, cfg.PayPalClientID, cfg.DemoUnlockEnabled)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		flow.RefreshSDK(ctx)
	}()

	// Handlers
	wizardHandler := handlers.NewWizardHandler(wizardService, stagingService)
	projectsHandler := handlers.NewProjectsHandler(stagingService)
	paymentHandler := handlers.NewPaymentHandler(flow)
	inquiriesHandler := handlers.NewInquiriesHandler(inquiryStore)
	chatHandler := handlers.NewChatHandler(geminiClient)

	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Public endpoints
	router.GET("/health", handlers.HealthHandler)
	router.GET("/api/v1/catalog", handlers.CatalogHandler)
	router.GET("/api/v1/pricing", paymentHandler.GetPricing)
	router.GET("/api/v1/payments/sdk-config", paymentHandler.GetSDKConfig)
	router.POST("/api/v1/inquiries", inquiriesHandler.CreateInquiry)
	router.POST("/api/v1/sales-chat", chatHandler.SalesChat)

	// Studio endpoints require a Supabase user token
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Intake wizard
	api.POST("/wizard", wizardHandler.Start)
	api.GET("/wizard/:session_id", wizardHandler.GetState)
	api.POST("/wizard/:session_id/image-url", wizardHandler.SetImageURL)
	api.POST("/wizard/:session_id/image", wizardHandler.SetImageData)
	api.POST("/wizard/:session_id/next", wizardHandler.Next)
	api.POST("/wizard/:session_id/back", wizardHandler.Back)
	api.POST("/wizard/:session_id/goal-persona", wizardHandler.SetGoalPersona)
	api.POST("/wizard/:session_id/property-type", wizardHandler.SetPropertyType)
	api.POST("/wizard/:session_id/style", wizardHandler.SelectStyle)
	api.POST("/wizard/:session_id/refine", wizardHandler.Refine)
	api.POST("/wizard/:session_id/submit", wizardHandler.Submit)
	api.DELETE("/wizard/:session_id", wizardHandler.Cancel)

	// Projects
	api.GET("/projects/:project_id/status", projectsHandler.GetStatus)
	api.GET("/projects/:project_id/result", projectsHandler.GetResult)

	// Payments
	api.POST("/payments/orders", paymentHandler.CreateOrder)
	api.POST("/payments/orders/capture", paymentHandler.CaptureOrder)
	api.POST("/payments/demo-unlock", paymentHandler.DemoUnlock)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
