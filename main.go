package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gw2-tracker/internal/api"
	"gw2-tracker/internal/catalog"
	"gw2-tracker/internal/config"
	"gw2-tracker/internal/database"
	"gw2-tracker/internal/scheduler"
	"gw2-tracker/internal/services/gw2"
	"gw2-tracker/internal/services/history"
	"gw2-tracker/internal/services/valuation"
	"gw2-tracker/internal/snapshot"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg := config.Load()
	log.Printf("Environment: %s (retention %d days)", cfg.Environment, cfg.RetentionDays)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// Initialize services
	prices := gw2.NewClient()
	valuationSvc := valuation.NewService(prices)
	store := snapshot.NewStore(db)
	historySvc := history.NewService(store, cfg.StampLocation())

	// Start the snapshot scheduler
	sched := scheduler.New(valuationSvc, store, catalog.Tracked, scheduler.Options{
		Production:    cfg.IsProduction(),
		RetentionDays: cfg.RetentionDays,
		StampLocation: cfg.StampLocation(),
	})
	if err := sched.Start(); err != nil {
		log.Fatal("Failed to start scheduler:", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	apiGroup := r.Group("/api/v1")
	api.SetupRoutes(apiGroup, historySvc, valuationSvc)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	// Shut down on SIGINT/SIGTERM: stop the scheduler, drain requests,
	// close the database (deferred above).
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
