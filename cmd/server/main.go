package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/boonewh/pathsix-crm/internal/config"
	"github.com/boonewh/pathsix-crm/internal/handler"
	"github.com/boonewh/pathsix-crm/internal/infrastructure/database"
	"github.com/boonewh/pathsix-crm/internal/logger"
	"github.com/boonewh/pathsix-crm/internal/metrics"
	"github.com/boonewh/pathsix-crm/internal/middleware"
	"github.com/boonewh/pathsix-crm/internal/repository"
	"github.com/boonewh/pathsix-crm/internal/service"
	"github.com/boonewh/pathsix-crm/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Apply migrations
	databaseURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
	if err := database.Migrate(databaseURL, cfg.MigrationsDir); err != nil {
		logger.Fatal("Failed to apply migrations",
			slog.String("error", err.Error()))
	}

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	leadRepo := repository.NewPostgresLeadRepository(pool)
	runRepo := repository.NewPostgresImportRunRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	importService := service.NewImportService(leadRepo, runRepo, v)

	// Initialize handlers
	importHandler := handler.NewImportHandler(importService, userRepo, cfg.ImportHistoryLimit)
	leadHandler := handler.NewLeadHandler(leadRepo)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes require a resolved tenant identity
	api := router.Group("/api")
	api.Use(middleware.Identity())
	{
		leads := api.Group("/leads")
		{
			leads.GET("", leadHandler.List)
			leads.GET("/all", leadHandler.ListAll)
			leads.POST("", leadHandler.Create)
			leads.GET("/:id", leadHandler.Get)
			leads.PUT("/:id", leadHandler.Update)
			leads.DELETE("/:id", leadHandler.Delete)
			leads.PUT("/:id/assign", leadHandler.Assign)
		}

		imports := api.Group("/import/leads")
		{
			imports.POST("/preview", importHandler.Preview)
			imports.POST("/generic", importHandler.Run)
			imports.GET("/field-definitions", importHandler.FieldDefinitions)
			imports.GET("/generic-template", importHandler.Template)
			imports.GET("/history", importHandler.History)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      http.MaxBytesHandler(router, cfg.MaxUploadBytes+1<<20),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
