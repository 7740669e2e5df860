package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/regionboard/backend/docs"
	"github.com/regionboard/backend/internal/auth"
	"github.com/regionboard/backend/internal/config"
	"github.com/regionboard/backend/internal/handlers"
	"github.com/regionboard/backend/internal/logger"
	loggerMiddleware "github.com/regionboard/backend/internal/logger/middleware"
	"github.com/regionboard/backend/internal/middlewares"
	"github.com/regionboard/backend/internal/registries"
	"github.com/regionboard/backend/internal/repositories"
	"github.com/regionboard/backend/internal/services"
	"github.com/regionboard/backend/internal/storage"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title RegionBoard API
// @version 1.0
// @description Regional project management dashboard: tasks, projects, budgets and analytics

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting RegionBoard backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	sessionRepo := repositories.NewSessionRepository(db, logger.Logger)

	// Initialize in-memory registries with seed data
	taskRegistry := registries.NewTaskRegistry(registries.SeedTasks()...)
	projectRegistry := registries.NewProjectRegistry(registries.SeedProjects()...)
	budgetRegistry := registries.NewBudgetRegistry(registries.SeedBudgets()...)
	documentRegistry := registries.NewDocumentRegistry(registries.SeedDocuments()...)

	// Initialize CSRF token generator for the form routes
	csrfGenerator := auth.NewCSRFGenerator(cfg.CSRFSecret, time.Hour)

	// Initialize services
	authService := services.NewAuthService(userRepo, sessionRepo, cfg.Session.TTL, logger.Logger)
	taskService := services.NewTaskService(taskRegistry)
	projectService := services.NewProjectService(projectRegistry)
	budgetService := services.NewBudgetService(budgetRegistry)
	documentService := services.NewDocumentService(documentRegistry, storage.NewLocalStorage(cfg.DocumentBasePath))
	analyticsService := services.NewAnalyticsService(registries.SeedProjectReviews())

	// Seed the admin account on first start
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureAdmin(ctx, cfg.AdminPassword); err != nil {
		cancel()
		logger.Logger.Fatal("Failed to seed admin account", zap.Error(err))
	}
	cancel()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, csrfGenerator, cfg.APIKey, logger.Logger)
	taskHandler := handlers.NewTaskHandler(taskService, authService, csrfGenerator, logger.Logger)
	projectHandler := handlers.NewProjectHandler(projectService, authService, csrfGenerator, logger.Logger)
	budgetHandler := handlers.NewBudgetHandler(budgetService, authService, csrfGenerator, logger.Logger)
	documentHandler := handlers.NewDocumentHandler(documentService, authService, csrfGenerator, logger.Logger)
	mapHandler := handlers.NewMapHandler(registries.SeedMapPoints(), authService, logger.Logger)
	analyticsHandler := handlers.NewAnalyticsHandler(
		analyticsService,
		registries.SeedReports(),
		registries.SeedFieldTools(),
		authService,
		logger.Logger,
	)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(10 * 1024 * 1024)) // 10MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Register routes
	authHandler.RegisterRoutes(r)
	taskHandler.RegisterRoutes(r)
	projectHandler.RegisterRoutes(r)
	budgetHandler.RegisterRoutes(r)
	documentHandler.RegisterRoutes(r)
	mapHandler.RegisterRoutes(r)
	analyticsHandler.RegisterRoutes(r)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "regionboard_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
