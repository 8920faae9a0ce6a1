package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/analytics"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/api"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/config"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/dashboard"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/db"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/github"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/loader"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/projects"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/site"
)

// @title Portfolio Analytics API
// @version 1.0
// @description Commit analytics, project listing and site preferences for a personal portfolio
// @contact.name API Support
// @contact.url http://github.com/Kamar-Folarin
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	chartFile, err := config.LoadChartFile(cfg.ChartConfigFile)
	if err != nil {
		logger.Fatalf("Failed to load chart configuration: %v", err)
	}
	calendar, err := chartFile.Calendar(cfg.Location())
	if err != nil {
		logger.Fatalf("Invalid calendar configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// No data, no server
	rows, err := loader.New(logger,
		loader.WithCalendar(calendar),
		loader.WithLanguageInference(cfg.InferLanguage),
	).Load(ctx, cfg.DataPath)
	if err != nil {
		logger.Fatalf("Failed to load loc data: %v", err)
	}
	data := analytics.NewDataset(rows, cfg.CommitURLPrefix(), calendar)
	logger.WithFields(logrus.Fields{
		"rows":    len(data.Rows),
		"commits": len(data.Commits),
	}).Info("Dataset ready")

	store := openStore(cfg, logger)
	defer store.Close()

	registry := dashboard.NewRegistry(data, chartFile.Options(), logger)
	go registry.StartJanitor(ctx, time.Minute, cfg.SessionTTL)

	githubClient := github.NewGitHubClient(cfg.GitHub.Token, logger,
		github.WithBaseURL(cfg.GitHub.APIBaseURL),
		github.WithRetryConfig(cfg.GitHub.RateLimit.MaxRetries, cfg.GitHub.RateLimit.InitialBackoff, cfg.GitHub.RateLimit.MaxBackoff),
	)

	var projectOpts []projects.Option
	var handlerOpts []api.HandlerOption
	githubURL := ""
	if cfg.GitHub.Enabled() {
		projectOpts = append(projectOpts, projects.WithGitHub(githubClient, cfg.GitHub.Username, cfg.GitHub.RepoLimit))
		handlerOpts = append(handlerOpts, api.WithProfiles(githubClient, cfg.GitHub.Username))
		githubURL = "https://github.com/" + cfg.GitHub.Username
	}
	handlerOpts = append(handlerOpts, api.WithSite(site.Pages(githubURL), cfg.BasePath))

	apiHandler := api.NewHandler(
		registry,
		projects.NewService(cfg.ProjectsPath, logger, projectOpts...),
		site.NewThemes(store),
		logger,
		handlerOpts...,
	)
	router := api.SetupRouter(apiHandler, apiHandler.RequestLogger())

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}

// openStore uses Postgres when configured and memory otherwise
func openStore(cfg *config.Config, logger *logrus.Logger) db.Store {
	if cfg.DBConnectionString == "" {
		logger.Info("DB_CONNECTION_STRING not set, keeping preferences in memory")
		return db.NewMemoryStore()
	}

	var pg *db.PostgresStore
	if err := retry(3, 5*time.Second, func() error {
		var err error
		pg, err = db.OpenPostgres(cfg.DBConnectionString)
		return err
	}); err != nil {
		logger.Fatalf("Failed to initialize database after retries: %v", err)
	}
	return pg
}

// retry retries a function up to a certain number of attempts with a delay between attempts
func retry(attempts int, sleep time.Duration, fn func() error) error {
	if err := fn(); err != nil {
		if attempts--; attempts > 0 {
			time.Sleep(sleep)
			return retry(attempts, sleep, fn)
		}
		return err
	}
	return nil
}
