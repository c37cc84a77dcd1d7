// RTR decision engine server providing the HTTP API for tenant pipelines,
// applicant tracking, evaluations, and the decision log.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ameyzing09/rtr-api-sub000/pkg/api"
	"github.com/ameyzing09/rtr-api-sub000/pkg/cleanup"
	"github.com/ameyzing09/rtr-api-sub000/pkg/config"
	"github.com/ameyzing09/rtr-api-sub000/pkg/database"
	"github.com/ameyzing09/rtr-api-sub000/pkg/events"
	"github.com/ameyzing09/rtr-api-sub000/pkg/services"
	"github.com/ameyzing09/rtr-api-sub000/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting RTR", "version", version.Full(), "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"seed_statuses", stats.Statuses,
		"roles", stats.Roles,
		"capabilities", stats.Capabilities)

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Initialize event publisher and domain services
	eventPublisher := events.NewEventPublisher(dbClient.DB())

	tenantService := services.NewTenantService(dbClient.Client, cfg.SeedStatuses, cfg.SeedCapabilities)
	statusService := services.NewStatusService(dbClient.Client)
	capabilityService := services.NewCapabilityService(dbClient.Client)
	signalService := services.NewSignalService(dbClient.Client, eventPublisher)
	evaluationService := services.NewEvaluationService(dbClient.Client, eventPublisher)
	actionService := services.NewActionService(dbClient.Client, eventPublisher)
	pipelineService := services.NewPipelineService(dbClient.Client, eventPublisher)
	decisionLogService := services.NewDecisionLogService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Start retention cleanup (background goroutine)
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 5. Create HTTP server
	server := api.NewServer(dbClient, api.Services{
		Tenants:     tenantService,
		Statuses:    statusService,
		Caps:        capabilityService,
		Signals:     signalService,
		Evaluations: evaluationService,
		Actions:     actionService,
		Pipelines:   pipelineService,
		DecisionLog: decisionLogService,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 6. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("RTR started successfully")

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
