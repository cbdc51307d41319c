// triaged server accepts alerts over HTTP, runs the LLM-driven
// investigation loop against them, and records the full audit trail.
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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/incidentflow/triaged/pkg/agent"
	"github.com/incidentflow/triaged/pkg/api"
	"github.com/incidentflow/triaged/pkg/config"
	"github.com/incidentflow/triaged/pkg/database"
	"github.com/incidentflow/triaged/pkg/llm"
	"github.com/incidentflow/triaged/pkg/mcp"
	"github.com/incidentflow/triaged/pkg/metrics"
	"github.com/incidentflow/triaged/pkg/queue"
	"github.com/incidentflow/triaged/pkg/runbook"
	"github.com/incidentflow/triaged/pkg/services"
	"github.com/incidentflow/triaged/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting triaged",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

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

	// 3. Metrics registry
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(promRegistry)

	// 4. Domain services
	historyService := services.NewHistoryService(dbClient.Client)
	recorder := services.NewRecorder(historyService, m)

	// 5. LLM client
	// Note: the grpc provider dials lazily; actual connection happens on
	// the first call.
	llmClient, err := llm.NewClient(*cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client",
			"provider", cfg.LLM.Provider, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized",
		"provider", cfg.LLM.Provider, "model", llmClient.Model())

	// 6. Runbook and MCP infrastructure
	runbookService := runbook.NewService(*cfg.Runbook)
	gatewayFactory := mcp.NewGatewayFactory(cfg.MCPServerRegistry, recorder)

	// 7. Orchestrator and admission gate
	orchestrator := agent.NewOrchestrator(cfg, llmClient, recorder, runbookService, gatewayFactory)
	orchestrator.SetMetrics(m)
	gate := queue.NewGate(cfg.Processing.MaxConcurrentAlerts, cfg.Processing.QueueTimeout)

	// 8. HTTP server
	apiServer := api.NewServer(cfg, dbClient, historyService, orchestrator, gate, m, promRegistry)
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("triaged started successfully",
		"agents", cfg.AgentRegistry.Len(),
		"mcp_servers", len(cfg.MCPServerRegistry.IDs()),
		"max_concurrent_alerts", cfg.Processing.MaxConcurrentAlerts)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop accepting requests; in-flight alert
	// runs get a bounded window to finish.
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
