package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	httpHandlers "github.com/ftorres/marketplace-insights/internal/adapters/inbound/http"
	"github.com/ftorres/marketplace-insights/internal/adapters/outbound/ai"
	"github.com/ftorres/marketplace-insights/internal/adapters/outbound/metrics"
	"github.com/ftorres/marketplace-insights/internal/adapters/outbound/persistence"
	appCatalog "github.com/ftorres/marketplace-insights/internal/application/catalog"
	appInsights "github.com/ftorres/marketplace-insights/internal/application/insights"
	"github.com/ftorres/marketplace-insights/internal/infrastructure/config"
	"github.com/ftorres/marketplace-insights/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set CONFIG_ENV directly
	godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize infrastructure - database connection
	postgres, err := database.NewPostgresConnection(cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("postgres connection error: %v", err)
	}
	defer postgres.Close()

	if err := postgres.Ping(context.Background()); err != nil {
		log.Fatalf("postgres ping error: %v", err)
	}
	log.Println("✅ Connected to Postgres")

	// Initialize secondary adapters
	productRepo := persistence.NewPostgresProductRepository(postgres.Pool)
	insightRepo := persistence.NewPostgresInsightRepository(postgres.Pool)
	generator := ai.NewOllamaService(cfg.Ollama.BaseURL)
	metricsService := metrics.NewInMemoryMetricsService()

	// Initialize application services
	catalogService := appCatalog.NewService(productRepo)
	insightsService := appInsights.NewService(
		insightRepo, productRepo, generator, metricsService,
		cfg.Ollama.Model, cfg.Ollama.Timeout(),
	)

	// Initialize HTTP handlers
	productHandlers := httpHandlers.NewProductHandlers(catalogService)
	insightsHandlers := httpHandlers.NewInsightsHandlers(insightsService, metricsService)

	// Setup routes
	mux := http.NewServeMux()
	httpHandlers.RegisterProductRoutes(mux, productHandlers)
	httpHandlers.RegisterInsightsRoutes(mux, insightsHandlers)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("🚀 Marketplace Insights API running on %s", addr)
	log.Printf("🤖 Inference endpoint: %s (default model %s)", cfg.Ollama.BaseURL, cfg.Ollama.Model)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
