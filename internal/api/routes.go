package api

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/contentwerk/seo-engine/internal/api/handlers"
	"github.com/contentwerk/seo-engine/internal/api/middleware"
	"github.com/contentwerk/seo-engine/internal/config"
	"github.com/contentwerk/seo-engine/internal/database"
	"github.com/contentwerk/seo-engine/internal/repository"
	"github.com/contentwerk/seo-engine/internal/service/briefing"
	"github.com/contentwerk/seo-engine/internal/service/generation"
	"github.com/contentwerk/seo-engine/internal/service/llm"
	"github.com/contentwerk/seo-engine/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, db *database.DatabaseClient, redisClient *database.RedisClient, cfg *config.Config) {
	repoFactory := repository.NewRepositoryFactory(db.DB)

	// Wire the generation pipeline
	gateway := llm.NewClient(llm.ClientOptions{
		BaseURL:     cfg.AIGatewayURL,
		APIKey:      cfg.AIGatewayKey,
		HTTPTimeout: cfg.GatewayTimeout,
		Retry: llm.RetryPolicy{
			MaxAttempts: cfg.RetryAttempts,
			BaseDelay:   cfg.RetryBaseDelay,
		},
		RateLimit:   rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		RedisClient: redisClient.Client,
		CacheTTL:    cfg.CacheTTL,
	})

	var briefings generation.Briefings
	if cfg.StorageURL != "" {
		briefings = briefing.NewAggregator(
			storage.NewClient(cfg.StorageURL, cfg.StorageKey, cfg.StorageBucket),
			gateway, nil)
	}

	orchestrator := generation.NewOrchestrator(gateway, briefings, nil)

	// Initialize handlers
	generateHandler := handlers.NewGenerateHandler(orchestrator, repoFactory.GenerationRepository, cfg)
	historyHandler := handlers.NewHistoryHandler(repoFactory.GenerationRepository)

	// API group
	api := app.Group("/api")

	// Health check route
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Generation routes
	api.Post("/generate", middleware.JWTMiddleware(cfg), generateHandler.GenerateContent)

	// History routes
	generations := api.Group("/generations", middleware.JWTMiddleware(cfg))
	generations.Get("/", historyHandler.ListGenerations)
	generations.Get("/:id", historyHandler.GetGeneration)
}
