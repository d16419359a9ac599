package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/chat"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/metrics"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/handlers"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/repositories"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/services"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/resto-analytics-be/cmd/api/docs"
)

// @title Restaurant Analytics API
// @version 1.0.0
// @description Order dashboard and Turkish analytics chat assistant
// @license.name MIT
// @host localhost:8788
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)

	log.Info().
		Str("port", cfg.Port).
		Str("provider", cfg.LLMProvider).
		Str("api_key", cfg.MaskedKey()).
		Strs("models", cfg.ModelCandidates()).
		Msg("🚀 Starting restaurant analytics API")

	// Init database
	db := database.NewDB(cfg.DatabaseURL, cfg.Env)
	defer db.Close()

	// Init repositories (use GORM instance)
	orderRepo := repositories.NewOrderRepo(db.GORM)
	menuItemRepo := repositories.NewMenuItemRepo(db.GORM)

	// Init LLM; a missing key keeps the server up but chat answers 500
	providerName := "none"
	var invoker *llm.Invoker
	gen, err := llm.NewProvider(llm.ProviderConfigFrom(cfg))
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		log.Warn().Str("provider", cfg.LLMProvider).Msg("⚠️ No model API key configured, chat is disabled")
	case err != nil:
		log.Fatal().Err(err).Msg("❌ Failed to initialize LLM provider")
	default:
		providerName = gen.GetProviderName()
		invoker = llm.NewInvoker(gen, cfg.ModelCandidates())
		log.Info().Str("provider", providerName).Msg("🤖 LLM provider ready")
	}

	engine := chat.NewEngine(orderRepo, invoker)
	log.Info().Strs("strategies", engine.StrategyNames()).Msg("🧭 Chat fallback chain")

	// Init services
	exportService := export.NewService()
	dashboardService := services.NewDashboardService(orderRepo)
	orderService := services.NewOrderService(orderRepo, exportService)
	seedService := services.NewSeedService(orderRepo, menuItemRepo)
	menuService := services.NewMenuService(menuItemRepo)

	// Init handlers
	h := &handlers.Handlers{
		Health:    handlers.NewHealthHandler(providerName),
		Chat:      handlers.NewChatHandler(engine),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		Order:     handlers.NewOrderHandler(orderService, seedService),
		Menu:      handlers.NewMenuHandler(menuService),
	}

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Restaurant Analytics API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger & metrics
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	h.Register(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("❌ Server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("🌐 API listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("❌ Server stopped")
	}
}
