package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/eesaa/retail-suite/internal/application/assistant"
	"github.com/eesaa/retail-suite/internal/application/auth"
	"github.com/eesaa/retail-suite/internal/application/billing"
	"github.com/eesaa/retail-suite/internal/application/documents"
	"github.com/eesaa/retail-suite/internal/application/inventory"
	"github.com/eesaa/retail-suite/internal/application/ledger"
	"github.com/eesaa/retail-suite/internal/application/ports"
	"github.com/eesaa/retail-suite/internal/application/reports"
	infraai "github.com/eesaa/retail-suite/internal/infrastructure/ai"
	"github.com/eesaa/retail-suite/internal/infrastructure/excel"
	infrapdf "github.com/eesaa/retail-suite/internal/infrastructure/pdf"
	"github.com/eesaa/retail-suite/internal/infrastructure/storage"
	httpRouter "github.com/eesaa/retail-suite/internal/interfaces/http"
	"github.com/eesaa/retail-suite/internal/state"
	"github.com/eesaa/retail-suite/pkg/config"
	"github.com/eesaa/retail-suite/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	// Durable store: a SQLite file, or memory when no path is configured.
	var kv ports.KV
	if cfg.Store.Path != "" {
		sqliteKV, err := storage.OpenSQLite(cfg.Store.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("open store")
		}
		defer sqliteKV.Close()
		kv = sqliteKV
	} else {
		log.Warn().Msg("STORE_PATH empty, running with in-memory state")
		kv = storage.NewMemoryKV()
	}

	store, err := state.New(kv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("load state")
	}

	authUC, err := auth.New(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth")
	}

	billingUC := billing.NewUseCase(store, log)
	ledgerUC := ledger.NewUseCase(store, log)
	inventoryUC := inventory.NewUseCase(store, log)
	reportsUC := reports.NewUseCase(store, log)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, infraai.Models{
		Chat:     cfg.AI.GeminiModel,
		Analysis: cfg.AI.AnalysisModel,
		Search:   cfg.AI.SearchModel,
	})
	assistantUC := assistant.NewUseCase(store, geminiSvc, log)

	renderer := infrapdf.NewMarotoRenderer()
	exporter := excel.NewExporter()
	documentsUC := documents.NewUseCase(store, ledgerUC, reportsUC, renderer, exporter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // PDF generation can take a moment
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		BillingUC:   billingUC,
		LedgerUC:    ledgerUC,
		InventoryUC: inventoryUC,
		ReportsUC:   reportsUC,
		AssistantUC: assistantUC,
		DocumentsUC: documentsUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
