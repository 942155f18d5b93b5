package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pharma-dashboard/internal/cache"
	"pharma-dashboard/internal/config"
	"pharma-dashboard/internal/handler"
	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/repository"
	"pharma-dashboard/internal/seed"
	"pharma-dashboard/internal/service"
	"pharma-dashboard/pkg/logger"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load config (.env + environment)
	cfg := config.Load()
	logger.SetLevel(cfg.App.LogLevel)

	// 2. Setup in-memory store
	store := repository.NewMemoryStore()

	// 3. Seed sample data and the operator account
	userService := service.NewUserService(store.Users)
	if cfg.App.SeedData {
		seedStore(store, userService, cfg.App)
	}

	// 4. Dashboard cache (no-op unless CACHE_ENABLED)
	dashCache, err := cache.NewDashboardCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("dashboard cache unavailable, continuing without it")
		dashCache = cache.NewNoopDashboardCache()
	}

	// 5. Dependency Injection (Wiring Layers)
	services := handler.Services{
		Inventory:  service.NewInventoryService(store.Products, dashCache),
		Production: service.NewProductionService(store.Batches, store.Products, dashCache),
		Sales:      service.NewSalesService(store.Sales, store.Products, dashCache),
		Financial:  service.NewFinancialService(store.Financial, dashCache),
		Dashboard:  service.NewDashboardService(store, dashCache, service.WithTrendMonths(cfg.Dashboard.TrendMonths)),
	}

	// 6. Setup Fiber
	app := handler.NewApp(handler.AppConfig{
		AppName:        cfg.Server.AppName,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, services)

	// 7. Serve until interrupted, then shut down gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		return app.Listen(":" + cfg.Server.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info().Msg("shutting down server...")
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	logger.Log.Info().Msg("server exited")
}

// seedStore loads the sample data and makes sure the operator account exists.
func seedStore(store *repository.Store, users service.UserService, appCfg config.AppConfig) {
	stats, err := seed.Load(store)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to seed sample data")
	}
	logger.Log.Info().
		Int("products", stats.Products).
		Int("batches", stats.Batches).
		Int("sales", stats.Sales).
		Int("transactions", stats.Transactions).
		Msg("sample data loaded")

	_, created, err := users.EnsureUser(&model.UserInput{
		Username: appCfg.AdminUsername,
		Password: appCfg.AdminPassword,
	})
	if err != nil {
		logger.Log.Warn().Err(err).Msg("failed to create operator account")
		return
	}
	if created {
		logger.Log.Info().Str("username", appCfg.AdminUsername).Msg("operator account created")
	}
}
