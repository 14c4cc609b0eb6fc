package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/andrevrochas/techshop/internal/config"
	"github.com/andrevrochas/techshop/internal/http/ban"
	"github.com/andrevrochas/techshop/internal/http/handlers"
	rl "github.com/andrevrochas/techshop/internal/http/rate_limiter"
	"github.com/andrevrochas/techshop/internal/http/router"
	"github.com/andrevrochas/techshop/internal/redissvc"
	"github.com/andrevrochas/techshop/internal/repo"
)

// @title Techshop Catalog API
// @version 1.0
// @description REST API for browsing the product catalog, free-text search and the shopping cart.
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if cfg.RedisAddr != "" {
		rs, err := redissvc.Connect(context.Background(), cfg.RedisAddr)
		if err != nil {
			slog.Error("could not connect to redis", "error", err)
			os.Exit(1)
		}
		defer rs.Close()
		ban.SetRedisService(rs)
		go ban.StartDailySummary(24 * time.Hour)
	}

	rl.SetLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	// catalog and cart live in memory only; both start empty and reset on
	// process restart
	handlers.SetCatalogRepo(repo.NewInMemoryCatalogRepository())
	handlers.SetCartRepo(repo.NewInMemoryCartRepository())

	r := router.NewRouter()
	slog.Info("server running", "addr", cfg.HTTPServerAddr)
	if err := http.ListenAndServe(cfg.HTTPServerAddr, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
