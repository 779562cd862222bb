package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auction "bomul-market/internal/auctionService"
	"bomul-market/internal/config"
	"bomul-market/internal/events"
	"bomul-market/internal/ledger"
	"bomul-market/internal/metrics"
	"bomul-market/internal/repository"
	"bomul-market/internal/scheduler"
	"bomul-market/internal/seed"
	"bomul-market/internal/server"
	"bomul-market/internal/session"
	"bomul-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.ConfigureLogger(cfg.App.LogLevel, nil)
	if cfg.App.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := &backends{cfg: cfg}
	defer b.Close()

	kv, err := b.sessionKV(ctx)
	if err != nil {
		utils.Fatal("failed to open session store", map[string]any{"backend": cfg.Session.Backend, "error": err.Error()})
	}
	channel, err := b.broadcastChannel(ctx)
	if err != nil {
		utils.Fatal("failed to open broadcast channel", map[string]any{"backend": cfg.Broadcast.Backend, "error": err.Error()})
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	marketMetrics := metrics.NewMarketMetrics(registry)

	hub := events.NewHub(channel, cfg.Broadcast.Channel, events.WithMetrics(marketMetrics))
	market := ledger.New(repository.NewMemoryRepo(), hub,
		ledger.WithSessionStore(session.NewStore(kv)),
		ledger.WithHashCost(cfg.Password.BcryptCost),
	)
	prepopulate(ctx, cfg, market)

	engine := auction.NewAuctionService(market, auction.WithMetrics(marketMetrics))

	if err := hub.Listen(ctx, market); err != nil {
		utils.Fatal("failed to listen on broadcast channel", map[string]any{"error": err.Error()})
	}

	jobs := scheduler.New(metrics.NewJobMetrics(registry))
	jobs.Register(scheduler.NewExpirySweep(market, engine, nil), cfg.Scheduler.ExpiryInterval)
	jobs.Register(scheduler.NewMonthRollover(market, nil), cfg.Scheduler.RolloverInterval)
	go jobs.Run(ctx)

	router := server.SetupRouter(server.Dependencies{
		Auctions: engine,
		Market:   market,
		Events:   hub,
		Gatherer: registry,
	})
	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		utils.Info("starting marketplace server", map[string]any{"addr": srv.Addr, "env": cfg.App.Env, "origin": hub.Origin()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Error("server stopped unexpectedly", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
}

// prepopulate restores the persisted session and adds the demo catalogue
func prepopulate(ctx context.Context, cfg *config.Config, market *ledger.Ledger) {
	restored, err := market.Restore(ctx)
	if err != nil {
		utils.Warn("session restore incomplete", map[string]any{"error": err.Error()})
	}
	if !cfg.Seed.Enabled {
		utils.Info("seed data disabled", map[string]any{"restored": restored})
		return
	}
	if err := market.Seed(ctx, seed.Users(), seed.Products(time.Now()), seed.DemoPassword); err != nil {
		utils.Fatal("failed to seed marketplace", map[string]any{"error": err.Error()})
	}
	utils.Info("marketplace seeded", map[string]any{"restored": restored, "products": len(market.GetProducts())})
}
