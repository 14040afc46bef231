package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clinicpulse/outcomes-dashboard/internal/api/router"
	"github.com/clinicpulse/outcomes-dashboard/internal/app/bootstrap"
	appconfig "github.com/clinicpulse/outcomes-dashboard/internal/config"
	"github.com/clinicpulse/outcomes-dashboard/internal/doctors"
	"github.com/clinicpulse/outcomes-dashboard/internal/observability/metrics"
	"github.com/clinicpulse/outcomes-dashboard/internal/outcomes"
	"github.com/clinicpulse/outcomes-dashboard/internal/reporting"
	"github.com/clinicpulse/outcomes-dashboard/internal/templates"
	"github.com/clinicpulse/outcomes-dashboard/pkg/logging"
)

// setupMetrics registers the application metrics on a fresh registry and
// returns the scrape handler alongside the instrument sets.
func setupMetrics() (http.Handler, *metrics.RecordMetrics, *metrics.DashboardMetrics) {
	reg := prometheus.NewRegistry()
	recordMetrics := metrics.NewRecordMetrics(reg)
	dashboardMetrics := metrics.NewDashboardMetrics(reg)
	handler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return handler, recordMetrics, dashboardMetrics
}

func main() {
	// .env is optional, env vars win.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting outcomes-dashboard API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	repos, err := bootstrap.BuildRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer repos.Close()

	var dashboardCache *reporting.Cache
	if redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true); redisClient != nil {
		dashboardCache = reporting.NewCache(redisClient, cfg.DashboardCacheTTL)
		logger.Info("dashboard snapshot cache enabled", "ttl", cfg.DashboardCacheTTL)
	}

	metricsHandler, recordMetrics, dashboardMetrics := setupMetrics()

	routerCfg := &router.Config{
		Logger:             logger,
		OutcomesHandler:    outcomes.NewHandler(repos.Outcomes, logger, recordMetrics),
		DoctorsHandler:     doctors.NewHandler(repos.Doctors, logger, recordMetrics),
		DashboardHandler:   reporting.NewHandler(repos.Outcomes, repos.Doctors, dashboardCache, logger, dashboardMetrics),
		TemplatesHandler:   templates.NewHandler(repos.Outcomes, logger),
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSecond: cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
