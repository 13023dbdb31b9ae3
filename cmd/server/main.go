package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DukeRupert/pageturn/internal"
	"github.com/DukeRupert/pageturn/internal/catalog"
	"github.com/DukeRupert/pageturn/internal/domain"
	"github.com/DukeRupert/pageturn/internal/handler"
	"github.com/DukeRupert/pageturn/internal/metrics"
	"github.com/DukeRupert/pageturn/internal/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func run() error {
	ctx := context.Background()

	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	source, closeSource, err := openCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	items, err := handler.NewItemsHandler(source, handler.PaginationSettings{
		PerPage:        cfg.PerPage,
		PageRange:      cfg.PageRange,
		QueryKey:       cfg.QueryKey,
		LinkSeparator:  cfg.LinkSeparator,
		LinkClassOn:    cfg.LinkClassOn,
		LinkClassOff:   cfg.LinkClassOff,
		InputSeparator: cfg.InputSeparator,
	}, logger)
	if domain.IsInvalidConfiguration(err) {
		return fmt.Errorf("pagination settings rejected, check PER_PAGE and PAGE_RANGE: %w", err)
	}
	if err != nil {
		return fmt.Errorf("items handler initialization failed: %w", err)
	}

	// =========================================================================
	// Middleware
	// =========================================================================

	security := middleware.NewSecurityHeadersMiddleware(cfg.Env != "development")
	requestLogging := middleware.NewRequestLoggingMiddleware(logger)
	metricsAuth := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)
	if !metricsAuth.Enabled() {
		logger.Warn("METRICS_USERNAME and METRICS_PASSWORD are empty, /metrics is unprotected")
	}

	// =========================================================================
	// Routes
	// =========================================================================

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", metricsAuth.Handler(promhttp.Handler()))

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/items", http.StatusSeeOther)
	})

	items.RegisterRoutes(mux)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handler.NotFoundResponse(w, r, logger)
	})

	stack := middleware.Stack(
		security.Handler,
		requestLogging.Handler,
		metrics.Middleware,
	)

	// =========================================================================
	// Server
	// =========================================================================

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           stack(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env,
			"per_page", cfg.PerPage, "page_range", cfg.PageRange)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

// openCatalog connects to Postgres when DATABASE_URL is set and falls back
// to a seeded in-memory catalog otherwise.
func openCatalog(ctx context.Context, cfg *internal.Config, logger *slog.Logger) (catalog.Source, func(), error) {
	if cfg.DatabaseUrl == "" {
		logger.Info("Catalog ready", "source", "memory", "items", cfg.SeedItems)
		return catalog.Seed(cfg.SeedItems, time.Now()), func() {}, nil
	}

	db, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := internal.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Catalog ready", "source", "postgres")

	return catalog.NewPostgres(db), func() { db.Close() }, nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
