package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	sthttp "github.com/HassanElshazlyEida/Stunning/internal/adapter/http"
	stnats "github.com/HassanElshazlyEida/Stunning/internal/adapter/nats"
	"github.com/HassanElshazlyEida/Stunning/internal/adapter/otel"
	"github.com/HassanElshazlyEida/Stunning/internal/adapter/postgres"
	"github.com/HassanElshazlyEida/Stunning/internal/adapter/templates"
	"github.com/HassanElshazlyEida/Stunning/internal/adapter/ws"
	"github.com/HassanElshazlyEida/Stunning/internal/config"
	"github.com/HassanElshazlyEida/Stunning/internal/logger"
	"github.com/HassanElshazlyEida/Stunning/internal/middleware"
	"github.com/HassanElshazlyEida/Stunning/internal/port/events"
	"github.com/HassanElshazlyEida/Stunning/internal/service"
)

func main() {
	fallback := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(fallback)

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, logCloser := logger.New(cfg.Logging)
	slog.SetDefault(log)
	defer logCloser.Close()

	slog.Info("config loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Logging.Level,
		"template_set", cfg.Generator.TemplateSet,
	)

	ctx := context.Background()

	// --- Infrastructure ---

	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()
	slog.Info("postgres connected")

	if err := postgres.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	slog.Info("migrations applied")

	hub := ws.NewHub()

	var publishers []events.Publisher
	publishers = append(publishers, hub)

	if cfg.NATS.URL != "" {
		queue, err := stnats.Connect(ctx, cfg.NATS.URL, log)
		if err != nil {
			return fmt.Errorf("nats: %w", err)
		}
		defer func() { _ = queue.Close() }()
		publishers = append(publishers, queue)
	}

	// --- Services ---

	gen, err := templates.NewStatic(cfg.Generator.TemplateSet, cfg.Generator.SectionDelay)
	if err != nil {
		return fmt.Errorf("template provider: %w", err)
	}

	store := postgres.NewStore(pool)
	promptSvc := service.NewPromptService(store, gen, events.Fanout(publishers...), log)

	// --- HTTP ---

	handlers := sthttp.NewHandlers(promptSvc)

	r := chi.NewRouter()

	r.Use(sthttp.CORS(cfg.Server.CORSOrigin))
	r.Use(middleware.RequestID)
	r.Use(sthttp.Logger)
	r.Use(sthttp.SecurityHeaders)
	r.Use(otel.HTTPMiddleware(cfg.Logging.Service))
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/health", healthHandler(cfg, hub))
	r.Get("/ws", hub.HandleWS)

	sthttp.MountRoutes(r, handlers)

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-done
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// healthHandler returns an http.HandlerFunc that reports service health.
func healthHandler(cfg *config.Config, hub *ws.Hub) http.HandlerFunc {
	type healthStatus struct {
		Status      string `json:"status"`
		TemplateSet string `json:"templateSet"`
		WSClients   int    `json:"wsClients"`
		NATS        bool   `json:"nats"`
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		status := healthStatus{
			Status:      "ok",
			TemplateSet: cfg.Generator.TemplateSet,
			WSClients:   hub.ConnectionCount(),
			NATS:        cfg.NATS.URL != "",
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(status)
	}
}
