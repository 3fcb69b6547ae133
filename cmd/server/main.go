// AI Resume & Career Assistant server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/api"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/career"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/config"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/middleware"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/pipeline"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/render"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/store"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/workflow"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	var sink store.Sink
	if cfg.PersistenceEnabled {
		sink, err = store.NewSQLite(cfg.DBPath)
		if err != nil {
			slog.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if closeErr := sink.Close(); closeErr != nil {
				slog.Error("Failed to close database", "error", closeErr)
			}
		}()
		if err := sink.Ping(context.Background()); err != nil {
			slog.Error("Database health check failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database connected", "path", cfg.DBPath)
	} else {
		slog.Info("Persistence disabled")
	}

	// Initialize services.
	sessions := workflow.NewSessionStore(cfg.SessionTTL, cfg.SessionMax)
	renderer := render.NewGenerator()
	matcher := career.NewMatcher(career.Catalog())
	dispatcher := workflow.NewDispatcher(renderer, matcher, sink, cfg.OutputDir, cfg.RenderTimeout)
	engine := workflow.NewEngine(sessions, dispatcher)
	runner := pipeline.NewRunner(renderer, sink, cfg.OutputDir, cfg.RenderTimeout)

	// Initialize handlers.
	handler := api.NewHandler(engine, renderer, matcher, runner, sink, cfg.OutputDir)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	corsOrigins := []string{"*"}
	if cfg.FrontendURL != "" && !cfg.IsDevelopment() {
		corsOrigins = []string{cfg.FrontendURL}
	}
	r.Use(middleware.CORS(corsOrigins))

	handler.RegisterRoutes(r)

	// Create server.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // WebSocket chat connections are long-lived
		IdleTimeout:  120 * time.Second,
	}

	// Start session janitor.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions.StartJanitor(ctx)

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
