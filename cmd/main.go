package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sketchboard/ai-backend/internal/config"
	"github.com/sketchboard/ai-backend/internal/handler"
	"github.com/sketchboard/ai-backend/internal/llm"
	"github.com/sketchboard/ai-backend/internal/metrics"
	"github.com/sketchboard/ai-backend/internal/pipeline"
	"github.com/sketchboard/ai-backend/internal/ratelimit"

	_ "github.com/sketchboard/ai-backend/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.Default()

	visionClient := llm.NewVisionClient(
		logger,
		openai.NewClient(
			option.WithAPIKey(cfg.Vision.APIKey),
			option.WithBaseURL(cfg.Vision.BaseURL),
			option.WithMaxRetries(0),
		), cfg.Vision)

	synthClient := llm.NewSynthesisClient(
		logger,
		openai.NewClient(
			option.WithAPIKey(cfg.Synthesis.APIKey),
			option.WithBaseURL(cfg.Synthesis.BaseURL),
			option.WithMaxRetries(0),
		), cfg.Synthesis)

	generateService := pipeline.New(logger, visionClient, synthClient)
	g := handler.NewGenerateHandler(generateService)
	h := handler.NewHealthHandler(cfg.Synthesis.Model)

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.Logger,
		middleware.Recoverer,
		middleware.Throttle(cfg.Server.ThrottleLimit),
		middleware.Timeout(cfg.Server.Timeout),
		metrics.Middleware,
	}...)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/v1/ai", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		}))

		if cfg.RateLimit.Enable {
			limiter := ratelimit.NewLimiter(logger, cfg.RateLimit)
			r.Use(limiter.Middleware)
			logger.Println("redis rate limiter enabled")
		}

		r.Post("/text-to-diagram/generate", g.TextToDiagram)
		r.Post("/diagram-to-code/generate", g.MockupToCode)
		r.Post("/diagram-to-code-intern/generate", g.DiagramToCode)
		r.Post("/diagram-to-text-intern/generate", g.DiagramToText)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Printf("server started :%s\n", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Println("server stopped")
}
