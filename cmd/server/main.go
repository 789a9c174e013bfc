package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"medinfo-agent/internal/agent"
	"medinfo-agent/internal/config"
	"medinfo-agent/internal/gemini"
	"medinfo-agent/internal/session"
	"medinfo-agent/internal/web"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	logger := newLogger(cfg.Server.Env)
	slog.SetDefault(logger)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	client, err := gemini.New(context.Background(), gemini.Options{
		APIKey:     cfg.Gemini.APIKey,
		TextModel:  cfg.Gemini.TextModel,
		ImageModel: cfg.Gemini.ImageModel,
	})
	if err != nil {
		logger.Error("failed to create Gemini client", "error", err.Error())
		os.Exit(1)
	}

	consultant := agent.New(client).SetLogger(logger)
	sessions := session.NewStore(session.Options{MaxTurns: cfg.Chat.MaxHistory})

	handler, err := web.NewHandler(web.Options{
		Agent:    consultant,
		Sessions: sessions,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("failed to build web handler", "error", err.Error())
		os.Exit(1)
	}

	// Model calls run inside request handlers without deadlines of their
	// own, so only the read side of the server is bounded.
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			"port", cfg.Server.Port,
			"env", cfg.Server.Env,
			"text_model", client.TextModel(),
			"image_model", client.ImageModel(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	waitForShutdown(srv, logger)
}

func waitForShutdown(srv *http.Server, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err.Error())
	}

	logger.Info("server stopped")
}

func newLogger(env string) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
