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

	"golang.org/x/sync/errgroup"

	"mastikon/internal/config"
	"mastikon/internal/llm"
	"mastikon/internal/logger"
	"mastikon/internal/newsroom"
	transporthttp "mastikon/internal/transport/http"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	client := llm.NewClient(cfg.GeminiAPIKey,
		llm.WithBaseURL(cfg.GeminiBaseURL),
		llm.WithRequestsPerMinute(cfg.GeminiRPM),
	)
	generator := newsroom.NewGenerator(client, cfg.GeminiModel)
	generator.AnalysisTemperature = cfg.AnalysisTemperature
	generator.ScriptTemperature = cfg.ScriptTemperature
	generator.Logger = log

	if !cfg.HasCredential() {
		log.Warn("GEMINI_API_KEY is not set, analysis requests will be refused")
	}

	sessions := newsroom.NewSessionStore(generator, log)
	server := transporthttp.NewServer(sessions, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:        cfg.ListenAddr,
		Handler:     server.Routes(),
		ReadTimeout: 5 * time.Second,
		// model calls run inside the request
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("mas tikon listening", "addr", cfg.ListenAddr, "model", cfg.GeminiModel)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		pruneSessions(gCtx, sessions, cfg.SessionTTL, log)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server exited")
}

// pruneSessions drops sessions idle for longer than ttl.
func pruneSessions(ctx context.Context, sessions *newsroom.SessionStore, ttl time.Duration, log *slog.Logger) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := sessions.PruneIdleSince(now.Add(-ttl)); removed > 0 {
				log.Debug("pruned idle sessions", "removed", removed, "remaining", sessions.Len())
			}
		}
	}
}
