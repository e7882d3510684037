package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaminalder/tictactoe-minimax/internal/app"
	"github.com/jaminalder/tictactoe-minimax/internal/config"
	"github.com/jaminalder/tictactoe-minimax/internal/logging"
	"github.com/jaminalder/tictactoe-minimax/internal/web"
)

func main() {
	cfg := config.Load()
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	svc := app.NewServiceWithOptions(app.Options{
		Parallel:  cfg.ParallelSearch,
		CacheSize: cfg.CacheSize,
		Logger:    log.With().Str("component", "advisor").Logger(),
	})
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           web.NewServer(svc, log.With().Str("component", "http").Logger()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Bool("parallel", cfg.ParallelSearch).Msg("listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
		return
	case <-sigCtx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
