// README: Entry point; loads config, wires the itinerary service and starts the HTTP server.
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

	"github.com/gin-gonic/gin"

	"tripbrief/internal/config"
	httptransport "tripbrief/internal/http"
	"tripbrief/internal/infra"
	"tripbrief/internal/logging"
	"tripbrief/internal/modules/itinerary"
)

func main() {
	if err := run(); err != nil {
		slog.Error("tripbrief-api stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	slog.SetDefault(logger)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := infra.NewProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer provider.Close()

	var verifier infra.TokenVerifier
	if cfg.Firebase.ProjectID != "" {
		verifier, err = infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			return err
		}
	} else {
		logger.Warn("TRIPBRIEF_FIREBASE_PROJECT_ID not set; /api routes are unauthenticated")
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Itinerary:      itinerary.NewService(provider),
		Verifier:       verifier,
		Logger:         logger,
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", cfg.HTTP.Addr, "provider", cfg.AI.Provider, "model", provider.Model())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
