package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/urbansathi/backend/internal/classify"
	"github.com/urbansathi/backend/internal/config"
	"github.com/urbansathi/backend/internal/db"
	httpapi "github.com/urbansathi/backend/internal/http"
	"github.com/urbansathi/backend/internal/scoring"
	"github.com/urbansathi/backend/internal/service"
	"github.com/urbansathi/backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "complaint-backend").Logger()

	ctx := context.Background()
	store, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect db")
	}
	defer store.Close()

	if err := store.Bootstrap(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to bootstrap schema")
	}

	var uploader storage.Uploader
	if cfg.SupabaseURL == "" {
		uploader = storage.MockUploader{}
		logger.Info().Msg("using mock storage uploader")
	} else {
		uploader = storage.SupabaseUploader{
			BaseURL:    cfg.SupabaseURL,
			ServiceKey: cfg.SupabaseKey,
			Bucket:     cfg.SupabaseBucket,
		}
	}

	engine := scoring.Engine{Urgency: store, Area: store, Logger: logger}
	svc := &service.ComplaintService{
		Store:      store,
		Engine:     engine,
		Classifier: classify.Stub{},
		Logger:     logger,
	}

	router := httpapi.Router(cfg, store, svc, uploader, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
