// Command labeld serves the label API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/label-system/internal/api"
	"github.com/99minutos/label-system/internal/api/handler"
	"github.com/99minutos/label-system/internal/core/catalog"
	"github.com/99minutos/label-system/internal/core/encoding"
	"github.com/99minutos/label-system/internal/core/ports"
	"github.com/99minutos/label-system/internal/core/service"
	"github.com/99minutos/label-system/internal/infrastructure/db/memory"
	mongodb "github.com/99minutos/label-system/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/label-system/internal/infrastructure/db/redis"
	"github.com/99minutos/label-system/internal/infrastructure/export"
	"github.com/99minutos/label-system/internal/infrastructure/queue"
	"github.com/99minutos/label-system/internal/infrastructure/render"
	"github.com/99minutos/label-system/internal/pkg/config"
	"github.com/99minutos/label-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "labeld",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("labeld stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openTemplateStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	cat := catalog.Default()
	clock := ports.SystemClock

	labels := service.NewLabelService(cat, clock, encoding.CryptoRand{}, cfg.Label.MailmarkAccountID, log)
	templates := service.NewTemplateService(store, cat, clock, log)
	exports := service.NewExportService(
		render.NewBarcodeRenderer(),
		export.NewSheetCapturer(),
		[]ports.Packager{export.NewPNGPackager(), export.NewPDFPackager(clock)},
		cfg.Label.ExportScale,
		log,
	)

	dispatcher := queue.NewDispatcher(cfg.Label.Workers, labels, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Catalog:   cat,
		Labels:    labels,
		Templates: templates,
		Exports:   exports,
		Batch:     dispatcher,
		Health:    map[string]handler.Pinger{"template_store": store},
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set, template mutation is unauthenticated")
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("template_store", cfg.TemplateStore).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// openTemplateStore connects the backend named by TEMPLATE_STORE. The returned
// func releases its connection.
func openTemplateStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.TemplateStore, func(), error) {
	switch cfg.TemplateStore {
	case config.StoreRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close")
			}
		}
		return redisdb.NewTemplateStore(client, cfg.Redis.TemplatesKey), closeFn, nil

	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect")
			}
		}
		repo := mongodb.NewTemplateRepository(db, cfg.Mongo.TemplatesCollection)
		if err := repo.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return repo, closeFn, nil

	default:
		return memory.NewTemplateStore(), func() {}, nil
	}
}
