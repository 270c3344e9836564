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

	_ "photofolio/docs"
	rediscache "photofolio/internal/cache/redis"
	"photofolio/internal/config"
	"photofolio/internal/customsizes"
	"photofolio/internal/events"
	"photofolio/internal/footprint"
	"photofolio/internal/http-server/middleware/ratelimit"
	"photofolio/internal/http-server/router"
	"photofolio/internal/kafka/producer"
	"photofolio/internal/lib/keylock"
	"photofolio/internal/lib/logger/handlers/slogpretty"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/photos"
	"photofolio/internal/renditions"
	"photofolio/internal/sizes"
	"photofolio/internal/storage/memory"
	"photofolio/internal/storage/objectstore"
	"photofolio/internal/storage/postgres"
	"photofolio/internal/transcoder"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type repository interface {
	photos.PhotoRepository
	customsizes.PhotoRepository
	customsizes.SettingRepository
	sizes.SettingLister
	Close() error
}

// @title        Photofolio API
// @version      1.0
// @description  Photo ingestion, renditions and storage accounting for a portfolio site.
// @host         localhost:8082
// @BasePath     /
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting photofolio", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	repo, err := openRepository(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Error("failed to close storage", sl.Err(err))
		}
	}()

	encoder, err := transcoder.NewEncoder(cfg.Renditions.Format)
	if err != nil {
		log.Error("failed to init encoder", sl.Err(err))
		os.Exit(1)
	}
	tc := transcoder.New(encoder)

	var storeOpts []renditions.Option
	if cfg.Mirror.Enabled {
		mirror, err := objectstore.New(ctx, &cfg.Mirror)
		if err != nil {
			log.Error("failed to init rendition mirror", sl.Err(err))
			os.Exit(1)
		}
		storeOpts = append(storeOpts, renditions.WithMirror(mirror))
		log.Info("mirroring renditions", slog.String("bucket", cfg.Mirror.Bucket))
	}

	store, err := renditions.New(log, renditions.Config{
		Root:        cfg.Renditions.Root,
		URLPrefix:   cfg.Renditions.URLPrefix,
		Ext:         tc.Ext(),
		ContentType: tc.ContentType(),
	}, storeOpts...)
	if err != nil {
		log.Error("failed to init rendition store", sl.Err(err))
		os.Exit(1)
	}

	var usageCache footprint.UsageCache
	if cfg.Redis.Enabled {
		cache, err := rediscache.New(&cfg.Redis)
		if err != nil {
			log.Error("failed to connect to redis", sl.Err(err))
			os.Exit(1)
		}
		defer cache.Close()
		usageCache = cache
	}

	acct := footprint.New(log, store, usageCache, cfg.Quota.LimitBytes)

	var publisher *events.Publisher
	if cfg.Kafka.Enabled {
		kafkaProducer, err := producer.NewProducer(&cfg.Kafka, log)
		if err != nil {
			log.Error("failed to create kafka producer", sl.Err(err))
			os.Exit(1)
		}
		defer func() {
			if err := kafkaProducer.Close(); err != nil {
				log.Error("failed to close kafka producer", sl.Err(err))
			}
		}()
		publisher = events.NewPublisher(log, kafkaProducer)
	}

	registry := sizes.NewRegistry(log, repo)
	locks := &keylock.Locker{}

	manager := photos.New(log, repo, registry, tc, store, acct, photos.Config{
		MaxUploadBytes: cfg.Upload.MaxBytes,
		AllowedTypes:   cfg.Upload.AllowedTypes,
		Workers:        cfg.Renditions.Workers,
	}, photos.WithLocker(locks), photos.WithEvents(publisher))

	maintainer := customsizes.New(log, repo, repo, registry, tc, store, acct,
		customsizes.WithLocker(locks),
		customsizes.WithEvents(publisher),
		customsizes.WithWorkers(cfg.Renditions.Workers),
	)

	handler := router.New(log, router.Config{
		OwnerHeader:    cfg.OwnerHeader,
		MaxUploadBytes: cfg.Upload.MaxBytes,
		FilesRoot:      cfg.Renditions.Root,
		FilesPrefix:    cfg.Renditions.URLPrefix,
		Limiter:        ratelimit.NewLimiter(cfg.PublicAPI.RatePerSecond, cfg.PublicAPI.Burst),
	}, manager, maintainer, acct)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("application stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", sl.Err(err))
	}

	log.Info("application stopped")
}

func openRepository(cfg *config.Database) (repository, error) {
	if cfg.Driver == "memory" {
		return memory.New(), nil
	}

	s, err := postgres.InitDB(cfg)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
