package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	rediscache "photofolio/internal/cache/redis"
	"photofolio/internal/config"
	"photofolio/internal/footprint"
	"photofolio/internal/kafka/consumer"
	"photofolio/internal/lib/logger/handlers/slogpretty"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/processor"
	"photofolio/internal/renditions"
	"photofolio/internal/storage/postgres"
	"photofolio/internal/transcoder"
)

const (
	envLocal = "local"
	envDev   = "dev"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	if !cfg.Kafka.Enabled {
		log.Error("kafka is disabled, nothing to consume")
		os.Exit(1)
	}
	if cfg.Database.Driver == "memory" {
		log.Error("the memory driver is process local, photo-events needs postgres")
		os.Exit(1)
	}

	log.Info("starting photo events processor", slog.String("env", cfg.Env), slog.String("topic", cfg.Kafka.Topic))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}
	defer storage.Close()

	encoder, err := transcoder.NewEncoder(cfg.Renditions.Format)
	if err != nil {
		log.Error("failed to init encoder", sl.Err(err))
		os.Exit(1)
	}
	tc := transcoder.New(encoder)

	store, err := renditions.New(log, renditions.Config{
		Root:        cfg.Renditions.Root,
		URLPrefix:   cfg.Renditions.URLPrefix,
		Ext:         tc.Ext(),
		ContentType: tc.ContentType(),
	})
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

	kafkaConsumer, err := consumer.NewConsumer(&cfg.Kafka, log)
	if err != nil {
		log.Error("failed to create kafka consumer", sl.Err(err))
		os.Exit(1)
	}

	proc := processor.NewFootprintProcessor(log, storage, store, acct)

	kafkaConsumer.ReadMessages(ctx, proc.ProcessMessage)

	if err = kafkaConsumer.Close(); err != nil {
		log.Error("failed to close kafka consumer", sl.Err(err))
	}

	log.Info("photo events processor stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		opts := slogpretty.PrettyHandlerOptions{
			SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
		}
		log = slog.New(opts.NewPrettyHandler(os.Stdout))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}
