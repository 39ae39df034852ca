package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sjsage522/salewatcher/config"
	"sjsage522/salewatcher/internal/brand"
	"sjsage522/salewatcher/internal/detector"
	"sjsage522/salewatcher/internal/watcher"
	"sjsage522/salewatcher/logger"
	"sjsage522/salewatcher/services/cache"
	"sjsage522/salewatcher/services/publisher"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("hint_policy", cfg.HintPolicy).
		Bool("images", cfg.EnableImages).
		Dur("watch_interval", cfg.WatchInterval).
		Msg("Starting application")

	// Resolve the authoritative brand source; no source is fatal
	brands, source, err := brand.Load(cfg.BrandsCSVPath, cfg.BrandsYAMLPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load brands")
	}
	log.Info().
		Int("brand_count", len(brands)).
		Str("source", source).
		Msg("Loaded brands")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	w := buildWatcher(ctx, &cfg, brands)

	// Run the watcher in a goroutine
	done := make(chan error, 1)
	go func() {
		if cfg.WatchInterval > 0 {
			log.Info().Msg("Starting sale watcher loop")
			done <- w.Start(ctx, cfg.WatchInterval)
			return
		}
		log.Info().Msg("Starting single sale watcher pass")
		_, err := w.Run(ctx)
		done <- err
	}()

	// Wait for shutdown signal or completion
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
		<-done
	case err := <-done:
		if err != nil {
			log.Error().Err(err).Msg("Watcher exited with error")
			os.Exit(1)
		}
	}

	log.Info().Msg("Shutting down gracefully...")
}

// buildWatcher wires the page cache, optional publisher, and run driver
func buildWatcher(ctx context.Context, cfg *config.Config, brands []brand.Record) *watcher.Watcher {
	log := logger.Default

	var pageCache cache.CacheService
	if cfg.MemcacheAddr != "" {
		pageCache = cache.NewMemcacheService(cfg.MemcacheAddr)
		log.Info().Str("addr", cfg.MemcacheAddr).Msg("Using memcache page cache")
	} else {
		pageCache = cache.NewMemoryCache()
	}

	fetcher := watcher.NewFetcher(pageCache, cfg.UserAgent, cfg.FetchTimeout, cfg.PageCacheTTL)

	var pub publisher.Publisher
	if cfg.PublishReports {
		pub = publisher.NewRedisPublisher(ctx, publisher.Options{
			Addr:            cfg.RedisAddr,
			DB:              cfg.RedisDB,
			StreamPrefix:    cfg.RedisStream,
			StreamCount:     cfg.RedisStreamCount,
			StreamMaxLength: cfg.RedisStreamMaxLength,
		})
		log.Info().
			Str("addr", cfg.RedisAddr).
			Str("stream", cfg.RedisStream).
			Msg("Mirroring reports to Redis streams")
	}

	return watcher.NewWatcher(brands, fetcher, pub, watcher.Options{
		Rules:        detector.DefaultRules(),
		HintPolicy:   detector.HintPolicy(cfg.HintPolicy),
		EnableImages: cfg.EnableImages,
		RequestDelay: cfg.RequestDelay,
		OutputPath:   cfg.OutputPath,
	})
}
