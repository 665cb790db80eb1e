// Package main provides the sheet server binary: it loads the rules
// catalog, connects to PostgreSQL, and serves the character API.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/sheet/internal/api"
	"github.com/cory-johannsen/sheet/internal/config"
	"github.com/cory-johannsen/sheet/internal/game/catalog"
	"github.com/cory-johannsen/sheet/internal/observability"
	"github.com/cory-johannsen/sheet/internal/server"
	"github.com/cory-johannsen/sheet/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "path to rules catalog directory (overrides config)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Content.Dir = *contentDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting sheet server",
		zap.String("http_addr", cfg.HTTP.Addr()),
	)

	// Load the rules catalog
	catStart := time.Now()
	registry, err := catalog.Load(cfg.Content.Dir)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}
	if findings := catalog.ValidateRefs(registry); len(findings) > 0 {
		for _, f := range findings {
			logger.Warn("catalog reference issue",
				zap.String("kind", f.Kind),
				zap.String("id", f.ID),
				zap.String("detail", f.Msg),
			)
		}
		logger.Fatal("catalog failed validation", zap.Int("findings", len(findings)))
	}
	logger.Info("catalog loaded",
		zap.String("dir", cfg.Content.Dir),
		zap.Duration("elapsed", time.Since(catStart)),
	)

	// Connect to PostgreSQL for character persistence
	dbStart := time.Now()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Duration("elapsed", time.Since(dbStart)),
	)

	charRepo := postgres.NewCharacterRepository(pool.DB())
	handler := api.NewCharacterHandler(charRepo, registry, logger)
	router := api.NewRouter(logger, handler, pool)

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	lc := server.NewLifecycle(logger)
	lc.Add("http", &server.HTTPService{
		Server: httpServer,
		Grace:  cfg.HTTP.ShutdownGracePeriod,
	})

	logger.Info("sheet server ready", zap.Duration("startup", time.Since(start)))
	if err := lc.Run(ctx); err != nil {
		logger.Fatal("server terminated", zap.Error(err))
	}
}
