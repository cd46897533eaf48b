// Package app builds the long-lived services shared by the HTTP server and
// the command line tool.
package app

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/octobees/lead-finder/internal/auth"
	"github.com/octobees/lead-finder/internal/backup"
	"github.com/octobees/lead-finder/internal/config"
	"github.com/octobees/lead-finder/internal/database"
	"github.com/octobees/lead-finder/internal/enrich"
	"github.com/octobees/lead-finder/internal/logging"
	"github.com/octobees/lead-finder/internal/pagestore"
	"github.com/octobees/lead-finder/internal/places"
	"github.com/octobees/lead-finder/internal/repository"
	"github.com/octobees/lead-finder/internal/service"
	"github.com/octobees/lead-finder/internal/sitegen"
)

// App holds the wired services and the resources they own.
type App struct {
	Leads  *service.LeadsService
	Enrich *service.EnrichService
	Sites  *service.SiteService
	// Auth and JWT are nil when no operator is configured.
	Auth *service.AuthService
	JWT  *auth.JWTManager

	logger    *zap.Logger
	pool      *pgxpool.Pool
	gcsClient *storage.Client
}

// Build wires every service from cfg. The database and the backup file are
// optional; a configured database that cannot be reached is an error.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	logger = logging.OrNop(logger)
	a := &App{logger: logger}

	var repo repository.BusinessesRepository
	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		a.pool = pool
		if err := database.Migrate(ctx, pool); err != nil {
			a.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		repo = repository.NewPGXBusinessesRepository(pool)
		logger.Info("lead store enabled")
	} else {
		logger.Info("DATABASE_URL not set, lead store disabled")
	}

	var sink places.Sink
	if cfg.BackupEnabled() {
		sink = backup.NewWriter(cfg.BackupFile)
		logger.Info("backup enabled", zap.String("path", cfg.BackupFile))
	}

	fetcher := places.NewFetcher(places.FetcherConfig{
		MaxPerQuery:    cfg.Scan.MaxPerQuery,
		PageDelay:      cfg.Scan.PageDelay,
		RequestTimeout: cfg.Scan.RequestTimeout,
		PhoneRegion:    cfg.Scan.PhoneRegion,
	}, sink, logger.Named("places"))
	scanner := places.NewScanner(places.NewMapsClientFactory(cfg.Scan.RequestTimeout, ""), fetcher, cfg.Scan.Workers, logger.Named("places"))
	a.Leads = service.NewLeadsService(scanner, repo, cfg.Scan.DefaultAPIKey, logger)

	searcher := enrich.NewCollySearcher(cfg.Enrich.SearchURL, cfg.Enrich.Timeout)
	a.Enrich = service.NewEnrichService(enrich.NewFinder(searcher, logger.Named("enrich")), logger)

	generator := sitegen.NewGenerator(
		sitegen.NewOpenAIProvider(cfg.Site.OpenAIBaseURL, cfg.Site.OpenAIModel, cfg.Site.Timeout),
		sitegen.NewGeminiProvider(cfg.Site.GeminiEndpoint, cfg.Site.GeminiModels, cfg.Site.Timeout),
		sitegen.NewFallback(cfg.Site.ImageBaseURL, nil),
		logger.Named("sitegen"),
	)
	store, err := a.pageStore(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Sites = service.NewSiteService(generator, store, logger)

	if cfg.AuthEnabled() {
		if cfg.OperatorPasswordHash == "" {
			logger.Warn("OPERATOR_EMAIL set without OPERATOR_PASSWORD_HASH, logins will be rejected")
		}
		a.JWT = auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
		a.Auth = service.NewAuthService(cfg.OperatorEmail, cfg.OperatorPasswordHash, a.JWT)
	}

	return a, nil
}

func (a *App) pageStore(ctx context.Context, cfg *config.Config) (pagestore.Store, error) {
	switch cfg.Site.PageStore {
	case "gcs":
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("create storage client: %w", err)
		}
		a.gcsClient = client
		a.logger.Info("using GCS page store", zap.String("bucket", cfg.Site.GCSBucket))
		return pagestore.NewGCSStore(client, cfg.Site.GCSBucket)
	default:
		store, err := pagestore.NewLocalStore(cfg.StaticDir)
		if err != nil {
			return nil, fmt.Errorf("init local page store: %w", err)
		}
		return store, nil
	}
}

// StoreEnabled reports whether a database backs the lead store.
func (a *App) StoreEnabled() bool {
	return a.pool != nil
}

// Close releases the database pool and the storage client.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
	if a.gcsClient != nil {
		if err := a.gcsClient.Close(); err != nil {
			a.logger.Warn("close storage client", zap.Error(err))
		}
		a.gcsClient = nil
	}
}
