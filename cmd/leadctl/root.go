package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/octobees/lead-finder/internal/app"
	"github.com/octobees/lead-finder/internal/config"
	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/entity"
	"github.com/octobees/lead-finder/internal/logging"
)

type servicesKeyType string

const servicesKey servicesKeyType = "services"

type leadSearcher interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
}

type ownerEnricher interface {
	Enrich(ctx context.Context, req dto.EnrichRequest) entity.Enrichment
}

type siteGenerator interface {
	Generate(ctx context.Context, req dto.GenerateSiteRequest) (dto.GenerateSiteResponse, error)
}

// services is what the subcommands run against.
type services struct {
	leads  leadSearcher
	enrich ownerEnricher
	sites  siteGenerator
	close  func()
}

type options struct {
	staticDir string
	logDev    bool
}

// buildServices is replaced in tests.
var buildServices = func(ctx context.Context, opts options) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.staticDir != "" {
		cfg.StaticDir = opts.staticDir
	}

	logger, err := logging.New(opts.logDev || cfg.LogDevelopment)
	if err != nil {
		return nil, err
	}

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return &services{
		leads:  a.Leads,
		enrich: a.Enrich,
		sites:  a.Sites,
		close: func() {
			a.Close()
			_ = logger.Sync()
		},
	}, nil
}

// newRootCmd returns the command tree and a release func that closes the
// services built for the run. Release runs whether or not the command failed.
func newRootCmd() (*cobra.Command, func()) {
	var (
		opts  options
		built *services
	)
	release := func() {
		if built != nil && built.close != nil {
			built.close()
		}
		built = nil
	}

	cmd := &cobra.Command{
		Use:           "leadctl",
		Short:         "Find local businesses without a website and pitch them one",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := buildServices(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to initialize services: %w", err)
			}
			built = svc
			cmd.SetContext(context.WithValue(cmd.Context(), servicesKey, svc))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.staticDir, "static-dir", "", "directory generated pages are written under (overrides STATIC_DIR)")
	cmd.PersistentFlags().BoolVar(&opts.logDev, "log-dev", false, "human readable logs on stderr")

	cmd.AddCommand(newSearchCmd(), newEnrichCmd(), newGenerateCmd())
	return cmd, release
}

func resolveServices(ctx context.Context) (*services, error) {
	svc, ok := ctx.Value(servicesKey).(*services)
	if !ok || svc == nil {
		return nil, errors.New("services not initialized")
	}
	return svc, nil
}
