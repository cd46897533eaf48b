package places

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/octobees/lead-finder/internal/entity"
	"github.com/octobees/lead-finder/internal/logging"
	"github.com/octobees/lead-finder/internal/metrics"
)

const defaultWorkers = 5

// ScanRequest describes a single lead search.
type ScanRequest struct {
	Niche    string
	Location string
	APIKey   string
	DeepScan bool
}

// ScanResult holds the deduplicated businesses found by a scan.
type ScanResult struct {
	ScanID     uuid.UUID
	Queries    []string
	Businesses []entity.Business
}

// Scanner fans a search out into queries and runs them on a bounded pool.
type Scanner struct {
	factory ClientFactory
	fetcher *Fetcher
	workers int
	logger  *zap.Logger
	newID   func() uuid.UUID
}

// NewScanner builds a Scanner running at most workers queries at once.
func NewScanner(factory ClientFactory, fetcher *Fetcher, workers int, logger *zap.Logger) *Scanner {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Scanner{
		factory: factory,
		fetcher: fetcher,
		workers: workers,
		logger:  logging.OrNop(logger),
		newID:   uuid.New,
	}
}

// Scan runs every query for req and merges the results by place id. Failed
// queries are logged and skipped; the only error returned is for a request
// that cannot start at all.
func (s *Scanner) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	if strings.TrimSpace(req.APIKey) == "" {
		return ScanResult{}, ErrMissingAPIKey
	}
	api, err := s.factory(req.APIKey)
	if err != nil {
		return ScanResult{}, fmt.Errorf("create places client: %w", err)
	}

	scanID := s.newID()
	origin := entity.Origin{ScanID: &scanID, Niche: req.Niche, Location: req.Location}
	queries := BuildQueries(req.Niche, req.Location, req.DeepScan)
	log := s.logger.With(zap.String("scan_id", scanID.String()))
	log.Info("scan started",
		zap.String("niche", req.Niche),
		zap.String("location", req.Location),
		zap.Bool("deep_scan", req.DeepScan),
		zap.Int("queries", len(queries)),
	)

	batches := make([][]entity.Business, len(queries))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, query := range queries {
		g.Go(func() error {
			metrics.IncActiveWorkers()
			defer metrics.DecActiveWorkers()

			found, err := s.fetcher.Fetch(ctx, api, query, origin)
			if err != nil {
				metrics.ObserveScanQuery("failed")
				log.Warn("query failed", zap.String("query", query), zap.Error(err))
				return nil
			}
			metrics.ObserveScanQuery("ok")
			metrics.AddScanPlaces(len(found))
			batches[i] = found
			return nil
		})
	}
	_ = g.Wait()

	merged := Merge(batches...)
	log.Info("scan finished", zap.Int("unique_places", len(merged)))

	return ScanResult{ScanID: scanID, Queries: queries, Businesses: merged}, nil
}
