package enrich

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/octobees/lead-finder/internal/entity"
	"github.com/octobees/lead-finder/internal/logging"
	"github.com/octobees/lead-finder/internal/metrics"
)

// Finder runs the owner lookup queries for one business.
type Finder struct {
	searcher Searcher
	logger   *zap.Logger
}

// NewFinder builds a Finder using searcher.
func NewFinder(searcher Searcher, logger *zap.Logger) *Finder {
	return &Finder{searcher: searcher, logger: logging.OrNop(logger)}
}

// Queries returns the searches issued for a business, in order.
func Queries(name, location string) []string {
	base := strings.TrimSpace(strings.TrimSpace(name) + " " + strings.TrimSpace(location))
	return []string{
		fmt.Sprintf("%s owner", base),
		fmt.Sprintf("%s contact email", base),
	}
}

// FindOwner searches for the owner of name at location. Failed searches are
// skipped; the result is Error only when ctx ends before any answer is found.
func (f *Finder) FindOwner(ctx context.Context, name, location string) entity.Enrichment {
	var found findings
	for _, q := range Queries(name, location) {
		if found.complete() {
			break
		}
		if err := ctx.Err(); err != nil {
			break
		}
		f.logger.Debug("enrichment search", zap.String("query", q))
		snippets, err := f.searcher.Snippets(ctx, q)
		if err != nil {
			f.logger.Warn("enrichment search failed", zap.String("query", q), zap.Error(err))
			continue
		}
		for _, s := range snippets {
			found.scan(s)
		}
	}

	out := found.enrichment()
	if out.Status == entity.EnrichmentNotFound && out.OwnerContact == nil && ctx.Err() != nil {
		out.Status = entity.EnrichmentError
	}
	metrics.ObserveEnrichment(string(out.Status))
	return out
}
