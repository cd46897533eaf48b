package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/entity"
	"github.com/octobees/lead-finder/internal/logging"
	"github.com/octobees/lead-finder/internal/metrics"
)

// OwnerFinder looks up the owner of a business.
type OwnerFinder interface {
	FindOwner(ctx context.Context, name, location string) entity.Enrichment
}

// EnrichService wraps the owner lookup so it never fails a request.
type EnrichService struct {
	finder OwnerFinder
	logger *zap.Logger
}

// NewEnrichService constructs an EnrichService.
func NewEnrichService(finder OwnerFinder, logger *zap.Logger) *EnrichService {
	return &EnrichService{finder: finder, logger: logging.OrNop(logger)}
}

// Enrich returns the owner details for req. The address doubles as the
// location context of the search.
func (s *EnrichService) Enrich(ctx context.Context, req dto.EnrichRequest) (out entity.Enrichment) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("enrichment panicked", zap.String("business", req.Name), zap.Any("panic", r))
			metrics.ObserveEnrichment(string(entity.EnrichmentError))
			out = entity.Enrichment{Status: entity.EnrichmentError}
		}
	}()
	return s.finder.FindOwner(ctx, strings.TrimSpace(req.Name), strings.TrimSpace(req.Address))
}
