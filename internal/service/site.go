package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/logging"
	"github.com/octobees/lead-finder/internal/pagestore"
	"github.com/octobees/lead-finder/internal/sitegen"
)

// PageGenerator produces landing page HTML.
type PageGenerator interface {
	Generate(ctx context.Context, req sitegen.GenerateRequest) sitegen.Page
}

// SiteService generates landing pages and stores them for preview.
type SiteService struct {
	generator PageGenerator
	store     pagestore.Store
	logger    *zap.Logger
}

// NewSiteService constructs a SiteService.
func NewSiteService(generator PageGenerator, store pagestore.Store, logger *zap.Logger) *SiteService {
	return &SiteService{generator: generator, store: store, logger: logging.OrNop(logger)}
}

// Generate builds the page for req and returns where it can be previewed.
func (s *SiteService) Generate(ctx context.Context, req dto.GenerateSiteRequest) (dto.GenerateSiteResponse, error) {
	req.BusinessName = strings.TrimSpace(req.BusinessName)
	if req.BusinessName == "" {
		return dto.GenerateSiteResponse{}, ValidationError{Message: "business_name is required"}
	}
	if strings.TrimSpace(req.AIAPIKey) == "" {
		return dto.GenerateSiteResponse{}, ValidationError{Message: "AI API Key is required"}
	}

	provider := sitegen.ProviderName(req.Provider)
	s.logger.Info("generating site", zap.String("business", req.BusinessName), zap.String("provider", provider))

	page := s.generator.Generate(ctx, sitegen.GenerateRequest{
		BusinessName: req.BusinessName,
		Niche:        strings.TrimSpace(req.Niche),
		Location:     strings.TrimSpace(req.Location),
		APIKey:       strings.TrimSpace(req.AIAPIKey),
		Provider:     provider,
	})

	fileName := pagestore.FileName(req.BusinessName)
	preview, err := s.store.Put(ctx, fileName, page.HTML)
	if err != nil {
		return dto.GenerateSiteResponse{}, fmt.Errorf("store page: %w", err)
	}

	return dto.GenerateSiteResponse{PreviewURL: preview, FileName: fileName, Source: page.Source}, nil
}
