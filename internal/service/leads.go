package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/octobees/lead-finder/internal/backup"
	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/entity"
	"github.com/octobees/lead-finder/internal/logging"
	"github.com/octobees/lead-finder/internal/places"
	"github.com/octobees/lead-finder/internal/repository"
)

var (
	// ErrMissingAPIKey is returned when neither the request nor the config carries a places key.
	ErrMissingAPIKey = places.ErrMissingAPIKey
	// ErrStoreDisabled is returned by lead store operations when no database is configured.
	ErrStoreDisabled = errors.New("lead store is not configured")
)

// ValidationError reports a request that is missing required input.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// Scanner runs a places fanout.
type Scanner interface {
	Scan(ctx context.Context, req places.ScanRequest) (places.ScanResult, error)
}

// LeadsService orchestrates lead searches and the optional lead store.
type LeadsService struct {
	scanner       Scanner
	repo          repository.BusinessesRepository
	defaultAPIKey string
	logger        *zap.Logger
}

// NewLeadsService wires the service. repo may be nil when no database is configured.
func NewLeadsService(scanner Scanner, repo repository.BusinessesRepository, defaultAPIKey string, logger *zap.Logger) *LeadsService {
	return &LeadsService{
		scanner:       scanner,
		repo:          repo,
		defaultAPIKey: strings.TrimSpace(defaultAPIKey),
		logger:        logging.OrNop(logger),
	}
}

// StoreEnabled reports whether scans are persisted.
func (s *LeadsService) StoreEnabled() bool {
	return s.repo != nil
}

// Search scans for businesses and returns the ones without a website.
func (s *LeadsService) Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error) {
	req.Niche = strings.TrimSpace(req.Niche)
	req.Location = strings.TrimSpace(req.Location)
	if req.Niche == "" || req.Location == "" {
		return dto.SearchResponse{}, ValidationError{Message: "niche and location are required"}
	}

	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		apiKey = s.defaultAPIKey
	}
	if apiKey == "" {
		return dto.SearchResponse{}, ErrMissingAPIKey
	}

	result, err := s.scanner.Scan(ctx, places.ScanRequest{
		Niche:    req.Niche,
		Location: req.Location,
		APIKey:   apiKey,
		DeepScan: req.DeepScan,
	})
	if err != nil {
		return dto.SearchResponse{}, fmt.Errorf("scan: %w", err)
	}

	s.persist(ctx, result)

	leads := make([]dto.LeadResponse, 0, len(result.Businesses))
	for _, b := range result.Businesses {
		if b.HasWebsite {
			continue
		}
		leads = append(leads, toLeadResponse(b))
	}

	return dto.SearchResponse{
		ScanID:       result.ScanID.String(),
		Queries:      result.Queries,
		Results:      leads,
		TotalFound:   len(leads),
		TotalScanned: len(result.Businesses),
	}, nil
}

func (s *LeadsService) persist(ctx context.Context, result places.ScanResult) {
	if s.repo == nil || len(result.Businesses) == 0 {
		return
	}
	summary, err := s.repo.BulkUpsert(ctx, result.Businesses)
	if err != nil {
		s.logger.Warn("persist scan failed", zap.String("scan_id", result.ScanID.String()), zap.Error(err))
		return
	}
	s.logger.Info("scan persisted",
		zap.String("scan_id", result.ScanID.String()),
		zap.Int("inserted", summary.Inserted),
		zap.Int("updated", summary.Updated),
	)
}

// List returns stored leads respecting pagination defaults.
func (s *LeadsService) List(ctx context.Context, filter dto.ListFilter) ([]entity.Business, error) {
	if s.repo == nil {
		return nil, ErrStoreDisabled
	}
	filter.Page, filter.PerPage = repository.Paginate(filter.Page, filter.PerPage)
	return s.repo.List(ctx, filter)
}

// ImportBackup loads a backup CSV into the lead store.
func (s *LeadsService) ImportBackup(ctx context.Context, r io.Reader) (repository.BulkUpsertResult, error) {
	if s.repo == nil {
		return repository.BulkUpsertResult{}, ErrStoreDisabled
	}
	businesses, err := backup.ReadAll(r)
	if err != nil {
		var formatErr *backup.FormatError
		var parseErr *csv.ParseError
		switch {
		case errors.As(err, &formatErr):
			return repository.BulkUpsertResult{}, ValidationError{Message: formatErr.Error()}
		case errors.As(err, &parseErr):
			return repository.BulkUpsertResult{}, ValidationError{Message: parseErr.Error()}
		}
		return repository.BulkUpsertResult{}, err
	}
	return s.repo.BulkUpsert(ctx, businesses)
}

func toLeadResponse(b entity.Business) dto.LeadResponse {
	return dto.LeadResponse{
		PlaceID:    b.PlaceID,
		Name:       b.Name,
		Address:    optional(b.Address),
		Phone:      optional(b.Phone),
		PhoneE164:  b.PhoneE164,
		Website:    optional(b.Website),
		HasWebsite: b.HasWebsite,
		Source:     b.Source,
	}
}

// optional maps an empty field to a JSON null.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
