package places

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"github.com/octobees/lead-finder/internal/entity"
	"github.com/octobees/lead-finder/internal/logging"
)

const (
	defaultMaxPerQuery = 60
	defaultPageDelay   = 2 * time.Second
)

// Sink receives every business as soon as its details are fetched.
type Sink interface {
	Append(b entity.Business) error
}

// FetcherConfig controls pagination for a single query.
type FetcherConfig struct {
	MaxPerQuery    int
	PageDelay      time.Duration
	RequestTimeout time.Duration
	PhoneRegion    string
}

// Fetcher runs one text query against the places API, following page tokens
// and resolving details for every result.
type Fetcher struct {
	cfg    FetcherConfig
	sink   Sink
	logger *zap.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewFetcher builds a Fetcher. sink may be nil.
func NewFetcher(cfg FetcherConfig, sink Sink, logger *zap.Logger) *Fetcher {
	if cfg.MaxPerQuery <= 0 {
		cfg.MaxPerQuery = defaultMaxPerQuery
	}
	if cfg.PageDelay < 0 {
		cfg.PageDelay = defaultPageDelay
	}
	return &Fetcher{
		cfg:    cfg,
		sink:   sink,
		logger: logging.OrNop(logger),
		sleep:  sleepContext,
	}
}

// Fetch executes query and returns the detail records it found. Only a failure
// of the initial search is returned; detail and page failures are logged and
// the results collected so far are kept.
func (f *Fetcher) Fetch(ctx context.Context, api PlacesAPI, query string, origin entity.Origin) ([]entity.Business, error) {
	log := f.logger.With(zap.String("query", query))

	page, err := f.search(ctx, api, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("text search %q: %w", query, err)
	}

	var results []entity.Business
	for {
		log.Debug("places page received", zap.Int("results", len(page.Results)))
		for _, place := range page.Results {
			b, err := f.details(ctx, api, place.PlaceID, origin)
			if err != nil {
				log.Warn("place details failed", zap.String("place_id", place.PlaceID), zap.Error(err))
				continue
			}
			results = append(results, b)
			f.persist(b)
		}

		if page.NextPageToken == "" || len(results) >= f.cfg.MaxPerQuery {
			break
		}

		// Page tokens take a moment to become valid on the vendor side.
		if err := f.sleep(ctx, f.cfg.PageDelay); err != nil {
			log.Warn("pagination interrupted", zap.Error(err))
			break
		}
		page, err = f.search(ctx, api, &maps.TextSearchRequest{PageToken: page.NextPageToken})
		if err != nil {
			log.Warn("pagination failed", zap.Error(err))
			break
		}
	}

	return results, nil
}

func (f *Fetcher) search(ctx context.Context, api PlacesAPI, req *maps.TextSearchRequest) (maps.PlacesSearchResponse, error) {
	ctx, cancel := f.requestContext(ctx)
	defer cancel()
	return api.TextSearch(ctx, req)
}

func (f *Fetcher) details(ctx context.Context, api PlacesAPI, placeID string, origin entity.Origin) (entity.Business, error) {
	ctx, cancel := f.requestContext(ctx)
	defer cancel()

	res, err := api.PlaceDetails(ctx, &maps.PlaceDetailsRequest{PlaceID: placeID, Fields: detailFields})
	if err != nil {
		return entity.Business{}, err
	}

	b := entity.NewBusiness(placeID, res.Name, res.FormattedAddress, res.FormattedPhoneNumber, res.Website, origin)
	b.PhoneE164 = NormalizePhone(res.FormattedPhoneNumber, f.cfg.PhoneRegion)
	return b, nil
}

func (f *Fetcher) persist(b entity.Business) {
	if f.sink == nil {
		return
	}
	if err := f.sink.Append(b); err != nil {
		f.logger.Warn("backup append failed", zap.String("place_id", b.PlaceID), zap.Error(err))
	}
}

func (f *Fetcher) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.cfg.RequestTimeout > 0 {
		return context.WithTimeout(ctx, f.cfg.RequestTimeout)
	}
	return context.WithCancel(ctx)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
