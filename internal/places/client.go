package places

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

// ErrMissingAPIKey is returned when a scan is requested without a places key.
var ErrMissingAPIKey = errors.New("google api key is required")

// detailFields limits place detail lookups to the fields a lead needs.
var detailFields = []maps.PlaceDetailsFieldMask{
	maps.PlaceDetailsFieldMaskName,
	maps.PlaceDetailsFieldMaskFormattedAddress,
	maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
	maps.PlaceDetailsFieldMaskWebsite,
}

// PlacesAPI is the subset of the Google Maps client used by the fetcher.
type PlacesAPI interface {
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
}

// ClientFactory builds a PlacesAPI bound to the caller's API key.
type ClientFactory func(apiKey string) (PlacesAPI, error)

// NewMapsClientFactory returns a factory producing googlemaps clients.
// baseURL is only overridden when non-empty.
func NewMapsClientFactory(timeout time.Duration, baseURL string) ClientFactory {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}
	return func(apiKey string) (PlacesAPI, error) {
		apiKey = strings.TrimSpace(apiKey)
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}
		opts := []maps.ClientOption{
			maps.WithAPIKey(apiKey),
			maps.WithHTTPClient(httpClient),
		}
		if baseURL != "" {
			opts = append(opts, maps.WithBaseURL(baseURL))
		}
		client, err := maps.NewClient(opts...)
		if err != nil {
			return nil, fmt.Errorf("create maps client: %w", err)
		}
		return client, nil
	}
}

var _ PlacesAPI = (*maps.Client)(nil)
