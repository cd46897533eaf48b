package places

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"googlemaps.github.io/maps"
)

type placesStub struct {
	mu           sync.Mutex
	pages        map[string]maps.PlacesSearchResponse
	details      map[string]maps.PlaceDetailsResult
	failQuery    map[string]bool
	failDetails  map[string]bool
	searchCalls  []maps.TextSearchRequest
	detailsCalls int
	inFlight     int
	maxInFlight  int
	delay        time.Duration
}

func newPlacesStub() *placesStub {
	return &placesStub{
		pages:       map[string]maps.PlacesSearchResponse{},
		details:     map[string]maps.PlaceDetailsResult{},
		failQuery:   map[string]bool{},
		failDetails: map[string]bool{},
	}
}

func (s *placesStub) TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error) {
	s.mu.Lock()
	s.searchCalls = append(s.searchCalls, *r)
	s.inFlight++
	if s.inFlight > s.maxInFlight {
		s.maxInFlight = s.inFlight
	}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	key := r.Query
	if r.PageToken != "" {
		key = "token:" + r.PageToken
	}
	if s.failQuery[key] {
		return maps.PlacesSearchResponse{}, errors.New("places unavailable")
	}
	if page, ok := s.pages[key]; ok {
		return page, nil
	}
	return maps.PlacesSearchResponse{}, nil
}

func (s *placesStub) PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error) {
	s.mu.Lock()
	s.detailsCalls++
	s.mu.Unlock()
	if s.failDetails[r.PlaceID] {
		return maps.PlaceDetailsResult{}, errors.New("details unavailable")
	}
	if res, ok := s.details[r.PlaceID]; ok {
		return res, nil
	}
	return maps.PlaceDetailsResult{Name: strings.ToUpper(r.PlaceID)}, nil
}

func resultsFor(ids ...string) []maps.PlacesSearchResult {
	out := make([]maps.PlacesSearchResult, 0, len(ids))
	for _, id := range ids {
		out = append(out, maps.PlacesSearchResult{PlaceID: id})
	}
	return out
}

func noSleep(context.Context, time.Duration) error { return nil }
