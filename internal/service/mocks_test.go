package service

import (
	"context"

	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/entity"
	"github.com/octobees/lead-finder/internal/places"
	"github.com/octobees/lead-finder/internal/repository"
	"github.com/octobees/lead-finder/internal/sitegen"
)

type mockScanner struct {
	scan func(ctx context.Context, req places.ScanRequest) (places.ScanResult, error)
}

func (m *mockScanner) Scan(ctx context.Context, req places.ScanRequest) (places.ScanResult, error) {
	return m.scan(ctx, req)
}

type mockBusinessesRepository struct {
	bulkUpsert func(ctx context.Context, businesses []entity.Business) (repository.BulkUpsertResult, error)
	list       func(ctx context.Context, filter dto.ListFilter) ([]entity.Business, error)
}

func (m *mockBusinessesRepository) BulkUpsert(ctx context.Context, businesses []entity.Business) (repository.BulkUpsertResult, error) {
	if m.bulkUpsert == nil {
		return repository.BulkUpsertResult{Total: len(businesses)}, nil
	}
	return m.bulkUpsert(ctx, businesses)
}

func (m *mockBusinessesRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Business, error) {
	if m.list == nil {
		return nil, nil
	}
	return m.list(ctx, filter)
}

type mockOwnerFinder struct {
	findOwner func(ctx context.Context, name, location string) entity.Enrichment
}

func (m *mockOwnerFinder) FindOwner(ctx context.Context, name, location string) entity.Enrichment {
	return m.findOwner(ctx, name, location)
}

type mockPageGenerator struct {
	generate func(ctx context.Context, req sitegen.GenerateRequest) sitegen.Page
}

func (m *mockPageGenerator) Generate(ctx context.Context, req sitegen.GenerateRequest) sitegen.Page {
	return m.generate(ctx, req)
}

type mockStore struct {
	put func(ctx context.Context, name, html string) (string, error)
}

func (m *mockStore) Put(ctx context.Context, name, html string) (string, error) {
	return m.put(ctx, name, html)
}
