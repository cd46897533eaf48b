package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/entity"
	"github.com/octobees/lead-finder/internal/places"
	"github.com/octobees/lead-finder/internal/repository"
	"github.com/octobees/lead-finder/internal/sitegen"
)

type stubScanner struct {
	result places.ScanResult
	err    error
}

func (s *stubScanner) Scan(ctx context.Context, req places.ScanRequest) (places.ScanResult, error) {
	return s.result, s.err
}

type capturingBusinessesRepo struct {
	lastFilter dto.ListFilter
	imported   []entity.Business
	err        error
}

func (r *capturingBusinessesRepo) BulkUpsert(ctx context.Context, businesses []entity.Business) (repository.BulkUpsertResult, error) {
	r.imported = businesses
	if r.err != nil {
		return repository.BulkUpsertResult{}, r.err
	}
	return repository.BulkUpsertResult{Inserted: len(businesses), Total: len(businesses)}, nil
}

func (r *capturingBusinessesRepo) List(ctx context.Context, filter dto.ListFilter) ([]entity.Business, error) {
	r.lastFilter = filter
	if r.err != nil {
		return nil, r.err
	}
	return []entity.Business{entity.NewBusiness("p1", "Acme", "", "", "", entity.Origin{})}, nil
}

type stubOwnerFinder struct {
	result entity.Enrichment
}

func (s *stubOwnerFinder) FindOwner(ctx context.Context, name, location string) entity.Enrichment {
	return s.result
}

type stubGenerator struct {
	page sitegen.Page
}

func (s *stubGenerator) Generate(ctx context.Context, req sitegen.GenerateRequest) sitegen.Page {
	return s.page
}

type stubStore struct {
	err error
}

func (s *stubStore) Put(ctx context.Context, name, html string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "/static/generated/" + name, nil
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var payload envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	payload := decodeEnvelope(t, rec)
	if payload.Status != "error" || payload.Message != message {
		t.Fatalf("unexpected error payload: %+v", payload)
	}
}
