package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/octobees/lead-finder/internal/entity"
	"github.com/octobees/lead-finder/internal/service"
)

func TestEnrichHandler_Enrich(t *testing.T) {
	owner := "Jane Doe"
	finder := &stubOwnerFinder{result: entity.Enrichment{OwnerName: &owner, Status: entity.EnrichmentFound}}
	handler := NewEnrichHandler(service.NewEnrichService(finder, nil))

	c, rec := newJSONContext(http.MethodPost, "/api/enrich", `{"name":"Acme","address":"Austin"}`)
	if err := handler.Enrich(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var data map[string]any
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if data["owner_name"] != owner || data["enrichment_status"] != "Found" {
		t.Fatalf("unexpected data: %+v", data)
	}
	if v, ok := data["owner_contact"]; !ok || v != nil {
		t.Fatalf("expected explicit null owner_contact, got %+v", data)
	}
}

func TestEnrichHandler_ErrorStatusIsOK(t *testing.T) {
	handler := NewEnrichHandler(service.NewEnrichService(&stubOwnerFinder{result: entity.Enrichment{Status: entity.EnrichmentError}}, nil))

	c, rec := newJSONContext(http.MethodPost, "/api/enrich", `{"name":"Acme"}`)
	if err := handler.Enrich(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for failed lookup, got %d", rec.Code)
	}
}

func TestEnrichHandler_Validation(t *testing.T) {
	handler := NewEnrichHandler(service.NewEnrichService(&stubOwnerFinder{}, nil))

	c, rec := newJSONContext(http.MethodPost, "/api/enrich", `{"address":"Austin"}`)
	if err := handler.Enrich(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectError(t, rec, http.StatusBadRequest, "name is required")
}
