package handler

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/lead-finder/internal/service"
)

func newLeadsHandler(repo *capturingBusinessesRepo) *LeadsHandler {
	if repo == nil {
		return NewLeadsHandler(service.NewLeadsService(&stubScanner{}, nil, "", nil))
	}
	return NewLeadsHandler(service.NewLeadsService(&stubScanner{}, repo, "", nil))
}

func TestLeadsHandler_List(t *testing.T) {
	repo := &capturingBusinessesRepo{}
	c, rec := newJSONContext(http.MethodGet, "/api/leads?q=acme&niche=Plumbers&website=MISSING&scan_id=22222222-2222-2222-2222-222222222222&page=2&per_page=500", "")

	if err := newLeadsHandler(repo).List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	f := repo.lastFilter
	if f.Q != "acme" || f.Niche != "Plumbers" || f.WebsiteStatus != "missing" || f.ScanID == nil {
		t.Fatalf("unexpected filter: %+v", f)
	}
	if f.Page != 2 || f.PerPage != 100 {
		t.Fatalf("expected clamped pagination, got page=%d per_page=%d", f.Page, f.PerPage)
	}
}

func TestLeadsHandler_List_Errors(t *testing.T) {
	tests := map[string]struct {
		target  string
		repo    *capturingBusinessesRepo
		status  int
		message string
	}{
		"invalid scan id": {target: "/api/leads?scan_id=nope", repo: &capturingBusinessesRepo{}, status: http.StatusBadRequest, message: "invalid scan_id"},
		"invalid website": {target: "/api/leads?website=maybe", repo: &capturingBusinessesRepo{}, status: http.StatusBadRequest, message: "website must be missing or available"},
		"store disabled":  {target: "/api/leads", status: http.StatusServiceUnavailable, message: "lead store is not configured"},
		"repo failure":    {target: "/api/leads", repo: &capturingBusinessesRepo{err: errors.New("db")}, status: http.StatusInternalServerError, message: "failed to list leads"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodGet, tt.target, "")
			if err := newLeadsHandler(tt.repo).List(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			expectError(t, rec, tt.status, tt.message)
		})
	}
}

func newUploadContext(t *testing.T, content string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "leads_backup.csv")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/leads/import", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLeadsHandler_Import(t *testing.T) {
	repo := &capturingBusinessesRepo{}
	c, rec := newUploadContext(t, "Name,Address,Phone,Website,Has Website,Place ID\nAcme,1 Main St,555,,No,p1\n")

	if err := newLeadsHandler(repo).Import(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.imported) != 1 || repo.imported[0].PlaceID != "p1" {
		t.Fatalf("unexpected import: %+v", repo.imported)
	}
}

func TestLeadsHandler_Import_Errors(t *testing.T) {
	c, rec := newUploadContext(t, "Name,Address,Phone,Website,Has Website,Place ID\nAcme,1 Main St,555,,No,\n")
	if err := newLeadsHandler(&capturingBusinessesRepo{}).Import(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectError(t, rec, http.StatusBadRequest, "backup line 2: missing place id")

	c, rec = newUploadContext(t, "Name,Address,Phone,Website,Has Website,Place ID\n")
	if err := newLeadsHandler(nil).Import(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectError(t, rec, http.StatusServiceUnavailable, "lead store is not configured")

	c, rec = newJSONContext(http.MethodPost, "/api/leads/import", `{}`)
	if err := newLeadsHandler(&capturingBusinessesRepo{}).Import(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectError(t, rec, http.StatusBadRequest, "missing csv file")
}
