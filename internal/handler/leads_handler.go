package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/service"
)

// LeadsHandler exposes the stored lead catalogue.
type LeadsHandler struct {
	leads *service.LeadsService
}

// NewLeadsHandler creates a new handler instance.
func NewLeadsHandler(leads *service.LeadsService) *LeadsHandler {
	return &LeadsHandler{leads: leads}
}

// List handles GET /api/leads requests.
func (h *LeadsHandler) List(c echo.Context) error {
	filter := dto.ListFilter{
		Q:             strings.TrimSpace(c.QueryParam("q")),
		Niche:         strings.TrimSpace(c.QueryParam("niche")),
		Location:      strings.TrimSpace(c.QueryParam("location")),
		WebsiteStatus: strings.ToLower(strings.TrimSpace(c.QueryParam("website"))),
		Page:          parseIntDefault(c.QueryParam("page"), 1),
		PerPage:       parseIntDefault(c.QueryParam("per_page"), 20),
	}

	switch filter.WebsiteStatus {
	case "", "missing", "available":
	default:
		return Error(c, http.StatusBadRequest, "website must be missing or available")
	}

	if scanIDParam := strings.TrimSpace(c.QueryParam("scan_id")); scanIDParam != "" {
		parsed, err := uuid.Parse(scanIDParam)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid scan_id")
		}
		filter.ScanID = &parsed
	}

	businesses, err := h.leads.List(c.Request().Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrStoreDisabled) {
			return Error(c, http.StatusServiceUnavailable, "lead store is not configured")
		}
		return Error(c, http.StatusInternalServerError, "failed to list leads")
	}

	return Success(c, http.StatusOK, "leads retrieved", businesses)
}

// Import handles POST /api/leads/import requests carrying a backup CSV.
func (h *LeadsHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return Error(c, http.StatusBadRequest, "missing csv file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return Error(c, http.StatusBadRequest, "unable to open file")
	}
	defer file.Close()

	summary, err := h.leads.ImportBackup(c.Request().Context(), file)
	if err != nil {
		var validationErr service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return Error(c, http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, service.ErrStoreDisabled):
			return Error(c, http.StatusServiceUnavailable, "lead store is not configured")
		default:
			return Error(c, http.StatusInternalServerError, "failed to process csv")
		}
	}

	return Success(c, http.StatusOK, "backup CSV processed", summary)
}

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}
