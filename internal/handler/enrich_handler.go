package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/service"
)

// EnrichHandler looks up business owners.
type EnrichHandler struct {
	enrich *service.EnrichService
}

// NewEnrichHandler wires a new EnrichHandler instance.
func NewEnrichHandler(enrich *service.EnrichService) *EnrichHandler {
	return &EnrichHandler{enrich: enrich}
}

// Enrich handles POST /api/enrich requests. Lookup failures are reported in
// the enrichment status, never as an HTTP error.
func (h *EnrichHandler) Enrich(c echo.Context) error {
	var req dto.EnrichRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Name) == "" {
		return Error(c, http.StatusBadRequest, "name is required")
	}

	result := h.enrich.Enrich(c.Request().Context(), req)
	return Success(c, http.StatusOK, "enrichment completed", result)
}
