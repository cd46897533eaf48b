package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/service"
)

// SiteHandler generates landing pages.
type SiteHandler struct {
	sites *service.SiteService
}

// NewSiteHandler constructs a SiteHandler.
func NewSiteHandler(sites *service.SiteService) *SiteHandler {
	return &SiteHandler{sites: sites}
}

// Generate handles POST /api/generate-site requests.
func (h *SiteHandler) Generate(c echo.Context) error {
	var req dto.GenerateSiteRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	resp, err := h.sites.Generate(c.Request().Context(), req)
	if err != nil {
		var validationErr service.ValidationError
		if errors.As(err, &validationErr) {
			return Error(c, http.StatusBadRequest, validationErr.Error())
		}
		return Error(c, http.StatusInternalServerError, "failed to store generated site")
	}

	return Success(c, http.StatusOK, "site generated", resp)
}
