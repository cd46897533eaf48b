package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/service"
)

// SearchHandler runs lead searches.
type SearchHandler struct {
	leads *service.LeadsService
}

// NewSearchHandler constructs a SearchHandler.
func NewSearchHandler(leads *service.LeadsService) *SearchHandler {
	return &SearchHandler{leads: leads}
}

// Search handles POST /api/search requests.
func (h *SearchHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	resp, err := h.leads.Search(c.Request().Context(), req)
	if err != nil {
		var validationErr service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return Error(c, http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, service.ErrMissingAPIKey):
			return Error(c, http.StatusBadRequest, "API Key is required")
		default:
			return Error(c, http.StatusInternalServerError, "search failed")
		}
	}

	return Success(c, http.StatusOK, "search completed", resp)
}
