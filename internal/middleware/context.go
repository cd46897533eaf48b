package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Context keys used to store request metadata.
const (
	ContextKeyOperator  = "operator_email"
	ContextKeyRole      = "operator_role"
	ContextKeyRequestID = "request_id"
)

// deny writes the API error envelope without depending on the handler package.
func deny(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, map[string]string{"status": "error", "message": message})
}
