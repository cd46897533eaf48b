package router

import (
	"github.com/labstack/echo/v4"

	"github.com/octobees/lead-finder/internal/auth"
	"github.com/octobees/lead-finder/internal/config"
	"github.com/octobees/lead-finder/internal/handler"
	"github.com/octobees/lead-finder/internal/metrics"
	middlewarepkg "github.com/octobees/lead-finder/internal/middleware"
)

const (
	searchPath   = "/api/search"
	generatePath = "/api/generate-site"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth   *handler.AuthHandler
	Search *handler.SearchHandler
	Enrich *handler.EnrichHandler
	Site   *handler.SiteHandler
	Leads  *handler.LeadsHandler
}

// Register wires all HTTP routes for the API. A nil jwtManager leaves the
// /api routes open.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.Static("/static", cfg.StaticDir)

	if jwtManager != nil && handlers.Auth != nil {
		e.POST("/auth/login", handlers.Auth.Login)
	}

	api := e.Group("/api")
	if jwtManager != nil {
		api.Use(middlewarepkg.JWT(jwtManager), middlewarepkg.RequireRole(auth.RoleOperator))
	}

	api.POST("/search", handlers.Search.Search, middlewarepkg.PathRateLimiter(searchPath, cfg.RateLimitSearch))
	api.POST("/enrich", handlers.Enrich.Enrich)
	api.POST("/generate-site", handlers.Site.Generate, middlewarepkg.PathRateLimiter(generatePath, cfg.RateLimitGenerate))
	api.GET("/leads", handlers.Leads.List)
	api.POST("/leads/import", handlers.Leads.Import)
}
