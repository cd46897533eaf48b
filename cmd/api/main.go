package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/octobees/lead-finder/internal/app"
	"github.com/octobees/lead-finder/internal/config"
	"github.com/octobees/lead-finder/internal/handler"
	"github.com/octobees/lead-finder/internal/logging"
	middlewarepkg "github.com/octobees/lead-finder/internal/middleware"
	"github.com/octobees/lead-finder/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	services, err := app.Build(ctx, cfg, logger)
	cancel()
	if err != nil {
		logger.Fatal("failed to build services", zap.Error(err))
	}
	defer services.Close()

	handlers := router.Handlers{
		Search: handler.NewSearchHandler(services.Leads),
		Enrich: handler.NewEnrichHandler(services.Enrich),
		Site:   handler.NewSiteHandler(services.Sites),
		Leads:  handler.NewLeadsHandler(services.Leads),
	}
	if services.Auth != nil {
		handlers.Auth = handler.NewAuthHandler(services.Auth)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger))
	e.Use(middlewarepkg.Metrics())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, services.JWT, handlers)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server started", zap.String("port", cfg.Port), zap.Bool("auth", cfg.AuthEnabled()))
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}
