package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"spider/internal/config"
	qr "spider/internal/qrcode"
	"spider/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/ws", server.WSHandler)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/qr", func(c echo.Context) error {
		png, err := qr.Generate(cfg.PublicURL)
		if err != nil {
			return c.String(http.StatusInternalServerError, "qr generation failed")
		}
		return c.Blob(http.StatusOK, "image/png", png)
	})

	// Frontend build with SPA fallback.
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  cfg.WebDir,
		HTML5: true,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
