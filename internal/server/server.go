package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/PointonKaren/OCR-Projet6/internal/config"
	"github.com/PointonKaren/OCR-Projet6/internal/domain"
	apperrors "github.com/PointonKaren/OCR-Projet6/internal/errors"
)

// postgresHealthChecker is a minimal interface for database health checks.
type postgresHealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	app       domain.AppService
	tokens    domain.TokenService
	db        postgresHealthChecker
	startTime time.Time
}

func NewServer(cfg *config.Config, app domain.AppService, tokens domain.TokenService, db postgresHealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		app:       app,
		tokens:    tokens,
		db:        db,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
