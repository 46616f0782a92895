package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Stored images are served straight from the upload directory
	s.echo.Static("/images", s.config.UploadDir)

	api := s.echo.Group("/api")

	// Auth routes
	api.POST("/auth/signup", s.handleSignUp)
	api.POST("/auth/login", s.handleLogIn)

	// Sauce routes (authenticated, including reads)
	sauces := api.Group("/sauces", s.requireAuth)
	sauces.GET("", s.handleListSauces)
	sauces.GET("/:id", s.handleGetSauce)
	sauces.POST("", s.handleCreateSauce)
	sauces.PUT("/:id", s.handleUpdateSauce)
	sauces.DELETE("/:id", s.handleDeleteSauce)
	sauces.POST("/:id/like", s.handleRateSauce)
}
