package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Sentiment API
	s.echo.GET("/api/sentiment/game/:id/details", s.handleGameDetails)
	s.echo.GET("/api/sentiment/weekly/:id", s.handleWeeklySentiment)
	s.echo.GET("/api/sentiment/trends/:id", s.handleSentimentTrends)
	s.echo.POST("/api/sentiment/game/:id/refresh", s.handleRefresh)
}
