package server

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/cdobratz/nfl-sentiment-analyzer/internal/errors"
)

const defaultTrendDays = 7

func (s *Server) handleGameDetails(c echo.Context) error {
	result, err := s.service.EventAnalysisFor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(200, result)
}

func (s *Server) handleWeeklySentiment(c echo.Context) error {
	summary, err := s.service.WeeklySummaryFor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(200, summary)
}

func (s *Server) handleSentimentTrends(c echo.Context) error {
	days := defaultTrendDays
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return apperrors.ValidationError("days must be an integer").WithField("days", raw)
		}
		days = parsed
	}

	report, err := s.service.TrendsFor(c.Request().Context(), c.Param("id"), days)
	if err != nil {
		return err
	}
	return c.JSON(200, report)
}

func (s *Server) handleRefresh(c echo.Context) error {
	result, err := s.service.Refresh(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(200, result)
}
