package api

import (
	"net/http"

	"github.com/cozyGalvinism/webgone/internal/configuration"
	"github.com/cozyGalvinism/webgone/internal/models"
	"github.com/cozyGalvinism/webgone/internal/report"

	"github.com/gin-gonic/gin"
)

type recentQueryParams struct {
	Limit int `form:"limit"`
}

type costQueryParams struct {
	Rate     float64 `form:"rate"`
	Currency string  `form:"currency"`
}

// StatsHandler returns the five ledger aggregates.
func (s *Server) StatsHandler(c *gin.Context) {
	stats, err := s.db.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to aggregate outages", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// RecentHandler returns the newest outages, default limit 5.
func (s *Server) RecentHandler(c *gin.Context) {
	queryParams := recentQueryParams{Limit: configuration.DefaultRecentLimit}

	if err := c.ShouldBindQuery(&queryParams); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters", "error": err.Error()})
		return
	}

	records, err := s.db.Recent(queryParams.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to query recent outages", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// MonthlyHandler returns the per-month outage groups, newest first.
func (s *Server) MonthlyHandler(c *gin.Context) {
	groups, err := s.db.Monthly()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to group outages", "error": err.Error()})
		return
	}

	if groups == nil {
		groups = []models.MonthlyOutage{}
	}

	c.JSON(http.StatusOK, groups)
}

// CostHandler derives the cost report for a mandatory positive rate.
func (s *Server) CostHandler(c *gin.Context) {
	queryParams := costQueryParams{Currency: configuration.DefaultCurrency}

	if err := c.ShouldBindQuery(&queryParams); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters", "error": err.Error()})
		return
	}

	if queryParams.Rate <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Query parameter 'rate' must be a positive number"})
		return
	}

	groups, err := s.db.Monthly()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to group outages", "error": err.Error()})
		return
	}

	months, summary := report.Build(groups, queryParams.Rate)

	c.JSON(http.StatusOK, gin.H{
		"currency": queryParams.Currency,
		"months":   months,
		"summary":  summary,
	})
}

// HealthCheckHandler reports service liveness.
func (s *Server) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "webgone",
	})
}
