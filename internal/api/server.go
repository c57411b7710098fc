package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cozyGalvinism/webgone/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Server exposes the outage ledger over a read-only JSON API.
type Server struct {
	db     *storage.Database
	router *gin.Engine
	server *http.Server
}

// NewServer wires the routes over an open ledger. addr is host:port.
func NewServer(addr string, db *storage.Database) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(accessLogger())

	server := &Server{
		db:     db,
		router: router,
		server: &http.Server{
			Addr:         addr,
			Handler:      router.Handler(),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	server.setupRoutes()

	return server
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("address", s.server.Addr).Msg("Starting status API server")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start status API server: %w", err)
	}

	return nil
}

// Shutdown stops the server, draining in-flight requests.
func (s *Server) Shutdown() {
	log.Info().Msg("Stopping status API server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error stopping status API server")
	}

	log.Info().Msg("Status API server stopped")
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.HealthCheckHandler)

	outages := s.router.Group("/api/outages")
	outages.GET("/stats", s.StatsHandler)
	outages.GET("/recent", s.RecentHandler)
	outages.GET("/monthly", s.MonthlyHandler)
	outages.GET("/cost", s.CostHandler)
}

func accessLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method

		if query != "" {
			path = path + "?" + query
		}

		logEvent := log.Info()
		if statusCode >= 400 {
			logEvent = log.Error()
		}

		logEvent.Str("method", method).
			Str("path", path).
			Int("status", statusCode).
			Str("latency", latency.String()).
			Msg("API request")
	}
}
