// Package server exposes the scraping pipeline over HTTP: a scrape
// endpoint, a latest-result endpoint, a health check, and optional
// static frontend serving. Error types from the core are mapped to
// status codes here; the core itself stays transport-agnostic.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/24108244-ux/Websites-Scraper/internal/config"
	"github.com/24108244-ux/Websites-Scraper/internal/models"
	"github.com/24108244-ux/Websites-Scraper/internal/scraper"
	"github.com/24108244-ux/Websites-Scraper/internal/store"
)

const serviceVersion = "1.0.0"

// Server wires the scraper and the result store into an HTTP router.
type Server struct {
	scraper *scraper.Scraper
	store   *store.Store
	cfg     config.ServerConfig
	logger  zerolog.Logger
}

func New(sc *scraper.Scraper, st *store.Store, cfg config.ServerConfig, logger zerolog.Logger) *Server {
	return &Server{
		scraper: sc,
		store:   st,
		cfg:     cfg,
		logger:  logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.corsMiddleware())

	api := router.Group("/api")
	api.POST("/scrape", s.handleScrape)
	api.GET("/latest", s.handleLatest)
	api.GET("/test", s.handleTest)

	if s.cfg.StaticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(s.cfg.StaticDir))))
	}
	return router
}

// corsMiddleware allows the frontend to call the API from another origin.
func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) handleScrape(c *gin.Context) {
	var req models.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No URL provided"})
		return
	}

	start := time.Now()
	doc, err := s.scraper.Scrape(c.Request.Context(), req.URL)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", req.URL).Msg("scrape failed")
		c.JSON(statusForError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	filename, err := s.store.Save(doc)
	if err != nil {
		s.logger.Error().Err(err).Str("url", req.URL).Msg("persisting result failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	s.logger.Info().
		Str("url", req.URL).
		Int("links", doc.Statistics.TotalLinks).
		Int("paragraphs", doc.Statistics.TotalParagraphs).
		Dur("duration", time.Since(start)).
		Msg("scrape complete")

	c.JSON(http.StatusOK, models.ScrapeResponse{
		Success:  true,
		Message:  "Website scraped successfully",
		Data:     doc,
		Filename: filename,
	})
}

func (s *Server) handleLatest(c *gin.Context) {
	doc, err := s.store.Latest()
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "No data available"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) handleTest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"service":   "Web Scraping API",
		"version":   serviceVersion,
		"timestamp": time.Now(),
	})
}

// statusForError maps the pipeline's typed errors to HTTP status codes.
func statusForError(err error) int {
	var invalidURL *models.InvalidURLError
	var badStatus *models.BadStatusError
	var transport *models.TransportError

	switch {
	case errors.As(err, &invalidURL):
		return http.StatusBadRequest
	case errors.As(err, &badStatus), errors.As(err, &transport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
