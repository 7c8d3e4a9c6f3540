// Package ui exposes the explorer core over a JSON HTTP API: dataset upload,
// schema, profile, chart configuration, transforms, and interaction events.
package ui

import (
	"context"
	"net/http"
	"time"

	"vizlens/adapters/excel"
	"vizlens/internal"
	"vizlens/internal/config"
	"vizlens/internal/dataset"
	"vizlens/internal/interaction"
	"vizlens/ports"

	"github.com/gin-gonic/gin"
)

// Server is the web server for the explorer API
type Server struct {
	router     *gin.Engine
	session    *dataset.Session
	dispatcher *interaction.Dispatcher
	excel      *excel.Reader
	repo       ports.DatasetRepository // nil when persistence is disabled
	cfg        *config.Config
	log        *internal.Logger
}

// NewServer creates a server around a session. repo may be nil.
func NewServer(cfg *config.Config, session *dataset.Session, repo ports.DatasetRepository) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:     gin.Default(),
		session:    session,
		dispatcher: interaction.NewDispatcher(session.Store()),
		excel:      excel.NewReader(),
		repo:       repo,
		cfg:        cfg,
		log:        internal.DefaultLogger.Component("Server"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.MaxMultipartMemory = s.cfg.Data.MaxUploadSize

	api := s.router.Group("/api")
	{
		api.POST("/upload", s.handleUpload)
		api.POST("/reset", s.handleReset)

		api.GET("/schema", s.handleSchema)
		api.GET("/profile", s.handleProfile)
		api.GET("/profile/report", s.handleProfileReport)
		api.GET("/fields", s.handleFields)
		api.GET("/fields/:name/stats", s.handleFieldStats)
		api.GET("/fields/:name/values", s.handleFieldValues)

		api.GET("/charts/kinds", s.handleChartKinds)
		api.POST("/charts", s.handleCreateChart)
		api.PUT("/charts/:id", s.handleUpdateChart)
		api.GET("/charts/:id", s.handleGetChart)
		api.DELETE("/charts/:id", s.handleDeleteChart)
		api.GET("/charts/:id/validate", s.handleValidateChart)
		api.GET("/charts/:id/data", s.handleChartData)
		api.GET("/charts/:id/colors", s.handleChartColors)
		api.GET("/charts/:id/highlights", s.handleChartHighlights)

		api.POST("/charts/:id/events/click", s.handleClickEvent)
		api.POST("/charts/:id/events/hover", s.handleHoverEvent)
		api.POST("/charts/:id/events/hover-end", s.handleHoverEnd)
		api.POST("/charts/:id/events/brush", s.handleBrushEvent)

		api.GET("/interactions/filters", s.handleListFilters)
		api.DELETE("/interactions/filters", s.handleClearAllFilters)
		api.DELETE("/charts/:id/filters", s.handleClearChartFilters)
		api.POST("/interactions/link", s.handleLinkCharts)
	}

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})
}

// Run starts the server on the configured port
func (s *Server) Run() error {
	s.log.Info("listening on :%s", s.cfg.Server.Port)
	return s.router.Run(":" + s.cfg.Server.Port)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// persist saves dataset metadata and profile when a repository is configured.
// Persistence failures are logged, never surfaced to the uploader.
func (s *Server) persist(ctx context.Context, save func(ctx context.Context) error) {
	if s.repo == nil {
		return
	}
	if err := save(ctx); err != nil {
		s.log.Warn("persistence failed: %v", err)
	}
}
