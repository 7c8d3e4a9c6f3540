package ui

import (
	"net/http"

	"vizlens/domain/core"
	"vizlens/internal/interaction"

	"github.com/gin-gonic/gin"
)

// handleClickEvent toggles a click-derived filter on the target chart.
// The row is resolved against the chart's current transformed data, so the
// index the renderer reports matches what is on screen.
func (s *Server) handleClickEvent(c *gin.Context) {
	id := core.ChartID(c.Param("id"))
	config, ok := s.session.Chart(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}

	var ev interaction.ClickEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	ev.ChartID = id

	s.dispatcher.HandleClick(ev, s.session.TransformChart(id), config)
	c.JSON(http.StatusOK, gin.H{"filters": s.session.Store().AllFilters()})
}

// handleHoverEvent records the hovered value for cross-chart highlighting
func (s *Server) handleHoverEvent(c *gin.Context) {
	id := core.ChartID(c.Param("id"))
	config, ok := s.session.Chart(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}

	var ev interaction.HoverEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	ev.ChartID = id

	s.dispatcher.HandleHover(ev, s.session.TransformChart(id), config)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleHoverEnd clears the active hover
func (s *Server) handleHoverEnd(c *gin.Context) {
	s.dispatcher.HandleHoverEnd()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleBrushEvent derives a range or membership filter from a brush selection
func (s *Server) handleBrushEvent(c *gin.Context) {
	id := core.ChartID(c.Param("id"))
	config, ok := s.session.Chart(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}

	var ev interaction.BrushEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	ev.ChartID = id

	s.dispatcher.HandleBrush(ev, s.session.TransformChart(id), config)
	c.JSON(http.StatusOK, gin.H{"filters": s.session.Store().AllFilters()})
}

// handleChartHighlights reports which of a chart's rows should render
// highlighted for the active hover or brush selection
func (s *Server) handleChartHighlights(c *gin.Context) {
	id := core.ChartID(c.Param("id"))
	config, ok := s.session.Chart(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}

	rows := s.session.TransformChart(id)
	hover, hasHover := s.session.Store().ActiveHover()
	brush, hasBrush := s.session.Store().ActiveBrush()

	indices := []int{}
	for i, row := range rows {
		if hasHover && interaction.MatchesHover(row, hover, config.PrimaryField()) {
			indices = append(indices, i)
			continue
		}
		if hasBrush && interaction.IsInBrushSelection(row, brush, config.DataMapping.X, config.DataMapping.Y) {
			indices = append(indices, i)
		}
	}
	c.JSON(http.StatusOK, gin.H{"indices": indices, "count": len(indices)})
}

// handleListFilters returns every active cross-chart filter in creation order
func (s *Server) handleListFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"filters": s.session.Store().AllFilters()})
}

// handleClearAllFilters removes all active filters across every chart
func (s *Server) handleClearAllFilters(c *gin.Context) {
	s.session.Store().ClearAllFilters()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// handleClearChartFilters removes the filters originated by one chart
func (s *Server) handleClearChartFilters(c *gin.Context) {
	id := core.ChartID(c.Param("id"))
	s.session.Store().ClearFilters(id)
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

type linkChartsRequest struct {
	ChartIDs []core.ChartID `json:"chart_ids"`
}

// handleLinkCharts declares a set of charts as an explicit interaction group.
// An empty list removes the group.
func (s *Server) handleLinkCharts(c *gin.Context) {
	var req linkChartsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if len(req.ChartIDs) == 0 {
		s.session.Store().UnlinkCharts()
	} else {
		s.session.Store().LinkCharts(req.ChartIDs)
	}
	c.JSON(http.StatusOK, gin.H{"linked": s.session.Store().LinkedCharts()})
}
