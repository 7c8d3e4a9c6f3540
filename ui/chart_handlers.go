package ui

import (
	"net/http"
	"strconv"

	"vizlens/domain/chart"
	"vizlens/domain/core"
	"vizlens/internal/errors"
	"vizlens/internal/transform"

	"github.com/gin-gonic/gin"
)

// handleChartKinds lists the available chart kinds with their capability
// metadata. ?capability=aggregation|series|colorScale filters the list.
func (s *Server) handleChartKinds(c *gin.Context) {
	kinds := chart.Kinds(c.Query("capability"))
	out := make([]gin.H, 0, len(kinds))
	for _, kind := range kinds {
		meta, _ := chart.MetadataFor(kind)
		out = append(out, gin.H{"kind": kind, "metadata": meta})
	}
	c.JSON(http.StatusOK, out)
}

type createChartRequest struct {
	Kind   chart.Kind    `json:"kind" binding:"required"`
	Config *chart.Config `json:"config"`
}

// handleCreateChart registers a new chart. A partial config in the body
// overrides the defaults for the requested kind.
func (s *Server) handleCreateChart(c *gin.Context) {
	var req createChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if _, ok := chart.MetadataFor(req.Kind); !ok {
		appErr := errors.ValidationError("unknown chart kind: " + string(req.Kind))
		c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Error(), "code": errors.GetCode(appErr)})
		return
	}

	config := chart.NewDefaultConfig(req.Kind)
	if req.Config != nil {
		config = *req.Config
		config.Type = req.Kind
	}

	id := s.session.PutChart("", config)
	c.JSON(http.StatusCreated, gin.H{"id": id, "config": config})
}

// handleUpdateChart replaces an existing chart's config wholesale
func (s *Server) handleUpdateChart(c *gin.Context) {
	id := core.ChartID(c.Param("id"))
	if _, ok := s.session.Chart(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}

	var config chart.Config
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if _, ok := chart.MetadataFor(config.Type); !ok {
		appErr := errors.ValidationError("unknown chart kind: " + string(config.Type))
		c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Error(), "code": errors.GetCode(appErr)})
		return
	}

	s.session.PutChart(id, config)
	c.JSON(http.StatusOK, gin.H{"id": id, "config": config})
}

// handleGetChart returns one chart config
func (s *Server) handleGetChart(c *gin.Context) {
	id := core.ChartID(c.Param("id"))
	config, ok := s.session.Chart(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "config": config})
}

// handleDeleteChart removes a chart and its interaction filters
func (s *Server) handleDeleteChart(c *gin.Context) {
	id := core.ChartID(c.Param("id"))
	if _, ok := s.session.Chart(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}
	s.session.RemoveChart(id)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// handleValidateChart reports whether a chart config is renderable
func (s *Server) handleValidateChart(c *gin.Context) {
	id := core.ChartID(c.Param("id"))
	config, ok := s.session.Chart(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}
	c.JSON(http.StatusOK, config.Validate())
}

// handleChartData runs the full transform pipeline for a chart: cross-chart
// filters from other charts, then the config's filter, aggregate and sort
// stages.
func (s *Server) handleChartData(c *gin.Context) {
	id := core.ChartID(c.Param("id"))
	if _, ok := s.session.Chart(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}
	rows := s.session.TransformChart(id)

	if raw := c.Query("sample"); raw != "" {
		maxSize, err := strconv.Atoi(raw)
		if err != nil || maxSize <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sample must be a positive integer"})
			return
		}
		method := transform.SampleMethod(c.DefaultQuery("method", string(transform.SampleSystematic)))
		rows = transform.SampleRows(rows, maxSize, method)
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows, "count": len(rows)})
}

// handleChartColors resolves the chart's continuous color encoding: each row's
// color field value normalized against the column range and mapped through the
// configured scale.
func (s *Server) handleChartColors(c *gin.Context) {
	id := core.ChartID(c.Param("id"))
	config, ok := s.session.Chart(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}
	field := config.DataMapping.Color
	if field == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "chart has no color field mapped"})
		return
	}

	rows := s.session.TransformChart(id)
	colors := make([]gin.H, len(rows))
	for i, row := range rows {
		num, err := strconv.ParseFloat(row[field], 64)
		if err != nil {
			colors[i] = gin.H{"color": transform.ColorFromScale(-1, config.ColorScale)}
			continue
		}
		cv, ok := transform.ColorValueFor(num, field, rows)
		if !ok {
			colors[i] = gin.H{"color": transform.ColorFromScale(-1, config.ColorScale)}
			continue
		}
		colors[i] = gin.H{
			"value":      cv.Value,
			"normalized": cv.Normalized,
			"color":      transform.ColorFromScale(cv.Normalized, config.ColorScale),
		}
	}
	c.JSON(http.StatusOK, gin.H{"field": field, "scale": config.ColorScale.Type, "colors": colors})
}
