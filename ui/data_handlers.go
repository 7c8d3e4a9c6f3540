package ui

import (
	"context"
	"io"
	"net/http"
	"time"

	"vizlens/domain/core"
	domaindataset "vizlens/domain/dataset"
	"vizlens/internal/dataset"
	"vizlens/internal/errors"
	"vizlens/internal/profiling"
	"vizlens/internal/transform"

	"github.com/gin-gonic/gin"
)

// handleUpload accepts a multipart file, parses it, and loads it into the
// session, replacing any previous dataset and all derived state.
func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	if fileHeader.Size > s.cfg.Data.MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds upload size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read upload"})
		return
	}
	defer file.Close()

	fileType, err := dataset.DetectFileType(fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		return
	}

	var table *domaindataset.Table
	if fileType == "xlsx" {
		table, err = s.excel.Read(file)
	} else {
		var content []byte
		content, err = io.ReadAll(file)
		if err == nil {
			table, fileType, err = dataset.Parse(fileHeader.Filename, content)
		}
	}
	if err != nil {
		s.log.Warn("upload parse failed: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"code":  errors.GetCode(err),
		})
		return
	}

	parseErrs, warnings := dataset.ValidateParsed(table)
	if len(parseErrs) > 0 {
		appErr := errors.ValidationError(parseErrs[0])
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  appErr.Error(),
			"code":   errors.GetCode(appErr),
			"errors": parseErrs,
		})
		return
	}

	now := time.Now().UTC()
	meta := &domaindataset.Dataset{
		ID:               core.NewDatasetID(),
		OriginalFilename: fileHeader.Filename,
		FileType:         fileType,
		FileSize:         fileHeader.Size,
		Source:           "upload",
		Status:           domaindataset.StatusProcessing,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	report, err := s.session.Load(table, meta)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	s.persist(c.Request.Context(), func(ctx context.Context) error {
		if err := s.repo.Create(ctx, meta); err != nil {
			return err
		}
		return s.repo.SaveProfile(ctx, meta.ID, report)
	})

	c.JSON(http.StatusOK, gin.H{
		"dataset_id":  meta.ID,
		"headers":     table.Headers,
		"data":        table.Rows,
		"file_type":   fileType,
		"file_name":   fileHeader.Filename,
		"file_size":   fileHeader.Size,
		"uploaded_at": now,
		"warnings":    warnings,
	})
}

// handleReset discards the loaded dataset and every piece of derived state
func (s *Server) handleReset(c *gin.Context) {
	s.session.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// handleSchema returns the inferred schema of the loaded dataset
func (s *Server) handleSchema(c *gin.Context) {
	schema, ok := s.session.Schema()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded"})
		return
	}
	c.JSON(http.StatusOK, schema)
}

// handleProfile returns the full profile report
func (s *Server) handleProfile(c *gin.Context) {
	report, ok := s.session.Profile()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// handleProfileReport renders the profile as a human-readable HTML report
func (s *Server) handleProfileReport(c *gin.Context) {
	report, ok := s.session.Profile()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", profiling.SummaryHTML(report))
}

// handleFields suggests mappable fields, optionally filtered by kind
// ("numeric" or "categorical")
func (s *Server) handleFields(c *gin.Context) {
	table, ok := s.session.Table()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded"})
		return
	}
	c.JSON(http.StatusOK, transform.FieldSuggestions(table, c.Query("type")))
}

// handleFieldStats returns a quick numeric summary for a single field
func (s *Server) handleFieldStats(c *gin.Context) {
	table, ok := s.session.Table()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded"})
		return
	}
	name := c.Param("name")
	fieldStats, ok := transform.FieldStatsFor(table.Rows, name)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "field has no numeric values"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"field": name, "stats": fieldStats})
}

// handleFieldValues returns the sorted distinct values of a field
func (s *Server) handleFieldValues(c *gin.Context) {
	table, ok := s.session.Table()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded"})
		return
	}
	name := c.Param("name")
	c.JSON(http.StatusOK, gin.H{
		"field":  name,
		"values": transform.FieldUniqueValues(table.Rows, name),
	})
}
