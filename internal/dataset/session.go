package dataset

import (
	"strconv"
	"strings"
	"sync"

	"vizlens/domain/chart"
	"vizlens/domain/core"
	"vizlens/domain/dataset"
	domaininteraction "vizlens/domain/interaction"
	"vizlens/domain/profile"
	"vizlens/internal"
	"vizlens/internal/errors"
	"vizlens/internal/interaction"
	"vizlens/internal/profiling"
	"vizlens/internal/schema"
	"vizlens/internal/transform"
)

// Session owns the one active dataset and everything derived from it: schema,
// profile, chart configurations and the interaction store. Loading a new
// dataset atomically discards all derived state before accepting the new
// rows, so nothing from the old dataset can leak into the new one.
type Session struct {
	mu sync.RWMutex

	table   *dataset.Table
	meta    *dataset.Dataset
	schema  dataset.Schema
	report  *profile.Report
	charts  map[core.ChartID]chart.Config
	version int

	sampleSize int

	store    *interaction.Store
	pipeline *transform.Pipeline
	profiler *profiling.Profiler
	log      *internal.Logger
}

// NewSession creates an empty session with its own interaction store
func NewSession() *Session {
	return NewSessionWithLimits(schema.DefaultSampleSize, profiling.DefaultTopValues)
}

// NewSessionWithLimits creates a session with explicit processing limits:
// sampleSize rows read by schema inference and topValues category values kept
// by the profiler. Non-positive limits fall back to the defaults.
func NewSessionWithLimits(sampleSize, topValues int) *Session {
	if sampleSize <= 0 {
		sampleSize = schema.DefaultSampleSize
	}
	return &Session{
		charts:     make(map[core.ChartID]chart.Config),
		sampleSize: sampleSize,
		store:      interaction.NewStore(),
		pipeline:   transform.NewPipeline(),
		profiler:   profiling.NewProfilerWithLimit(topValues),
		log:        internal.DefaultLogger.Component("Session"),
	}
}

// Store exposes the session's interaction store for injection into consumers
func (s *Session) Store() *interaction.Store {
	return s.store
}

// Load replaces the session's dataset wholesale. Derived state, chart configs
// and interaction filters from the previous dataset are discarded first.
func (s *Session) Load(table *dataset.Table, meta *dataset.Dataset) (*profile.Report, error) {
	if table == nil || table.IsEmpty() {
		return nil, errors.InvalidInput("dataset has no headers or rows")
	}

	inferred := schema.InferSchema(table, s.sampleSize)
	report := s.profiler.ProfileData(table, inferred)

	s.mu.Lock()
	s.table = table
	s.meta = meta
	s.schema = inferred
	s.report = report
	s.charts = make(map[core.ChartID]chart.Config)
	s.version++
	s.mu.Unlock()

	s.store.Reset()
	s.pipeline.InvalidateCache()

	if meta != nil {
		meta.RecordCount = table.RowCount()
		meta.FieldCount = len(table.Headers)
		meta.MissingRate = missingRate(report)
		meta.Schema = inferred
		meta.Status = dataset.StatusReady
	}

	s.log.Info("loaded dataset: %d rows, %d columns", table.RowCount(), len(table.Headers))
	return report, nil
}

// Reset discards the dataset and every piece of derived state
func (s *Session) Reset() {
	s.mu.Lock()
	s.table = nil
	s.meta = nil
	s.schema = nil
	s.report = nil
	s.charts = make(map[core.ChartID]chart.Config)
	s.version++
	s.mu.Unlock()

	s.store.Reset()
	s.pipeline.InvalidateCache()
}

// Table returns the current dataset, or false when none is loaded
func (s *Session) Table() (*dataset.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table, s.table != nil
}

// Meta returns the current dataset's metadata record
func (s *Session) Meta() (*dataset.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta, s.meta != nil
}

// Schema returns the inferred schema of the current dataset
func (s *Session) Schema() (dataset.Schema, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schema, s.schema != nil
}

// Profile returns the current dataset's profile report
func (s *Session) Profile() (*profile.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report, s.report != nil
}

// PutChart stores a chart config under a new or existing id. Configs are
// replaced wholesale, never mutated in place.
func (s *Session) PutChart(id core.ChartID, config chart.Config) core.ChartID {
	if id == "" {
		id = core.ChartID(core.NewID())
	}
	s.mu.Lock()
	s.charts[id] = config
	s.mu.Unlock()
	return id
}

// Chart returns one chart config by id
func (s *Session) Chart(id core.ChartID) (chart.Config, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	config, ok := s.charts[id]
	return config, ok
}

// RemoveChart drops a chart config and its interaction filters
func (s *Session) RemoveChart(id core.ChartID) {
	s.mu.Lock()
	delete(s.charts, id)
	s.mu.Unlock()
	s.store.ClearFilters(id)
}

// ChartIDs lists the configured charts
func (s *Session) ChartIDs() []core.ChartID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]core.ChartID, 0, len(s.charts))
	for id := range s.charts {
		ids = append(ids, id)
	}
	return ids
}

// TransformChart produces the chart-ready rows for one chart: cross-filters
// from other charts first (the chart's own filters are excluded), then the
// config's filter/aggregate/sort pipeline. Returns an empty slice when no
// dataset is loaded.
func (s *Session) TransformChart(id core.ChartID) []dataset.Row {
	s.mu.RLock()
	table := s.table
	config, hasChart := s.charts[id]
	version := s.version
	s.mu.RUnlock()

	if table == nil || !hasChart {
		return []dataset.Row{}
	}

	filters := s.store.AllFilters()
	rows := interaction.ApplyCrossFilters(table.Rows, filters, id)
	return s.pipeline.TransformCached(chartCacheVersion(version, id, filters), rows, config)
}

// chartCacheVersion keys memoized transforms by dataset generation, chart and
// the exact active filter set, so any filter change misses the cache
func chartCacheVersion(version int, id core.ChartID, filters []domaininteraction.Filter) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(version))
	b.WriteByte(':')
	b.WriteString(string(id))
	for _, f := range filters {
		b.WriteByte(':')
		b.WriteString(string(f.ID))
	}
	return b.String()
}

func missingRate(report *profile.Report) float64 {
	if report == nil || report.Summary.TotalRows == 0 || report.Summary.TotalColumns == 0 {
		return 0
	}
	return (100 - report.Quality.Completeness) / 100
}
