// Package profiling computes per-column statistics and an overall data-quality
// assessment for a parsed dataset.
package profiling

import (
	"sync"

	"vizlens/domain/core"
	"vizlens/domain/dataset"
	"vizlens/domain/profile"

	"golang.org/x/sync/errgroup"
)

// Profiler computes column profiles and quality reports
type Profiler struct {
	topValues int
}

// NewProfiler creates a profiler with the default top-K limit
func NewProfiler() *Profiler {
	return &Profiler{topValues: DefaultTopValues}
}

// NewProfilerWithLimit creates a profiler keeping the top `limit` category values
func NewProfilerWithLimit(limit int) *Profiler {
	if limit <= 0 {
		limit = DefaultTopValues
	}
	return &Profiler{topValues: limit}
}

// ProfileColumn builds the full statistical profile of one column. The stats
// union is selected by the column type's supertype: numeric, categorical
// (which includes boolean, text, email and url), or temporal.
func (p *Profiler) ProfileColumn(name string, values []string, colType dataset.SemanticType) profile.ColumnProfile {
	col := profile.ColumnProfile{
		Name:       name,
		Type:       colType,
		TotalCount: len(values),
	}

	nonNull := make([]string, 0, len(values))
	unique := make(map[string]struct{})
	for _, v := range values {
		if dataset.IsNull(v) {
			continue
		}
		nonNull = append(nonNull, v)
		unique[v] = struct{}{}
	}

	col.NonNullCount = len(nonNull)
	col.NullCount = len(values) - len(nonNull)
	if len(values) > 0 {
		col.NullPercentage = round2(float64(col.NullCount) / float64(len(values)) * 100)
	}
	col.UniqueCount = len(unique)
	if len(nonNull) > 0 {
		col.DuplicatePercentage = round2(float64(len(nonNull)-len(unique)) / float64(len(nonNull)) * 100)
	}

	switch {
	case colType.IsNumeric():
		col.Numeric = numericStats(nonNull)
	case colType.IsCategorical():
		col.Categorical = categoricalStats(nonNull, p.topValues)
	case colType.IsTemporal():
		col.Temporal = temporalStats(nonNull)
	}

	return col
}

// ProfileData profiles every column of a table against its inferred schema and
// derives the overall quality assessment. Columns are profiled concurrently;
// each goroutine only reads the table and writes its own result slot.
func (p *Profiler) ProfileData(table *dataset.Table, schema dataset.Schema) *profile.Report {
	report := &profile.Report{
		Summary: profile.Summary{
			TotalRows:    len(table.Rows),
			TotalColumns: len(table.Headers),
			Timestamp:    core.Now(),
		},
		Columns: make(map[string]profile.ColumnProfile, len(table.Headers)),
	}

	var mu sync.Mutex
	var g errgroup.Group
	for _, header := range table.Headers {
		header := header
		g.Go(func() error {
			colType := dataset.TypeUnknown
			if col, ok := schema[header]; ok {
				colType = col.Type
			}
			col := p.ProfileColumn(header, table.Column(header), colType)
			mu.Lock()
			report.Columns[header] = col
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	report.Quality = assessQuality(table, report.Columns)
	return report
}
