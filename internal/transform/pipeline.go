// Package transform turns raw dataset rows into chart-ready ordered records.
//
// The pipeline order is fixed: filter, then aggregate, then sort. Reordering
// changes results (aggregating before filtering would fold in rows that should
// have been excluded), so the stages must never be rearranged.
package transform

import (
	"sort"
	"strconv"
	"strings"

	"vizlens/domain/chart"
	"vizlens/domain/dataset"
	"vizlens/internal"
	"vizlens/internal/errors"
)

// Pipeline is the single entry point for chart data transformation. It is
// deterministic given identical inputs and safe for concurrent use.
type Pipeline struct {
	log   *internal.Logger
	cache *lruCache
}

// NewPipeline creates a pipeline with a bounded result cache
func NewPipeline() *Pipeline {
	return &Pipeline{
		log:   internal.DefaultLogger.Component("Transform"),
		cache: newLRUCache(defaultCacheSize),
	}
}

// TransformForChart runs filter, aggregate and sort per the chart config.
// Any internal failure degrades to an empty result with a logged cause rather
// than propagating; the rendering layer has no exception-handling contract.
func (p *Pipeline) TransformForChart(rows []dataset.Row, config chart.Config) (result []dataset.Row) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("%s: transform failed, returning empty result: %v", errors.CodeTransformError, r)
			result = []dataset.Row{}
		}
	}()

	result = ApplyFilters(rows, config.Filters)

	if config.Aggregation.Enabled {
		groupFields := []string{}
		if config.DataMapping.X != "" {
			groupFields = append(groupFields, config.DataMapping.X)
		}
		if config.DataMapping.Series != "" {
			groupFields = append(groupFields, config.DataMapping.Series)
		}

		// No group-by information means aggregation is skipped even when
		// enabled; the filtered rows fall through to sorting.
		if len(groupFields) > 0 {
			aggregations := map[string]chart.AggFunc{}
			if config.DataMapping.Y != "" {
				yAgg := config.Aggregation.YAgg
				if yAgg == "" {
					yAgg = chart.AggSum
				}
				aggregations[config.DataMapping.Y] = yAgg
			}
			if config.DataMapping.Size != "" {
				aggregations[config.DataMapping.Size] = chart.AggSum
			}
			result = AggregateRows(result, groupFields, aggregations)
		}
	}

	if config.Sorting.Enabled && config.Sorting.Field != "" {
		result = sortRows(result, config.Sorting)
	}

	return result
}

// TransformCached memoizes TransformForChart results. version must change
// whenever the underlying dataset changes; the cache is a pure optimization
// on top of the deterministic pipeline, never a source of correctness.
func (p *Pipeline) TransformCached(version string, rows []dataset.Row, config chart.Config) []dataset.Row {
	key := cacheKey(version, config)
	if cached, ok := p.cache.get(key); ok {
		return cached
	}
	result := p.TransformForChart(rows, config)
	p.cache.put(key, result)
	return result
}

// InvalidateCache drops all memoized results, called on dataset replacement
func (p *Pipeline) InvalidateCache() {
	p.cache.clear()
}

// sortRows orders rows by the sort field without mutating its input. Values
// that parse as numbers compare numerically, the rest lexicographically. The
// sort is stable: equal keys preserve filter/aggregate output order.
func sortRows(rows []dataset.Row, sorting chart.Sorting) []dataset.Row {
	sorted := make([]dataset.Row, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareValues(sorted[i][sorting.Field], sorted[j][sorting.Field])
		if sorting.Direction == chart.SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

func compareValues(a, b string) int {
	av, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	bv, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA == nil && errB == nil {
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
