package profiling

import (
	"sort"

	"vizlens/domain/dataset"
	"vizlens/domain/profile"
)

// DefaultTopValues bounds the top-K list in categorical stats
const DefaultTopValues = 10

// categoricalStats frequency-counts non-empty values and keeps the top K,
// sorted by descending count. Ties keep first-occurrence order (stable sort),
// so equal-count values appear in the order they were first seen.
func categoricalStats(values []string, limit int) *profile.CategoricalStats {
	if limit <= 0 {
		limit = DefaultTopValues
	}

	counts := make(map[string]int)
	order := []string{}
	total := 0
	for _, v := range values {
		if dataset.IsNull(v) {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
		total++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	top := order
	if len(top) > limit {
		top = top[:limit]
	}

	result := &profile.CategoricalStats{
		UniqueCount: len(counts),
		TopValues:   make([]profile.ValueFrequency, len(top)),
	}
	for i, v := range top {
		result.TopValues[i] = profile.ValueFrequency{
			Value:      v,
			Count:      counts[v],
			Percentage: round2(float64(counts[v]) / float64(len(values)) * 100),
		}
	}
	return result
}
