package transform

import (
	"sort"

	"vizlens/domain/dataset"

	"github.com/montanaflynn/stats"
)

// FieldStats is a quick numeric summary of a single field over a row set,
// used by UI panels that need stats without a full profile run.
type FieldStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Sum    float64 `json:"sum"`
	StdDev float64 `json:"std_dev"`
}

// FieldStatsFor computes numeric stats for one field. Returns false when the
// field has no numeric-coercible values.
func FieldStatsFor(rows []dataset.Row, field string) (FieldStats, bool) {
	values := make([]string, len(rows))
	for i, row := range rows {
		values[i] = row[field]
	}
	numbers := coerceNumbers(values)
	if len(numbers) == 0 {
		return FieldStats{}, false
	}

	min, _ := stats.Min(numbers)
	max, _ := stats.Max(numbers)
	mean, _ := stats.Mean(numbers)
	median, _ := stats.Median(numbers)
	sum, _ := stats.Sum(numbers)

	stdDev := 0.0
	if len(numbers) >= 2 {
		stdDev, _ = stats.StandardDeviationPopulation(numbers)
	}

	return FieldStats{
		Count:  len(numbers),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		Sum:    sum,
		StdDev: stdDev,
	}, true
}

// FieldUniqueValues returns the sorted distinct values of a field
func FieldUniqueValues(rows []dataset.Row, field string) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		seen[row[field]] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// FieldSuggestion describes one candidate field for a mapping panel
type FieldSuggestion struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "numeric" or "categorical"
	UniqueCount int    `json:"unique_count"`
}

// FieldSuggestions classifies each header as numeric or categorical over the
// given rows. kind filters the result: "numeric", "categorical", or "" for all.
func FieldSuggestions(table *dataset.Table, kind string) []FieldSuggestion {
	if table.IsEmpty() {
		return []FieldSuggestion{}
	}

	suggestions := []FieldSuggestion{}
	for _, header := range table.Headers {
		values := table.Column(header)

		numeric := true
		unique := make(map[string]struct{}, len(values))
		for _, v := range values {
			unique[v] = struct{}{}
			if dataset.IsNull(v) || len(coerceNumbers([]string{v})) == 0 {
				numeric = false
			}
		}

		fieldType := "categorical"
		if numeric {
			fieldType = "numeric"
		}
		if kind != "" && kind != fieldType {
			continue
		}
		suggestions = append(suggestions, FieldSuggestion{
			Name:        header,
			Type:        fieldType,
			UniqueCount: len(unique),
		})
	}
	return suggestions
}
