package transform

import (
	"strconv"
	"strings"

	"vizlens/domain/chart"
	"vizlens/domain/dataset"
)

// ApplyFilters keeps the rows that pass every filter, in declaration order
// with AND semantics. Numeric operators fail closed: a value that does not
// coerce to a number never satisfies a numeric comparison.
func ApplyFilters(rows []dataset.Row, filters []chart.FieldFilter) []dataset.Row {
	if len(filters) == 0 {
		return rows
	}

	result := make([]dataset.Row, 0, len(rows))
	for _, row := range rows {
		if rowPasses(row, filters) {
			result = append(result, row)
		}
	}
	return result
}

func rowPasses(row dataset.Row, filters []chart.FieldFilter) bool {
	for _, f := range filters {
		if !matchesFilter(row[f.Field], f) {
			return false
		}
	}
	return true
}

func matchesFilter(value string, f chart.FieldFilter) bool {
	switch f.Operator {
	case chart.OpEquals:
		return value == f.Value
	case chart.OpNotEquals:
		return value != f.Value
	case chart.OpGreaterThan:
		a, b, ok := coercePair(value, f.Value)
		return ok && a > b
	case chart.OpLessThan:
		a, b, ok := coercePair(value, f.Value)
		return ok && a < b
	case chart.OpGreaterOrEqual:
		a, b, ok := coercePair(value, f.Value)
		return ok && a >= b
	case chart.OpLessOrEqual:
		a, b, ok := coercePair(value, f.Value)
		return ok && a <= b
	case chart.OpContains:
		return strings.Contains(value, f.Value)
	case chart.OpNotContains:
		return !strings.Contains(value, f.Value)
	case chart.OpIn:
		return containsString(f.Values, value)
	case chart.OpNotIn:
		return !containsString(f.Values, value)
	case chart.OpIsEmpty:
		return dataset.IsNull(value)
	case chart.OpIsNotEmpty:
		return !dataset.IsNull(value)
	}
	// Unrecognized operators filter nothing
	return true
}

func coercePair(a, b string) (float64, float64, bool) {
	av, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	bv, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	return av, bv, errA == nil && errB == nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
