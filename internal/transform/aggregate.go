package transform

import (
	"strconv"
	"strings"

	"vizlens/domain/chart"
	"vizlens/domain/dataset"

	"github.com/montanaflynn/stats"
)

// groupKeySeparator joins group field values into a bucket key
const groupKeySeparator = "|"

// ApplyAggregation reduces a group's raw values with the given function.
// Numeric functions coerce each value and exclude the non-coercible; count
// counts raw values (row count in group); first/last return the raw value by
// original row order with no coercion.
func ApplyAggregation(values []string, fn chart.AggFunc) string {
	if len(values) == 0 {
		return "0"
	}

	switch fn {
	case chart.AggCount:
		return strconv.Itoa(len(values))
	case chart.AggDistinct:
		distinct := make(map[string]struct{}, len(values))
		for _, v := range values {
			distinct[v] = struct{}{}
		}
		return strconv.Itoa(len(distinct))
	case chart.AggFirst:
		return values[0]
	case chart.AggLast:
		return values[len(values)-1]
	}

	numbers := coerceNumbers(values)

	switch fn {
	case chart.AggSum:
		sum, _ := stats.Sum(numbers)
		return formatNumber(sum)
	case chart.AggAverage:
		if len(numbers) == 0 {
			return "0"
		}
		mean, _ := stats.Mean(numbers)
		return formatNumber(mean)
	case chart.AggMin:
		if len(numbers) == 0 {
			return "0"
		}
		min, _ := stats.Min(numbers)
		return formatNumber(min)
	case chart.AggMax:
		if len(numbers) == 0 {
			return "0"
		}
		max, _ := stats.Max(numbers)
		return formatNumber(max)
	case chart.AggMedian:
		if len(numbers) == 0 {
			return "0"
		}
		median, _ := stats.Median(numbers)
		return formatNumber(median)
	case chart.AggStdDev:
		if len(numbers) < 2 {
			return "0"
		}
		stdDev, _ := stats.StandardDeviationPopulation(numbers)
		return formatNumber(stdDev)
	}

	// Unknown function degrades to count, matching the filter table's
	// pass-through posture for unrecognized operators
	return strconv.Itoa(len(values))
}

// AggregateRows groups rows by the concatenated group-field values and reduces
// every aggregated field per group. Output groups appear in first-seen row
// order, and each group row carries its group field values unchanged.
func AggregateRows(rows []dataset.Row, groupFields []string, aggregations map[string]chart.AggFunc) []dataset.Row {
	type group struct {
		first dataset.Row
		rows  []dataset.Row
	}

	order := []string{}
	groups := make(map[string]*group)

	for _, row := range rows {
		parts := make([]string, len(groupFields))
		for i, field := range groupFields {
			parts[i] = row[field]
		}
		key := strings.Join(parts, groupKeySeparator)

		g, ok := groups[key]
		if !ok {
			g = &group{first: row}
			groups[key] = g
			order = append(order, key)
		}
		g.rows = append(g.rows, row)
	}

	result := make([]dataset.Row, 0, len(order))
	for _, key := range order {
		g := groups[key]
		out := make(dataset.Row, len(groupFields)+len(aggregations))
		for _, field := range groupFields {
			out[field] = g.first[field]
		}
		for field, fn := range aggregations {
			values := make([]string, len(g.rows))
			for i, r := range g.rows {
				values[i] = r[field]
			}
			out[field] = ApplyAggregation(values, fn)
		}
		result = append(result, out)
	}
	return result
}

func coerceNumbers(values []string) []float64 {
	numbers := make([]float64, 0, len(values))
	for _, v := range values {
		if num, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			numbers = append(numbers, num)
		}
	}
	return numbers
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
