package interaction

import (
	"fmt"
	"strconv"
	"strings"

	"vizlens/domain/core"
	"vizlens/domain/dataset"
	"vizlens/domain/interaction"
)

// ApplyCrossFilters retains the rows satisfying every filter NOT originating
// from excludeChartID. A chart's own filters never restrict its own re-render:
// self-filtering would hide the very point the user clicked.
func ApplyCrossFilters(rows []dataset.Row, filters []interaction.Filter, excludeChartID core.ChartID) []dataset.Row {
	if len(filters) == 0 {
		return rows
	}

	result := make([]dataset.Row, 0, len(rows))
	for _, row := range rows {
		if passesCrossFilters(row, filters, excludeChartID) {
			result = append(result, row)
		}
	}
	return result
}

func passesCrossFilters(row dataset.Row, filters []interaction.Filter, excludeChartID core.ChartID) bool {
	for _, f := range filters {
		if f.ChartID == excludeChartID {
			continue
		}
		if !matchesInteractionFilter(row[f.Field], f) {
			return false
		}
	}
	return true
}

func matchesInteractionFilter(value string, f interaction.Filter) bool {
	switch f.Type {
	case interaction.FilterEquals:
		return value == f.Value
	case interaction.FilterIn:
		for _, v := range f.Values {
			if v == value {
				return true
			}
		}
		return false
	case interaction.FilterRange:
		num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return err == nil && num >= f.Min && num <= f.Max
	case interaction.FilterContains:
		return strings.Contains(strings.ToLower(value), strings.ToLower(f.Value))
	}
	// Unknown filter types restrict nothing
	return true
}

// MatchesHover reports whether a data point should highlight for the active
// hover. A point matches when its value for the hover's primary field equals
// the hovered value, or when any of the hover's related fields (the other
// mapped axes of the origin chart) matches the same field on the point. This
// enables same-category highlighting across charts that share no axis.
func MatchesHover(point dataset.Row, hover interaction.Hover, field string) bool {
	if field == "" {
		return false
	}

	if hover.Field == field {
		return point[field] == hover.Value
	}

	if related, ok := hover.RelatedFields[field]; ok {
		return point[field] == related
	}

	// Missing related field is a non-match, not an error
	return false
}

// IsInBrushSelection reports whether a point falls inside the active brush.
// 1-D brushes test a single numeric field range; 2-D brushes require both the
// x range and the y range to hold.
func IsInBrushSelection(point dataset.Row, brush interaction.Brush, xField, yField string) bool {
	sel := brush.Selection

	if sel.Field != "" && (sel.Field == xField || sel.Field == yField) {
		num, err := strconv.ParseFloat(strings.TrimSpace(point[sel.Field]), 64)
		return err == nil && num >= sel.Min && num <= sel.Max
	}

	if sel.XField != "" && sel.YField != "" {
		x, errX := strconv.ParseFloat(strings.TrimSpace(point[sel.XField]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(point[sel.YField]), 64)
		return errX == nil && errY == nil &&
			x >= sel.XMin && x <= sel.XMax &&
			y >= sel.YMin && y <= sel.YMax
	}

	return false
}

// NewClickFilter builds an equals filter from a clicked data point on the
// chart's primary mapped field
func NewClickFilter(chartID core.ChartID, point dataset.Row, field string) interaction.Filter {
	value := point[field]
	return interaction.Filter{
		ID:      core.NewFilterID(chartID, field),
		ChartID: chartID,
		Field:   field,
		Type:    interaction.FilterEquals,
		Value:   value,
		Label:   fmt.Sprintf("%s = %s", field, value),
	}
}

// NewBrushRangeFilter builds a numeric range filter from a 1-D brush selection
func NewBrushRangeFilter(chartID core.ChartID, field string, min, max float64) interaction.Filter {
	return interaction.Filter{
		ID:      core.NewFilterID(chartID, field),
		ChartID: chartID,
		Field:   field,
		Type:    interaction.FilterRange,
		Min:     min,
		Max:     max,
		Label:   fmt.Sprintf("%s: %.2f - %.2f", field, min, max),
	}
}

// NewBrushValuesFilter builds an in filter from a categorical brush selection
func NewBrushValuesFilter(chartID core.ChartID, field string, values []string) interaction.Filter {
	return interaction.Filter{
		ID:      core.NewFilterID(chartID, field),
		ChartID: chartID,
		Field:   field,
		Type:    interaction.FilterIn,
		Values:  values,
		Label:   fmt.Sprintf("%s in [%s]", field, strings.Join(values, ", ")),
	}
}
