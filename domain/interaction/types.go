package interaction

import (
	"vizlens/domain/core"
)

// FilterType is the closed set of cross-filter shapes
type FilterType string

const (
	FilterEquals   FilterType = "equals"
	FilterIn       FilterType = "in"
	FilterRange    FilterType = "range"
	FilterContains FilterType = "contains"
)

// Filter is a cross-chart filter created from a click or brush. Filters are
// immutable; they are replaced, never edited, and keyed by originating chart.
type Filter struct {
	ID      core.FilterID `json:"id"`
	ChartID core.ChartID  `json:"chart_id"`
	Field   string        `json:"field"`
	Type    FilterType    `json:"type"`
	Value   string        `json:"value,omitempty"`
	Values  []string      `json:"values,omitempty"` // for in
	Min     float64       `json:"min,omitempty"`    // for range
	Max     float64       `json:"max,omitempty"`
	Label   string        `json:"label"`
}

// Hover records the currently hovered data point and the other mapped fields
// of its origin chart, used for same-category highlighting across charts.
type Hover struct {
	ChartID       core.ChartID      `json:"chart_id"`
	Field         string            `json:"field"`
	Value         string            `json:"value"`
	RelatedFields map[string]string `json:"related_fields,omitempty"`
}

// BrushSelection is either a 1-D range on a single field, or a 2-D rectangle
// over an x and y field. Exactly one of the two forms is populated.
type BrushSelection struct {
	// 1-D form
	Field string  `json:"field,omitempty"`
	Min   float64 `json:"min,omitempty"`
	Max   float64 `json:"max,omitempty"`

	// 2-D form
	XField string  `json:"x_field,omitempty"`
	YField string  `json:"y_field,omitempty"`
	XMin   float64 `json:"x_min,omitempty"`
	XMax   float64 `json:"x_max,omitempty"`
	YMin   float64 `json:"y_min,omitempty"`
	YMax   float64 `json:"y_max,omitempty"`
}

// Brush records an active brush selection
type Brush struct {
	ChartID   core.ChartID   `json:"chart_id"`
	Selection BrushSelection `json:"selection"`
}
