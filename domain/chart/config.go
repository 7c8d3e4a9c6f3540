package chart

import (
	"strings"
)

// AggFunc identifies an aggregation function applied per group
type AggFunc string

const (
	AggSum      AggFunc = "sum"
	AggAverage  AggFunc = "average"
	AggCount    AggFunc = "count"
	AggMin      AggFunc = "min"
	AggMax      AggFunc = "max"
	AggMedian   AggFunc = "median"
	AggStdDev   AggFunc = "stdDev"
	AggDistinct AggFunc = "distinctCount"
	AggFirst    AggFunc = "first"
	AggLast     AggFunc = "last"
)

// DataMapping binds visual channels to column names. Empty means unmapped.
type DataMapping struct {
	X      string `json:"x,omitempty"`
	Y      string `json:"y,omitempty"`
	Series string `json:"series,omitempty"`
	Size   string `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Aggregation controls the group-by stage of the transform pipeline
type Aggregation struct {
	Enabled bool    `json:"enabled"`
	XAgg    AggFunc `json:"x_agg"`
	YAgg    AggFunc `json:"y_agg"`
}

// ColorScaleConfig selects and bounds a color scale
type ColorScaleConfig struct {
	Type    ScaleName `json:"type"`
	Reverse bool      `json:"reverse"`
	Min     *float64  `json:"min,omitempty"`
	Max     *float64  `json:"max,omitempty"`
}

// TooltipTrigger controls when tooltips appear
type TooltipTrigger string

const (
	TriggerItem TooltipTrigger = "item"
	TriggerAxis TooltipTrigger = "axis"
	TriggerNone TooltipTrigger = "none"
)

// Tooltip holds tooltip display settings
type Tooltip struct {
	Trigger        TooltipTrigger `json:"trigger"`
	ShowSeriesName bool           `json:"show_series_name"`
	ShowValue      bool           `json:"show_value"`
	ShowPercent    bool           `json:"show_percent"`
}

// SortDirection orders sorted output
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sorting controls the final pipeline stage
type Sorting struct {
	Enabled   bool          `json:"enabled"`
	Field     string        `json:"field,omitempty"`
	Direction SortDirection `json:"direction"`
}

// Legend holds legend placement settings
type Legend struct {
	Show   bool   `json:"show"`
	Orient string `json:"orient"` // "top", "right", "bottom", "left"
	Align  string `json:"align"`
}

// Grid holds chart margin settings in pixels
type Grid struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Config is the full declarative description of a single chart. It is replaced
// wholesale on change, never mutated in place.
type Config struct {
	Type        Kind             `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	DataMapping DataMapping      `json:"data_mapping"`
	Aggregation Aggregation      `json:"aggregation"`
	ColorScale  ColorScaleConfig `json:"color_scale"`
	Tooltip     Tooltip          `json:"tooltip"`
	Filters     []FieldFilter    `json:"filters"`
	Sorting     Sorting          `json:"sorting"`
	Legend      Legend           `json:"legend"`
	Grid        Grid             `json:"grid"`
}

// NewDefaultConfig returns the seed configuration for a freshly created chart.
// Aggregation starts enabled; the pipeline decides at runtime whether it has
// enough group-by information to do anything.
func NewDefaultConfig(kind Kind) Config {
	if kind == "" {
		kind = KindBar
	}
	return Config{
		Type:  kind,
		Title: "Untitled Chart",
		Aggregation: Aggregation{
			Enabled: true,
			XAgg:    AggFirst,
			YAgg:    AggSum,
		},
		ColorScale: ColorScaleConfig{
			Type: ScaleCategory,
		},
		Tooltip: Tooltip{
			Trigger:        TriggerItem,
			ShowSeriesName: true,
			ShowValue:      true,
		},
		Filters: []FieldFilter{},
		Sorting: Sorting{
			Direction: SortAsc,
		},
		Legend: Legend{
			Show:   true,
			Orient: "bottom",
			Align:  "center",
		},
		Grid: Grid{Top: 60, Right: 40, Bottom: 60, Left: 60},
	}
}

// Validation is the outcome of checking a config against its kind metadata
type Validation struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks the config against its chart kind metadata. A missing required
// axis is an error; a missing title is only a warning, charts may render untitled.
func (c *Config) Validate() Validation {
	result := Validation{Errors: []string{}, Warnings: []string{}}

	meta, ok := MetadataFor(c.Type)
	if !ok {
		result.Errors = append(result.Errors, "invalid chart type")
	}

	if ok && meta.RequiresX && c.DataMapping.X == "" {
		result.Errors = append(result.Errors, "chart type requires X-axis mapping")
	}
	if ok && meta.RequiresY && c.DataMapping.Y == "" {
		result.Errors = append(result.Errors, "chart type requires Y-axis mapping")
	}

	if strings.TrimSpace(c.Title) == "" {
		result.Warnings = append(result.Warnings, "chart has no title")
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// PrimaryField returns the chart's primary mapped field: x if present, else y.
// Click filters are constructed against this field.
func (c *Config) PrimaryField() string {
	if c.DataMapping.X != "" {
		return c.DataMapping.X
	}
	return c.DataMapping.Y
}

// MappedFields returns every non-empty field binding in channel order
func (c *Config) MappedFields() []string {
	fields := []string{}
	for _, f := range []string{c.DataMapping.X, c.DataMapping.Y, c.DataMapping.Series, c.DataMapping.Size, c.DataMapping.Color} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
