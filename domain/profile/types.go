package profile

import (
	"vizlens/domain/core"
	"vizlens/domain/dataset"
)

// NumericStats is the five-number summary plus spread for a numeric column.
// StdDev is the population standard deviation; quartiles are taken at
// floor(N*0.25) / floor(N*0.75) into the sorted values without interpolation.
type NumericStats struct {
	Count    int     `json:"count"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	Range    float64 `json:"range"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// ValueFrequency is one entry of a categorical top-K list
type ValueFrequency struct {
	Value      string  `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoricalStats summarizes a categorical column's frequency distribution
type CategoricalStats struct {
	UniqueCount int              `json:"unique_count"`
	TopValues   []ValueFrequency `json:"top_values"`
}

// TemporalStats summarizes the span of a temporal column. Unparseable entries
// are discarded silently before the span is computed.
type TemporalStats struct {
	Count    int    `json:"count"`
	MinDate  string `json:"min_date"` // YYYY-MM-DD
	MaxDate  string `json:"max_date"`
	SpanDays int    `json:"span_days"`
}

// ColumnProfile is the full per-column summary. Exactly one of the stats
// pointers is set, chosen by the column's semantic supertype.
type ColumnProfile struct {
	Name                string               `json:"name"`
	Type                dataset.SemanticType `json:"type"`
	TotalCount          int                  `json:"total_count"`
	NonNullCount        int                  `json:"non_null_count"`
	NullCount           int                  `json:"null_count"`
	NullPercentage      float64              `json:"null_percentage"`
	UniqueCount         int                  `json:"unique_count"`
	DuplicatePercentage float64              `json:"duplicate_percentage"`

	Numeric     *NumericStats     `json:"numeric_stats,omitempty"`
	Categorical *CategoricalStats `json:"categorical_stats,omitempty"`
	Temporal    *TemporalStats    `json:"temporal_stats,omitempty"`
}

// IssueSeverity grades a quality issue
type IssueSeverity string

const (
	SeverityWarning IssueSeverity = "warning"
	SeverityInfo    IssueSeverity = "info"
)

// Issue flags a single data-quality finding on a column
type Issue struct {
	Severity IssueSeverity `json:"severity"`
	Column   string        `json:"column"`
	Message  string        `json:"message"`
}

// Quality is the overall data-quality assessment. Validity is a fixed
// placeholder score, not the result of real constraint checks.
type Quality struct {
	Completeness float64 `json:"completeness"`
	Validity     float64 `json:"validity"`
	Overall      float64 `json:"overall"`
	Issues       []Issue `json:"issues"`
}

// Summary carries dataset-level counts
type Summary struct {
	TotalRows    int            `json:"total_rows"`
	TotalColumns int            `json:"total_columns"`
	Timestamp    core.Timestamp `json:"timestamp"`
}

// Report is the complete profile of a dataset
type Report struct {
	Summary Summary                  `json:"summary"`
	Columns map[string]ColumnProfile `json:"columns"`
	Quality Quality                  `json:"quality"`
}
