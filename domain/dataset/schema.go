package dataset

// SemanticType classifies a column's values. The enumeration is closed;
// supertype membership is exposed through the Is* helpers.
type SemanticType string

const (
	TypeInteger     SemanticType = "integer"
	TypeFloat       SemanticType = "float"
	TypeBoolean     SemanticType = "boolean"
	TypeCategorical SemanticType = "categorical"
	TypeDate        SemanticType = "date"
	TypeDateTime    SemanticType = "datetime"
	TypeTime        SemanticType = "time"
	TypeText        SemanticType = "text"
	TypeURL         SemanticType = "url"
	TypeEmail       SemanticType = "email"
	TypeUnknown     SemanticType = "unknown"
)

// IsNumeric reports membership in the numeric supertype
func (t SemanticType) IsNumeric() bool {
	return t == TypeInteger || t == TypeFloat
}

// IsTemporal reports membership in the temporal supertype
func (t SemanticType) IsTemporal() bool {
	return t == TypeDate || t == TypeDateTime || t == TypeTime
}

// IsCategorical reports membership in the categorical supertype. Free text is
// treated as categorical for filtering purposes, as are emails and URLs.
func (t SemanticType) IsCategorical() bool {
	switch t {
	case TypeCategorical, TypeBoolean, TypeText, TypeEmail, TypeURL:
		return true
	}
	return false
}

// Label returns a display name for the type
func (t SemanticType) Label() string {
	labels := map[SemanticType]string{
		TypeInteger:     "Integer",
		TypeFloat:       "Float",
		TypeBoolean:     "Boolean",
		TypeCategorical: "Categorical",
		TypeDate:        "Date",
		TypeDateTime:    "DateTime",
		TypeTime:        "Time",
		TypeText:        "Text",
		TypeURL:         "URL",
		TypeEmail:       "Email",
		TypeUnknown:     "Unknown",
	}
	if label, ok := labels[t]; ok {
		return label
	}
	return string(t)
}

// ColumnSchema describes a single column as inferred from a bounded sample.
// Inference never reads the whole dataset, so the figures are probabilistic.
type ColumnSchema struct {
	Name        string       `json:"name"`
	Type        SemanticType `json:"type"`
	Nullable    bool         `json:"nullable"`
	NullCount   int          `json:"null_count"`
	UniqueCount int          `json:"unique_count"`
	SampleSize  int          `json:"sample_size"`

	// Numeric columns only
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Mean *float64 `json:"mean,omitempty"`

	// Categorical columns only
	Categories      []string `json:"categories,omitempty"`
	CategoriesCount int      `json:"categories_count,omitempty"`
}

// Schema maps column names to their inferred descriptions
type Schema map[string]ColumnSchema
