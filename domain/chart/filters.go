package chart

// FilterOperator is a closed set of row-level comparison operators
type FilterOperator string

const (
	OpEquals         FilterOperator = "equals"
	OpNotEquals      FilterOperator = "notEquals"
	OpGreaterThan    FilterOperator = "greaterThan"
	OpLessThan       FilterOperator = "lessThan"
	OpGreaterOrEqual FilterOperator = "greaterOrEqual"
	OpLessOrEqual    FilterOperator = "lessOrEqual"
	OpContains       FilterOperator = "contains"
	OpNotContains    FilterOperator = "notContains"
	OpIn             FilterOperator = "in"
	OpNotIn          FilterOperator = "notIn"
	OpIsEmpty        FilterOperator = "isEmpty"
	OpIsNotEmpty     FilterOperator = "isNotEmpty"
)

// FieldFilter restricts rows by a single field comparison. Filters in a config
// are applied in declaration order with AND semantics.
type FieldFilter struct {
	Field    string         `json:"field"`
	Operator FilterOperator `json:"operator"`
	Value    string         `json:"value,omitempty"`
	Values   []string       `json:"values,omitempty"` // for in / notIn
}
