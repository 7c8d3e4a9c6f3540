// Package schema infers per-column semantic types from raw string samples.
//
// Inference reads at most the first sampleSize rows of a dataset rather than a
// random sample, so classification is deterministic for a given file but may
// miss distinguishing values that occur beyond the sample window. That is a
// defined approximation: schema accuracy is probabilistic, not exact.
package schema

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"vizlens/domain/dataset"
)

// DefaultSampleSize bounds how many rows inference reads per column
const DefaultSampleSize = 100

// maxSchemaCategories bounds the category list recorded on a column schema
const maxSchemaCategories = 100

// Value patterns, tested in a fixed order by InferValueType. Booleans are
// deliberately tested before numerics, so "1" and "0" classify as boolean.
var (
	integerPattern  = regexp.MustCompile(`^-?\d+$`)
	floatPattern    = regexp.MustCompile(`^-?\d+\.?\d*([eE]-?\d+)?$|^-?\.\d+([eE]-?\d+)?$`)
	booleanPattern  = regexp.MustCompile(`(?i)^(true|false|yes|no|1|0|on|off)$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlPattern      = regexp.MustCompile(`(?i)^(https?|ftp)://\S+$|^www\.\S+$`)
	datePattern     = regexp.MustCompile(`^\d{4}[-/]\d{2}[-/]\d{2}$|^\d{2}[-/]\d{2}[-/]\d{4}$`)
	datetimePattern = regexp.MustCompile(`^\d{4}[-/]\d{2}[-/]\d{2}[T ]\d{2}:\d{2}(:\d{2})?`)
	timePattern     = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
	iso8601Pattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)
)

// InferValueType classifies a single raw value. It is a pure function of the
// value: the first matching pattern in the fixed test order wins.
func InferValueType(value string) dataset.SemanticType {
	str := strings.TrimSpace(value)
	if str == "" {
		return dataset.TypeUnknown
	}

	switch {
	case iso8601Pattern.MatchString(str):
		return dataset.TypeDateTime
	case datetimePattern.MatchString(str):
		return dataset.TypeDateTime
	case datePattern.MatchString(str):
		return dataset.TypeDate
	case timePattern.MatchString(str):
		return dataset.TypeTime
	case emailPattern.MatchString(str):
		return dataset.TypeEmail
	case urlPattern.MatchString(str):
		return dataset.TypeURL
	case booleanPattern.MatchString(str):
		return dataset.TypeBoolean
	case integerPattern.MatchString(str):
		return dataset.TypeInteger
	case floatPattern.MatchString(str):
		return dataset.TypeFloat
	}
	return dataset.TypeText
}

// InferColumnType infers a column's type by majority vote over its sampled
// values. Ties break toward the type seen first in sample order, which keeps
// the result deterministic for a given value ordering. A numeric majority
// degrades to float whenever any sampled value is float-patterned; any
// temporal majority collapses to the datetime supertype.
func InferColumnType(values []string) dataset.SemanticType {
	types := make([]dataset.SemanticType, 0, len(values))
	for _, v := range values {
		if dataset.IsNull(v) {
			continue
		}
		if t := InferValueType(v); t != dataset.TypeUnknown {
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		return dataset.TypeUnknown
	}

	counts := make(map[dataset.SemanticType]int, len(types))
	firstSeen := make(map[dataset.SemanticType]int, len(types))
	for i, t := range types {
		if _, ok := firstSeen[t]; !ok {
			firstSeen[t] = i
		}
		counts[t]++
	}

	dominant := types[0]
	maxCount := 0
	for t, count := range counts {
		if count > maxCount || (count == maxCount && firstSeen[t] < firstSeen[dominant]) {
			maxCount = count
			dominant = t
		}
	}

	if dominant == dataset.TypeInteger || dominant == dataset.TypeFloat {
		for _, t := range types {
			if t == dataset.TypeFloat {
				return dataset.TypeFloat
			}
		}
		return dataset.TypeInteger
	}

	if dominant.IsTemporal() {
		return dataset.TypeDateTime
	}

	return dominant
}

// InferSchema infers the schema for every column over a bounded row sample.
// sampleSize <= 0 selects DefaultSampleSize.
func InferSchema(table *dataset.Table, sampleSize int) dataset.Schema {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	rows := table.Rows
	if len(rows) > sampleSize {
		rows = rows[:sampleSize]
	}

	result := make(dataset.Schema, len(table.Headers))
	for _, header := range table.Headers {
		values := make([]string, len(rows))
		for i, row := range rows {
			values[i] = row[header]
		}
		result[header] = inferColumnSchema(header, values)
	}
	return result
}

func inferColumnSchema(name string, values []string) dataset.ColumnSchema {
	colType := InferColumnType(values)

	nullCount := 0
	unique := make(map[string]struct{})
	for _, v := range values {
		if dataset.IsNull(v) {
			nullCount++
			continue
		}
		unique[v] = struct{}{}
	}

	col := dataset.ColumnSchema{
		Name:        name,
		Type:        colType,
		Nullable:    nullCount > 0,
		NullCount:   nullCount,
		UniqueCount: len(unique),
		SampleSize:  len(values),
	}

	if colType.IsNumeric() {
		min, max, mean, ok := sampleNumericSummary(values)
		if ok {
			col.Min, col.Max, col.Mean = &min, &max, &mean
		}
	} else if colType == dataset.TypeCategorical || colType == dataset.TypeText {
		categories := make([]string, 0, len(unique))
		seen := make(map[string]struct{}, len(unique))
		for _, v := range values {
			if dataset.IsNull(v) {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			categories = append(categories, v)
		}
		col.CategoriesCount = len(categories)
		if len(categories) > maxSchemaCategories {
			categories = categories[:maxSchemaCategories]
		}
		col.Categories = categories
	}

	return col
}

func sampleNumericSummary(values []string) (min, max, mean float64, ok bool) {
	min = math.Inf(1)
	max = math.Inf(-1)
	sum := 0.0
	count := 0
	for _, v := range values {
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			continue
		}
		if num < min {
			min = num
		}
		if num > max {
			max = num
		}
		sum += num
		count++
	}
	if count == 0 {
		return 0, 0, 0, false
	}
	return min, max, sum / float64(count), true
}
