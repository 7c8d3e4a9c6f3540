package schema

import (
	"fmt"
	"testing"

	"vizlens/domain/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferValueType(t *testing.T) {
	tests := []struct {
		value    string
		expected dataset.SemanticType
	}{
		{"42", dataset.TypeInteger},
		{"-17", dataset.TypeInteger},
		{"3.14", dataset.TypeFloat},
		{"-0.5", dataset.TypeFloat},
		{".5", dataset.TypeFloat},
		{"1e-3", dataset.TypeFloat},
		{"true", dataset.TypeBoolean},
		{"FALSE", dataset.TypeBoolean},
		{"yes", dataset.TypeBoolean},
		{"off", dataset.TypeBoolean},
		{"2023-01-15", dataset.TypeDate},
		{"15/01/2023", dataset.TypeDate},
		{"2023-01-15T10:30:00", dataset.TypeDateTime},
		{"2023-01-15 10:30", dataset.TypeDateTime},
		{"10:30", dataset.TypeTime},
		{"10:30:45", dataset.TypeTime},
		{"user@example.com", dataset.TypeEmail},
		{"https://example.com/page", dataset.TypeURL},
		{"www.example.com", dataset.TypeURL},
		{"hello world", dataset.TypeText},
		{"", dataset.TypeUnknown},
		{"   ", dataset.TypeUnknown},
	}

	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			assert.Equal(t, test.expected, InferValueType(test.value))
		})
	}
}

// Boolean wins over integer for the ambiguous values "1" and "0"
func TestInferValueTypeBooleanBeforeInteger(t *testing.T) {
	assert.Equal(t, dataset.TypeBoolean, InferValueType("1"))
	assert.Equal(t, dataset.TypeBoolean, InferValueType("0"))
	assert.Equal(t, dataset.TypeInteger, InferValueType("2"))
}

func TestInferColumnTypeMajorityVote(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected dataset.SemanticType
	}{
		{"all integers", []string{"10", "20", "30"}, dataset.TypeInteger},
		{"integer majority with stray text stays integer", []string{"1", "2", "x", "3"}, dataset.TypeInteger},
		{"mixed int and float", []string{"1.5", "2", "3"}, dataset.TypeFloat},
		{"integer majority with one float degrades", []string{"10", "20", "3.5"}, dataset.TypeFloat},
		{"text majority", []string{"apple", "banana", "7"}, dataset.TypeText},
		{"dates collapse to datetime", []string{"2023-01-01", "2023-01-02", "2023-01-03"}, dataset.TypeDateTime},
		{"mixed temporal collapses to datetime", []string{"2023-01-01T10:00:00", "2023-01-02", "2023-01-03"}, dataset.TypeDateTime},
		{"all empty", []string{"", "  ", ""}, dataset.TypeUnknown},
		{"nulls ignored in vote", []string{"", "5.5", ""}, dataset.TypeFloat},
		{"no values", nil, dataset.TypeUnknown},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, InferColumnType(test.values))
		})
	}
}

// A tie between two types resolves to the one seen first, so the result is
// stable for a given value order.
func TestInferColumnTypeTieBreaksTowardFirstSeen(t *testing.T) {
	assert.Equal(t, dataset.TypeText, InferColumnType([]string{"apple", "user@example.com"}))
	assert.Equal(t, dataset.TypeEmail, InferColumnType([]string{"user@example.com", "apple"}))
}

func TestInferColumnTypeDeterministic(t *testing.T) {
	values := []string{"1", "2.5", "apple", "2023-01-01", "true", "7"}
	first := InferColumnType(values)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, InferColumnType(values))
	}
}

func TestInferSchema(t *testing.T) {
	table := &dataset.Table{
		Headers: []string{"age", "city", "score"},
		Rows: []dataset.Row{
			{"age": "34", "city": "Berlin", "score": "88.5"},
			{"age": "28", "city": "Paris", "score": "91.2"},
			{"age": "", "city": "Berlin", "score": "75.0"},
		},
	}

	schema := InferSchema(table, 0)
	require.Len(t, schema, 3)

	age := schema["age"]
	assert.Equal(t, dataset.TypeInteger, age.Type)
	assert.True(t, age.Nullable)
	assert.Equal(t, 1, age.NullCount)
	assert.Equal(t, 2, age.UniqueCount)
	require.NotNil(t, age.Min)
	assert.Equal(t, 28.0, *age.Min)
	assert.Equal(t, 34.0, *age.Max)
	assert.Equal(t, 31.0, *age.Mean)

	city := schema["city"]
	assert.Equal(t, dataset.TypeText, city.Type)
	assert.False(t, city.Nullable)
	assert.Equal(t, []string{"Berlin", "Paris"}, city.Categories)
	assert.Equal(t, 2, city.CategoriesCount)

	score := schema["score"]
	assert.Equal(t, dataset.TypeFloat, score.Type)
	require.NotNil(t, score.Mean)
}

func TestInferSchemaRespectsSampleSize(t *testing.T) {
	rows := make([]dataset.Row, 200)
	for i := range rows {
		rows[i] = dataset.Row{"n": "5"}
	}
	// Values beyond the sample window must not influence the result
	rows[150] = dataset.Row{"n": "not a number"}

	table := &dataset.Table{Headers: []string{"n"}, Rows: rows}
	schema := InferSchema(table, 100)

	assert.Equal(t, dataset.TypeInteger, schema["n"].Type)
	assert.Equal(t, 100, schema["n"].SampleSize)
}

func TestInferSchemaCategoriesCapped(t *testing.T) {
	rows := make([]dataset.Row, 150)
	for i := range rows {
		rows[i] = dataset.Row{"label": fmt.Sprintf("item-%d", i)}
	}

	table := &dataset.Table{Headers: []string{"label"}, Rows: rows}
	schema := InferSchema(table, 150)

	col := schema["label"]
	assert.Equal(t, 150, col.CategoriesCount)
	assert.Len(t, col.Categories, maxSchemaCategories)
}
