package profiling

import (
	"strings"
	"testing"
	"time"

	"vizlens/domain/core"
	"vizlens/domain/dataset"
	"vizlens/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderMarkdown(t *testing.T) string {
	t.Helper()
	table := &dataset.Table{
		Headers: []string{"age", "city"},
		Rows: []dataset.Row{
			{"age": "25", "city": "NYC"},
			{"age": "30", "city": "NYC"},
			{"age": "", "city": "LA"},
		},
	}
	inferred := schema.InferSchema(table, 0)
	report := NewProfiler().ProfileData(table, inferred)
	report.Summary.Timestamp = core.NewTimestamp(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	return SummaryMarkdown(report)
}

func TestSummaryMarkdown(t *testing.T) {
	md := renderMarkdown(t)

	assert.Contains(t, md, "# Data Profile")
	assert.Contains(t, md, "3 rows and 2 columns")
	assert.Contains(t, md, "Profiled at 2026-01-02T03:04:05Z")
	assert.Contains(t, md, "| age |")
	assert.Contains(t, md, "| city |")
	assert.Contains(t, md, `top "NYC" (2, 66.67%)`)
}

// Column rows are sorted by name so repeated renders are byte-identical
func TestSummaryMarkdownDeterministic(t *testing.T) {
	first := renderMarkdown(t)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, renderMarkdown(t))
	}

	ageIdx := strings.Index(first, "| age |")
	cityIdx := strings.Index(first, "| city |")
	require.Greater(t, ageIdx, 0)
	assert.Less(t, ageIdx, cityIdx)
}

func TestSummaryHTML(t *testing.T) {
	table := &dataset.Table{
		Headers: []string{"age"},
		Rows:    []dataset.Row{{"age": "25"}, {"age": "30"}},
	}
	inferred := schema.InferSchema(table, 0)
	html := string(SummaryHTML(NewProfiler().ProfileData(table, inferred)))

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "age")
}
