package interaction

import (
	"testing"

	"vizlens/domain/chart"
	"vizlens/domain/interaction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barConfig() chart.Config {
	config := chart.NewDefaultConfig(chart.KindBar)
	config.DataMapping = chart.DataMapping{X: "region", Y: "sales"}
	return config
}

func TestHandleClickAddsFilter(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)
	rows := sampleRows()

	d.HandleClick(ClickEvent{ChartID: "c1", DataIndex: 1}, rows, barConfig())

	filters := store.ChartFilters("c1")
	require.Len(t, filters, 1)
	assert.Equal(t, interaction.FilterEquals, filters[0].Type)
	assert.Equal(t, "region", filters[0].Field)
	assert.Equal(t, "US", filters[0].Value)
}

// Clicking the same value again removes the filter instead of stacking
func TestHandleClickToggles(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)
	rows := sampleRows()

	d.HandleClick(ClickEvent{ChartID: "c1", DataIndex: 1}, rows, barConfig())
	d.HandleClick(ClickEvent{ChartID: "c1", DataIndex: 1}, rows, barConfig())

	assert.Empty(t, store.ChartFilters("c1"))
}

func TestHandleClickOutOfRangeIsNoOp(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)
	rows := sampleRows()

	d.HandleClick(ClickEvent{ChartID: "c1", DataIndex: -1}, rows, barConfig())
	d.HandleClick(ClickEvent{ChartID: "c1", DataIndex: len(rows)}, rows, barConfig())

	assert.Empty(t, store.AllFilters())
}

func TestHandleClickUnmappedChartIsNoOp(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)

	d.HandleClick(ClickEvent{ChartID: "c1", DataIndex: 0}, sampleRows(), chart.NewDefaultConfig(chart.KindBar))

	assert.Empty(t, store.AllFilters())
}

func TestHandleHoverPublishesRelatedFields(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)

	d.HandleHover(HoverEvent{ChartID: "c1", DataIndex: 0}, sampleRows(), barConfig())

	hover, ok := store.ActiveHover()
	require.True(t, ok)
	assert.Equal(t, "region", hover.Field)
	assert.Equal(t, "EU", hover.Value)
	assert.Equal(t, map[string]string{"sales": "10"}, hover.RelatedFields)
}

func TestHandleHoverOutOfRangeIsNoOp(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)

	d.HandleHover(HoverEvent{ChartID: "c1", DataIndex: 99}, sampleRows(), barConfig())

	_, ok := store.ActiveHover()
	assert.False(t, ok)
}

func TestHandleHoverEnd(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)

	d.HandleHover(HoverEvent{ChartID: "c1", DataIndex: 0}, sampleRows(), barConfig())
	d.HandleHoverEnd()

	_, ok := store.ActiveHover()
	assert.False(t, ok)
}

func TestHandleBrushNumericSelection(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)

	config := chart.NewDefaultConfig(chart.KindScatter)
	config.DataMapping = chart.DataMapping{X: "sales"}

	ev := BrushEvent{
		ChartID: "c1",
		Batch:   []BrushBatch{{Selected: []SelectedArea{{DataIndex: []int{0, 2}}}}},
	}
	d.HandleBrush(ev, sampleRows(), config)

	filters := store.ChartFilters("c1")
	require.Len(t, filters, 1)
	assert.Equal(t, interaction.FilterRange, filters[0].Type)
	assert.Equal(t, 10.0, filters[0].Min)
	assert.Equal(t, 30.0, filters[0].Max)

	brush, ok := store.ActiveBrush()
	require.True(t, ok)
	assert.Equal(t, "sales", brush.Selection.Field)
}

func TestHandleBrushCategoricalSelection(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)

	ev := BrushEvent{
		ChartID: "c1",
		Batch:   []BrushBatch{{Selected: []SelectedArea{{DataIndex: []int{0, 1, 2}}}}},
	}
	d.HandleBrush(ev, sampleRows(), barConfig())

	filters := store.ChartFilters("c1")
	require.Len(t, filters, 1)
	assert.Equal(t, interaction.FilterIn, filters[0].Type)
	assert.Equal(t, []string{"EU", "US"}, filters[0].Values)
}

func TestHandleBrushEmptyBatchClears(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)
	rows := sampleRows()

	full := BrushEvent{
		ChartID: "c1",
		Batch:   []BrushBatch{{Selected: []SelectedArea{{DataIndex: []int{0}}}}},
	}
	d.HandleBrush(full, rows, barConfig())
	require.NotEmpty(t, store.ChartFilters("c1"))

	d.HandleBrush(BrushEvent{ChartID: "c1"}, rows, barConfig())
	assert.Empty(t, store.ChartFilters("c1"))
	_, ok := store.ActiveBrush()
	assert.False(t, ok)
}

func TestHandleBrushSkipsOutOfRangeIndices(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)

	ev := BrushEvent{
		ChartID: "c1",
		Batch:   []BrushBatch{{Selected: []SelectedArea{{DataIndex: []int{-5, 99}}}}},
	}
	d.HandleBrush(ev, sampleRows(), barConfig())

	// every index invalid behaves like an empty selection
	assert.Empty(t, store.ChartFilters("c1"))
}

// A new brush replaces the chart's previous brush filter rather than stacking
func TestHandleBrushReplacesPreviousFilter(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)
	rows := sampleRows()

	one := BrushEvent{ChartID: "c1", Batch: []BrushBatch{{Selected: []SelectedArea{{DataIndex: []int{0}}}}}}
	two := BrushEvent{ChartID: "c1", Batch: []BrushBatch{{Selected: []SelectedArea{{DataIndex: []int{1}}}}}}

	d.HandleBrush(one, rows, barConfig())
	d.HandleBrush(two, rows, barConfig())

	filters := store.ChartFilters("c1")
	require.Len(t, filters, 1)
	assert.Equal(t, []string{"US"}, filters[0].Values)
}
