package interaction

import (
	"vizlens/domain/chart"
	"vizlens/domain/core"
	"vizlens/domain/dataset"
	"vizlens/domain/interaction"
	"vizlens/internal"
)

// Renderer events are resolved against the chart's transformed-data slice by
// index. Out-of-range indices are ignored without mutating state.

// ClickEvent is a renderer click on a plotted point
type ClickEvent struct {
	ChartID   core.ChartID `json:"chart_id"`
	DataIndex int          `json:"data_index"`
}

// HoverEvent is a renderer hover over a plotted point
type HoverEvent struct {
	ChartID   core.ChartID `json:"chart_id"`
	DataIndex int          `json:"data_index"`
}

// SelectedArea is one selected index set inside a brush batch
type SelectedArea struct {
	DataIndex []int `json:"dataIndex"`
}

// BrushBatch is one renderer brush payload
type BrushBatch struct {
	Selected []SelectedArea `json:"selected"`
}

// BrushEvent is a renderer brush selection
type BrushEvent struct {
	ChartID core.ChartID `json:"chart_id"`
	Batch   []BrushBatch `json:"batch"`
}

// Dispatcher translates renderer events into store mutations. It owns no
// state beyond the store reference and the logger.
type Dispatcher struct {
	store *Store
	log   *internal.Logger
}

// NewDispatcher creates a dispatcher bound to a store
func NewDispatcher(store *Store) *Dispatcher {
	return &Dispatcher{
		store: store,
		log:   internal.DefaultLogger.Component("Interaction"),
	}
}

// HandleClick resolves a click to a row and toggles an equals filter on the
// chart's primary mapped field. Clicking an already-filtered value removes
// that filter instead of stacking a duplicate.
func (d *Dispatcher) HandleClick(ev ClickEvent, rows []dataset.Row, config chart.Config) {
	if ev.DataIndex < 0 || ev.DataIndex >= len(rows) {
		d.log.Debug("click index %d out of range, ignoring", ev.DataIndex)
		return
	}
	field := config.PrimaryField()
	if field == "" {
		return
	}

	point := rows[ev.DataIndex]
	for _, existing := range d.store.ChartFilters(ev.ChartID) {
		if existing.Type == interaction.FilterEquals && existing.Field == field && existing.Value == point[field] {
			d.store.RemoveFilter(ev.ChartID, existing.ID)
			return
		}
	}
	d.store.AddFilter(ev.ChartID, NewClickFilter(ev.ChartID, point, field))
}

// HandleHover resolves a hover to a row and publishes it with the chart's
// other mapped fields as related fields
func (d *Dispatcher) HandleHover(ev HoverEvent, rows []dataset.Row, config chart.Config) {
	if ev.DataIndex < 0 || ev.DataIndex >= len(rows) {
		return
	}
	field := config.PrimaryField()
	if field == "" {
		return
	}

	point := rows[ev.DataIndex]
	related := map[string]string{}
	for _, mapped := range config.MappedFields() {
		if mapped != field {
			related[mapped] = point[mapped]
		}
	}

	d.store.SetActiveHover(interaction.Hover{
		ChartID:       ev.ChartID,
		Field:         field,
		Value:         point[field],
		RelatedFields: related,
	})
}

// HandleHoverEnd clears the active hover
func (d *Dispatcher) HandleHoverEnd() {
	d.store.ClearActiveHover()
}

// HandleBrush resolves brushed indices to rows and derives a filter: a numeric
// range over the primary field when every selected value coerces, otherwise an
// in filter over the distinct selected values. An empty batch clears the
// chart's brush-derived state.
func (d *Dispatcher) HandleBrush(ev BrushEvent, rows []dataset.Row, config chart.Config) {
	field := config.PrimaryField()
	if field == "" {
		return
	}

	selected := []dataset.Row{}
	for _, batch := range ev.Batch {
		for _, area := range batch.Selected {
			for _, idx := range area.DataIndex {
				if idx < 0 || idx >= len(rows) {
					continue
				}
				selected = append(selected, rows[idx])
			}
		}
	}

	if len(selected) == 0 {
		d.store.ClearActiveBrush()
		d.store.ClearFilters(ev.ChartID)
		return
	}

	values := make([]string, len(selected))
	for i, row := range selected {
		values[i] = row[field]
	}

	d.store.ClearFilters(ev.ChartID)
	if min, max, ok := numericRange(values); ok {
		d.store.SetActiveBrush(interaction.Brush{
			ChartID:   ev.ChartID,
			Selection: interaction.BrushSelection{Field: field, Min: min, Max: max},
		})
		d.store.AddFilter(ev.ChartID, NewBrushRangeFilter(ev.ChartID, field, min, max))
		return
	}
	d.store.AddFilter(ev.ChartID, NewBrushValuesFilter(ev.ChartID, field, distinct(values)))
}
