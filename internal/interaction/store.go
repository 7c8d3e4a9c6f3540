// Package interaction holds the shared cross-chart interaction state: the
// active hover, the active brush, and click/brush filters keyed by the chart
// that created them.
//
// The store is the single point of truth for linked charts. It is injected
// into every consumer rather than living as a package-level singleton, which
// keeps cross-chart behavior testable without any UI. Mutations are
// last-write-wins per field (hover, brush) or append/remove per chart id
// (filters), so interleaved writers cannot produce merge conflicts.
package interaction

import (
	"sync"

	"vizlens/domain/core"
	"vizlens/domain/interaction"
)

// Observer is notified after every store mutation (push model). The store does
// no debouncing; callers throttle high-frequency sources before calling in.
type Observer func()

// Store is the observable interaction state shared by all linked charts
type Store struct {
	mu sync.RWMutex

	activeHover   *interaction.Hover
	activeBrush   *interaction.Brush
	activeFilters map[core.ChartID][]interaction.Filter
	filterOrder   []core.ChartID // chart ids in first-filter order
	linkedCharts  []core.ChartID

	observers []Observer
}

// NewStore creates an empty interaction store
func NewStore() *Store {
	return &Store{
		activeFilters: make(map[core.ChartID][]interaction.Filter),
	}
}

// Subscribe registers an observer invoked after every mutation
func (s *Store) Subscribe(obs Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, obs)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()
	for _, obs := range observers {
		obs()
	}
}

// SetActiveHover records the hovered point, replacing any previous hover
func (s *Store) SetActiveHover(hover interaction.Hover) {
	s.mu.Lock()
	s.activeHover = &hover
	s.mu.Unlock()
	s.notify()
}

// ClearActiveHover drops the active hover, called on mouse-out
func (s *Store) ClearActiveHover() {
	s.mu.Lock()
	s.activeHover = nil
	s.mu.Unlock()
	s.notify()
}

// ActiveHover returns the current hover, or false when none is active
func (s *Store) ActiveHover() (interaction.Hover, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeHover == nil {
		return interaction.Hover{}, false
	}
	return *s.activeHover, true
}

// SetActiveBrush records a brush selection, replacing any previous brush
func (s *Store) SetActiveBrush(brush interaction.Brush) {
	s.mu.Lock()
	s.activeBrush = &brush
	s.mu.Unlock()
	s.notify()
}

// ClearActiveBrush drops the active brush
func (s *Store) ClearActiveBrush() {
	s.mu.Lock()
	s.activeBrush = nil
	s.mu.Unlock()
	s.notify()
}

// ActiveBrush returns the current brush, or false when none is active
func (s *Store) ActiveBrush() (interaction.Brush, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeBrush == nil {
		return interaction.Brush{}, false
	}
	return *s.activeBrush, true
}

// AddFilter appends a filter under its originating chart id
func (s *Store) AddFilter(chartID core.ChartID, filter interaction.Filter) {
	s.mu.Lock()
	if _, ok := s.activeFilters[chartID]; !ok {
		s.filterOrder = append(s.filterOrder, chartID)
	}
	s.activeFilters[chartID] = append(s.activeFilters[chartID], filter)
	s.mu.Unlock()
	s.notify()
}

// RemoveFilter removes one filter by id from the chart's list
func (s *Store) RemoveFilter(chartID core.ChartID, filterID core.FilterID) {
	s.mu.Lock()
	filters := s.activeFilters[chartID]
	kept := filters[:0]
	for _, f := range filters {
		if f.ID != filterID {
			kept = append(kept, f)
		}
	}
	s.activeFilters[chartID] = kept
	s.mu.Unlock()
	s.notify()
}

// ClearFilters removes every filter originating from one chart
func (s *Store) ClearFilters(chartID core.ChartID) {
	s.mu.Lock()
	delete(s.activeFilters, chartID)
	for i, id := range s.filterOrder {
		if id == chartID {
			s.filterOrder = append(s.filterOrder[:i], s.filterOrder[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// ClearAllFilters removes every chart's filters
func (s *Store) ClearAllFilters() {
	s.mu.Lock()
	s.activeFilters = make(map[core.ChartID][]interaction.Filter)
	s.filterOrder = nil
	s.mu.Unlock()
	s.notify()
}

// LinkCharts replaces the set of linked chart ids
func (s *Store) LinkCharts(ids []core.ChartID) {
	s.mu.Lock()
	s.linkedCharts = append([]core.ChartID(nil), ids...)
	s.mu.Unlock()
	s.notify()
}

// UnlinkCharts clears the linked set
func (s *Store) UnlinkCharts() {
	s.LinkCharts(nil)
}

// LinkedCharts returns the currently linked chart ids
func (s *Store) LinkedCharts() []core.ChartID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.ChartID{}, s.linkedCharts...)
}

// AllFilters returns every active filter across charts, grouped by chart in
// first-filter order and in insertion order within each chart
func (s *Store) AllFilters() []interaction.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := []interaction.Filter{}
	for _, chartID := range s.filterOrder {
		all = append(all, s.activeFilters[chartID]...)
	}
	return all
}

// ChartFilters returns the filters originating from one chart
func (s *Store) ChartFilters(chartID core.ChartID) []interaction.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]interaction.Filter(nil), s.activeFilters[chartID]...)
}

// Reset atomically discards all interaction state. Called when a new dataset
// replaces the old one, so stale filters referencing old fields never leak
// into a freshly loaded dataset.
func (s *Store) Reset() {
	s.mu.Lock()
	s.activeHover = nil
	s.activeBrush = nil
	s.activeFilters = make(map[core.ChartID][]interaction.Filter)
	s.filterOrder = nil
	s.linkedCharts = nil
	s.mu.Unlock()
	s.notify()
}
