// Package uistate holds the dashboard's per-session UI state as an explicit
// value with pure reducer functions. Handlers apply reducers and store the
// result; nothing in here mutates shared state, which keeps the filter/KPI
// core independently testable.
package uistate

import "github.com/LeiffK/QAi/internal/quality"

// DrawerContent identifies what the detail drawer is showing.
type DrawerContent string

// Drawer content kinds.
const (
	DrawerBatch    DrawerContent = "batch"
	DrawerSupplier DrawerContent = "supplier"
)

// Drawer is the detail drawer state. ID references a batch or supplier
// depending on Content.
type Drawer struct {
	Open    bool          `json:"open"`
	Content DrawerContent `json:"content,omitempty"`
	ID      string        `json:"id,omitempty"`
}

// State is the complete UI state for one session.
type State struct {
	Filters quality.Filters        `json:"filters"`
	Brush   quality.BrushSelection `json:"brushSelection"`

	HighlightedSupplier string `json:"highlightedSupplier,omitempty"`
	HighlightedLine     string `json:"highlightedLine,omitempty"`

	Drawer Drawer `json:"drawer"`

	ActiveTab     string `json:"activeTab"`
	ActiveSection string `json:"activeSection"`

	SelectedPlantID string `json:"selectedPlantId,omitempty"`
	SelectedLineID  string `json:"selectedLineId,omitempty"`

	ComparisonLineIDs []string `json:"comparisonLineIds,omitempty"`
}

// Initial returns the default state: unconstrained 30 day dashboard view.
func Initial() State {
	return State{
		Filters:       quality.DefaultFilters(),
		ActiveTab:     "dashboard",
		ActiveSection: "overview",
	}
}

// Reducers. Each takes the state by value and returns the successor state;
// the input is never modified.

// SetFilters replaces the filter block.
func SetFilters(s State, f quality.Filters) State {
	s.Filters = f
	return s
}

// ResetFilters restores the default filters and clears the brush.
func ResetFilters(s State) State {
	s.Filters = quality.DefaultFilters()
	s.Brush = quality.BrushSelection{}
	return s
}

// SetBrush sets the chart brush selection.
func SetBrush(s State, b quality.BrushSelection) State {
	s.Brush = b
	return s
}

// ClearBrush removes the brush override.
func ClearBrush(s State) State {
	s.Brush = quality.BrushSelection{}
	return s
}

// OpenDrawer opens the detail drawer on a batch or supplier.
func OpenDrawer(s State, content DrawerContent, id string) State {
	s.Drawer = Drawer{Open: true, Content: content, ID: id}
	return s
}

// CloseDrawer closes the detail drawer.
func CloseDrawer(s State) State {
	s.Drawer = Drawer{}
	return s
}

// SetActiveTab switches the top-level tab.
func SetActiveTab(s State, tab string) State {
	s.ActiveTab = tab
	return s
}

// SetActiveSection switches the section within a tab.
func SetActiveSection(s State, section string) State {
	s.ActiveSection = section
	return s
}

// HighlightSupplier sets (or with "" clears) the cross-highlight supplier.
func HighlightSupplier(s State, supplierID string) State {
	s.HighlightedSupplier = supplierID
	return s
}

// HighlightLine sets (or with "" clears) the cross-highlight line.
func HighlightLine(s State, lineID string) State {
	s.HighlightedLine = lineID
	return s
}

// SelectPlant sets the drill-down plant.
func SelectPlant(s State, plantID string) State {
	s.SelectedPlantID = plantID
	return s
}

// SelectLine sets the drill-down line.
func SelectLine(s State, lineID string) State {
	s.SelectedLineID = lineID
	return s
}

// ToggleComparisonLine adds or removes a line from comparison mode. The
// underlying slice is copied, never mutated in place.
func ToggleComparisonLine(s State, lineID string) State {
	next := make([]string, 0, len(s.ComparisonLineIDs)+1)
	found := false
	for _, id := range s.ComparisonLineIDs {
		if id == lineID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, lineID)
	}
	s.ComparisonLineIDs = next
	return s
}

// ClearComparison leaves comparison mode.
func ClearComparison(s State) State {
	s.ComparisonLineIDs = nil
	return s
}
