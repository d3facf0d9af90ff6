package table

import (
	"slices"
)

// SelectColumn is the key of the synthetic leading checkbox column.
const SelectColumn = "select"

// State is everything the user has changed about a table. It is small and
// serializable so it can round-trip through the client.
type State struct {
	Sorting   Sorting  `msgpack:"s,omitempty"`
	Search    string   `msgpack:"q,omitempty"`
	Selected  []string `msgpack:"sel,omitempty"`
	Expanded  string   `msgpack:"x,omitempty"`
	Hovered   *int     `msgpack:"h,omitempty"`
	PageIndex int      `msgpack:"pi,omitempty"`
	PageSize  int      `msgpack:"ps,omitempty"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Sorting = slices.Clone(s.Sorting)
	s.Selected = slices.Clone(s.Selected)
	if s.Hovered != nil {
		h := *s.Hovered
		s.Hovered = &h
	}
	return s
}

// IsSelected reports whether the row with id is selected.
func (s State) IsSelected(id string) bool {
	_, ok := slices.BinarySearch(s.Selected, id)
	return ok
}

// IsExpanded reports whether the row with id is the expanded row.
func (s State) IsExpanded(id string) bool {
	return s.Expanded != "" && s.Expanded == id
}

// IsHovered reports whether the row at page position i is hovered.
func (s State) IsHovered(i int) bool {
	return s.Hovered != nil && *s.Hovered == i
}

// Normalize sorts and de-duplicates the selection set.
func (s State) Normalize() State {
	if len(s.Selected) > 0 {
		sel := slices.Clone(s.Selected)
		slices.Sort(sel)
		s.Selected = slices.Compact(sel)
	}
	return s
}

func (s State) withSelected(id string, on bool) State {
	i, found := slices.BinarySearch(s.Selected, id)
	switch {
	case on && !found:
		s.Selected = slices.Insert(slices.Clone(s.Selected), i, id)
	case !on && found:
		s.Selected = slices.Delete(slices.Clone(s.Selected), i, i+1)
	}
	return s
}

// Event is a user interaction applied by Engine.Dispatch.
type Event interface {
	event()
}

type (
	// ToggleSort advances the sort direction of Column.
	ToggleSort struct{ Column string }
	// Search replaces the search query.
	Search struct{ Query string }
	// ToggleRow flips the selection of one row.
	ToggleRow struct{ ID string }
	// ToggleAllRows selects every filtered row, or clears them all when
	// they are already selected.
	ToggleAllRows struct{}
	// ToggleExpand expands the row, collapsing any other. Expanding the
	// already expanded row collapses it.
	ToggleExpand struct{ ID string }
	// Hover marks the row at page position Index as hovered.
	Hover struct{ Index int }
	// Leave clears the hovered row.
	Leave struct{}
	// GoToPage jumps to a page. Out-of-range indexes clamp.
	GoToPage struct{ Index int }
	NextPage struct{}
	PrevPage struct{}
	// SetPageSize changes the page size, keeping the first visible row
	// on the resulting page.
	SetPageSize struct{ Size int }
)

func (ToggleSort) event()    {}
func (Search) event()        {}
func (ToggleRow) event()     {}
func (ToggleAllRows) event() {}
func (ToggleExpand) event()  {}
func (Hover) event()         {}
func (Leave) event()         {}
func (GoToPage) event()      {}
func (NextPage) event()      {}
func (PrevPage) event()      {}
func (SetPageSize) event()   {}
