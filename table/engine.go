package table

import (
	"fmt"
	"slices"
)

// Config enables and tunes engine features.
type Config struct {
	// Columns lists the known column keys. When set, sorting an unknown
	// column is an error.
	Columns           []string
	SearchableColumns []string
	// SortableColumns is the sort allow-list, empty means all columns.
	SortableColumns []string
	// EnableSorting applies the sort state to the rows. The sort state is
	// tracked either way.
	EnableSorting bool
	// ControlledSorting leaves State.Sorting untouched on ToggleSort and
	// only reports the proposed sorting in Change.
	ControlledSorting bool
	EnableSelection   bool
	// Paginate slices the rows into pages.
	Paginate bool
	PageSize int
	// ManualPagination means the rows already are the current page
	// window. The engine counts pages but does not slice.
	ManualPagination bool
	// RowCount is the total row count in manual mode. Zero falls back to
	// the number of filtered rows.
	RowCount int
}

// Engine computes table models from data and state.
type Engine[T any] struct {
	Config Config
	// Fields overrides DefaultFields.
	Fields FieldsFunc[T]
	// RowID overrides DefaultRowID.
	RowID RowIDFunc[T]
	// Search replaces the default filter for non-empty queries.
	Search func(query string) []T
}

// NewEngine returns an engine for cfg.
func NewEngine[T any](cfg Config) *Engine[T] {
	return &Engine[T]{Config: cfg}
}

// PageRow is a row on the visible page.
type PageRow[T any] struct {
	Row[T]
	// Position is the index of the row on the page.
	Position int
	Selected bool
	Expanded bool
	Hovered  bool
}

// Model is the derived, render-ready view of a table.
type Model[T any] struct {
	// Rows are all filtered rows in display order.
	Rows []Row[T]
	// Page are the rows to display.
	Page []PageRow[T]
	// Selected are the selected filtered rows in data order.
	Selected     []Row[T]
	PageIndex    int
	PageSize     int
	PageCount    int
	CanPrev      bool
	CanNext      bool
	AllSelected  bool
	SomeSelected bool
}

// PageSize resolves the page size in effect for st.
func (e *Engine[T]) PageSize(st State) int {
	switch {
	case st.PageSize > 0:
		return st.PageSize
	case e.Config.PageSize > 0:
		return e.Config.PageSize
	default:
		return DefaultPageSize
	}
}

// Model filters, sorts and paginates data for st.
func (e *Engine[T]) Model(data []T, st State) Model[T] {
	filtered := e.Filter(data, st.Search)
	return e.model(filtered, st)
}

func (e *Engine[T]) model(filtered []Row[T], st State) Model[T] {
	m := Model[T]{PageSize: e.PageSize(st)}

	for _, r := range filtered {
		if st.IsSelected(r.ID) {
			m.Selected = append(m.Selected, r)
		}
	}
	m.AllSelected = len(filtered) > 0 && len(m.Selected) == len(filtered)
	m.SomeSelected = len(m.Selected) > 0 && !m.AllSelected

	rows := slices.Clone(filtered)
	if e.Config.EnableSorting {
		SortRows(rows, st.Sorting)
	}
	m.Rows = rows

	m.PageCount = PageCount(e.rowCount(len(rows)), m.PageSize)
	m.PageIndex = ClampPage(st.PageIndex, m.PageCount)
	m.CanPrev = m.PageIndex > 0
	m.CanNext = m.PageIndex < m.PageCount-1

	page := rows
	if e.Config.Paginate && !e.Config.ManualPagination {
		start := min(m.PageIndex*m.PageSize, len(rows))
		end := min(start+m.PageSize, len(rows))
		page = rows[start:end]
	}
	m.Page = make([]PageRow[T], len(page))
	for i, r := range page {
		m.Page[i] = PageRow[T]{
			Row:      r,
			Position: i,
			Selected: st.IsSelected(r.ID),
			Expanded: st.IsExpanded(r.ID),
			Hovered:  st.IsHovered(i),
		}
	}
	return m
}

func (e *Engine[T]) rowCount(filtered int) int {
	if e.Config.ManualPagination && e.Config.RowCount > 0 {
		return e.Config.RowCount
	}
	return filtered
}

// Change describes what an event changed.
type Change struct {
	// Sorting is the sort state the event produced. With
	// ControlledSorting it differs from the returned State.
	Sorting          Sorting
	SortChanged      bool
	SearchChanged    bool
	SelectionChanged bool
	ExpandedChanged  bool
	HoverChanged     bool
	PageChanged      bool
}

// Any reports whether anything changed.
func (c Change) Any() bool {
	return c.SortChanged || c.SearchChanged || c.SelectionChanged ||
		c.ExpandedChanged || c.HoverChanged || c.PageChanged
}

// Dispatch applies ev to st and returns the next state. The page index of
// the result is always clamped to the page count.
func (e *Engine[T]) Dispatch(data []T, st State, ev Event) (State, Change, error) {
	prev := st
	next := st.Clone().Normalize()
	var ch Change

	filtered := e.Filter(data, next.Search)
	pageCount := PageCount(e.rowCount(len(filtered)), e.PageSize(next))

	switch ev := ev.(type) {
	case ToggleSort:
		if len(e.Config.Columns) > 0 && !slices.Contains(e.Config.Columns, ev.Column) {
			return prev, Change{}, fmt.Errorf("%w: %q", ErrUnknownColumn, ev.Column)
		}
		if !IsSortable(ev.Column, e.Config.SortableColumns) {
			return prev, Change{}, nil
		}
		ch.Sorting = next.Sorting.Toggle(ev.Column)
		ch.SortChanged = true
		if !e.Config.ControlledSorting {
			next.Sorting = ch.Sorting
		}

	case Search:
		if ev.Query == next.Search {
			return prev, Change{}, nil
		}
		next.Search = ev.Query
		ch.SearchChanged = true
		filtered = e.Filter(data, next.Search)
		pageCount = PageCount(e.rowCount(len(filtered)), e.PageSize(next))

	case ToggleRow:
		if !e.Config.EnableSelection || ev.ID == "" {
			return prev, Change{}, nil
		}
		next = next.withSelected(ev.ID, !next.IsSelected(ev.ID))
		ch.SelectionChanged = true

	case ToggleAllRows:
		if !e.Config.EnableSelection {
			return prev, Change{}, nil
		}
		all := len(filtered) > 0
		for _, r := range filtered {
			if !next.IsSelected(r.ID) {
				all = false
				break
			}
		}
		for _, r := range filtered {
			next = next.withSelected(r.ID, !all)
		}
		ch.SelectionChanged = true

	case ToggleExpand:
		if next.Expanded == ev.ID {
			next.Expanded = ""
		} else {
			next.Expanded = ev.ID
		}
		ch.ExpandedChanged = true

	case Hover:
		if next.IsHovered(ev.Index) {
			return prev, Change{}, nil
		}
		i := ev.Index
		next.Hovered = &i
		ch.HoverChanged = true

	case Leave:
		if next.Hovered == nil {
			return prev, Change{}, nil
		}
		next.Hovered = nil
		ch.HoverChanged = true

	case GoToPage:
		next.PageIndex = ev.Index

	case NextPage:
		next.PageIndex++

	case PrevPage:
		next.PageIndex--

	case SetPageSize:
		if ev.Size <= 0 {
			return prev, Change{}, ErrInvalidPageSize
		}
		top := ClampPage(next.PageIndex, pageCount) * e.PageSize(next)
		next.PageSize = ev.Size
		next.PageIndex = top / ev.Size
		pageCount = PageCount(e.rowCount(len(filtered)), ev.Size)

	default:
		return prev, Change{}, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}

	next.PageIndex = ClampPage(next.PageIndex, pageCount)
	if next.PageIndex != prev.PageIndex || (prev.PageSize != 0 && next.PageSize != prev.PageSize) {
		ch.PageChanged = true
	}
	if ch.Sorting == nil {
		ch.Sorting = next.Sorting
	}
	return next, ch, nil
}
