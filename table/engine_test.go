package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func users(n int) []map[string]any {
	out := make([]map[string]any, n)
	for i := range out {
		out[i] = map[string]any{"id": i + 1, "name": fmt.Sprintf("user %d", i+1), "age": 20 + (i*7)%13}
	}
	return out
}

func pageIDs[T any](rows []PageRow[T]) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestModelPagination(t *testing.T) {
	eng := NewEngine[map[string]any](Config{Paginate: true, PageSize: 6})
	m := eng.Model(users(8), State{})

	assert.Equal(t, 2, m.PageCount)
	assert.Equal(t, 0, m.PageIndex)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, pageIDs(m.Page))
	assert.False(t, m.CanPrev)
	assert.True(t, m.CanNext)

	m = eng.Model(users(8), State{PageIndex: 1})
	assert.Equal(t, []string{"7", "8"}, pageIDs(m.Page))
	assert.True(t, m.CanPrev)
	assert.False(t, m.CanNext)
}

func TestModelClampsPageIndex(t *testing.T) {
	eng := NewEngine[map[string]any](Config{Paginate: true, PageSize: 6})
	m := eng.Model(users(8), State{PageIndex: 9})
	assert.Equal(t, 1, m.PageIndex)
	assert.Equal(t, []string{"7", "8"}, pageIDs(m.Page))
}

func TestModelWithoutPaginationShowsAllRows(t *testing.T) {
	eng := NewEngine[map[string]any](Config{PageSize: 6})
	m := eng.Model(users(8), State{})
	assert.Len(t, m.Page, 8)
	assert.Equal(t, 2, m.PageCount)
}

func TestModelManualPaginationDoesNotSlice(t *testing.T) {
	eng := NewEngine[map[string]any](Config{Paginate: true, ManualPagination: true, PageSize: 5, RowCount: 42})
	m := eng.Model(users(5), State{PageIndex: 3})
	assert.Equal(t, 9, m.PageCount)
	assert.Equal(t, 3, m.PageIndex)
	assert.Len(t, m.Page, 5)
}

func TestModelSortsOnlyWhenEnabled(t *testing.T) {
	data := []map[string]any{{"id": 1, "age": 30}, {"id": 2, "age": 10}, {"id": 3, "age": 20}}
	st := State{Sorting: Sorting{{ID: "age"}}}

	m := NewEngine[map[string]any](Config{}).Model(data, st)
	assert.Equal(t, []string{"1", "2", "3"}, pageIDs(m.Page))

	m = NewEngine[map[string]any](Config{EnableSorting: true}).Model(data, st)
	assert.Equal(t, []string{"2", "3", "1"}, pageIDs(m.Page))
}

func TestModelRowFlags(t *testing.T) {
	hovered := 1
	eng := NewEngine[map[string]any](Config{})
	m := eng.Model(users(3), State{Selected: []string{"2"}, Expanded: "3", Hovered: &hovered})

	require.Len(t, m.Page, 3)
	assert.False(t, m.Page[0].Selected)
	assert.True(t, m.Page[1].Selected)
	assert.True(t, m.Page[1].Hovered)
	assert.True(t, m.Page[2].Expanded)
	assert.True(t, m.SomeSelected)
	assert.False(t, m.AllSelected)
	assert.Equal(t, []string{"2"}, ids(m.Selected))
}

func TestDispatchToggleSort(t *testing.T) {
	eng := NewEngine[map[string]any](Config{SortableColumns: []string{"age"}})
	data := users(3)

	st := State{}
	want := []SortDirection{SortAsc, SortDesc, SortNone}
	for _, dir := range want {
		next, ch, err := eng.Dispatch(data, st, ToggleSort{Column: "age"})
		require.NoError(t, err)
		assert.True(t, ch.SortChanged)
		assert.Equal(t, dir, next.Sorting.Direction("age"))
		st = next
	}

	next, ch, err := eng.Dispatch(data, st, ToggleSort{Column: "name"})
	require.NoError(t, err)
	assert.False(t, ch.Any())
	assert.Equal(t, st, next)
}

func TestDispatchToggleSortUnknownColumn(t *testing.T) {
	eng := NewEngine[map[string]any](Config{Columns: []string{"id", "age"}})
	_, _, err := eng.Dispatch(users(1), State{}, ToggleSort{Column: "nope"})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestDispatchControlledSorting(t *testing.T) {
	eng := NewEngine[map[string]any](Config{ControlledSorting: true})
	next, ch, err := eng.Dispatch(users(3), State{}, ToggleSort{Column: "age"})
	require.NoError(t, err)
	assert.True(t, ch.SortChanged)
	assert.Equal(t, Sorting{{ID: "age"}}, ch.Sorting)
	assert.Empty(t, next.Sorting, "controlled sorting must not be persisted")
}

func TestDispatchSelection(t *testing.T) {
	eng := NewEngine[map[string]any](Config{EnableSelection: true})
	data := users(4)

	st, ch, err := eng.Dispatch(data, State{}, ToggleRow{ID: "3"})
	require.NoError(t, err)
	assert.True(t, ch.SelectionChanged)
	assert.Equal(t, []string{"3"}, st.Selected)

	st, _, err = eng.Dispatch(data, st, ToggleAllRows{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, st.Selected)
	assert.True(t, eng.Model(data, st).AllSelected)

	st, _, err = eng.Dispatch(data, st, ToggleAllRows{})
	require.NoError(t, err)
	assert.Empty(t, st.Selected)
	assert.Empty(t, eng.Model(data, st).Selected)
}

func TestDispatchSelectAllUsesFilteredRows(t *testing.T) {
	eng := NewEngine[map[string]any](Config{EnableSelection: true})
	data := users(12)

	st, _, err := eng.Dispatch(data, State{Search: "user 1"}, ToggleAllRows{})
	require.NoError(t, err)
	// user 1, user 10, user 11, user 12
	assert.Equal(t, []string{"1", "10", "11", "12"}, st.Selected)
}

func TestDispatchSelectionDisabled(t *testing.T) {
	eng := NewEngine[map[string]any](Config{})
	st, ch, err := eng.Dispatch(users(2), State{}, ToggleRow{ID: "1"})
	require.NoError(t, err)
	assert.False(t, ch.SelectionChanged)
	assert.Empty(t, st.Selected)
}

func TestDispatchExpand(t *testing.T) {
	eng := NewEngine[map[string]any](Config{})
	data := users(3)

	st, _, _ := eng.Dispatch(data, State{}, ToggleExpand{ID: "1"})
	assert.Equal(t, "1", st.Expanded)

	st, _, _ = eng.Dispatch(data, st, ToggleExpand{ID: "2"})
	assert.Equal(t, "2", st.Expanded)
	assert.False(t, st.IsExpanded("1"))

	st, ch, _ := eng.Dispatch(data, st, ToggleExpand{ID: "2"})
	assert.True(t, ch.ExpandedChanged)
	assert.Empty(t, st.Expanded)
}

func TestDispatchHover(t *testing.T) {
	eng := NewEngine[map[string]any](Config{})
	data := users(3)

	st, ch, _ := eng.Dispatch(data, State{}, Hover{Index: 2})
	assert.True(t, ch.HoverChanged)
	assert.True(t, st.IsHovered(2))

	st, ch, _ = eng.Dispatch(data, st, Leave{})
	assert.True(t, ch.HoverChanged)
	assert.Nil(t, st.Hovered)

	_, ch, _ = eng.Dispatch(data, st, Leave{})
	assert.False(t, ch.Any())
}

func TestDispatchPaging(t *testing.T) {
	eng := NewEngine[map[string]any](Config{Paginate: true, PageSize: 6})
	data := users(8)

	st, ch, err := eng.Dispatch(data, State{}, NextPage{})
	require.NoError(t, err)
	assert.True(t, ch.PageChanged)
	assert.Equal(t, 1, st.PageIndex)

	st, ch, _ = eng.Dispatch(data, st, NextPage{})
	assert.False(t, ch.PageChanged, "next on the last page stays put")
	assert.Equal(t, 1, st.PageIndex)

	st, _, _ = eng.Dispatch(data, st, GoToPage{Index: 7})
	assert.Equal(t, 1, st.PageIndex)

	st, _, _ = eng.Dispatch(data, st, PrevPage{})
	assert.Equal(t, 0, st.PageIndex)

	st, _, _ = eng.Dispatch(data, st, PrevPage{})
	assert.Equal(t, 0, st.PageIndex)
}

func TestDispatchSearchClampsPage(t *testing.T) {
	eng := NewEngine[map[string]any](Config{Paginate: true, PageSize: 2})
	data := users(8)

	st := State{PageIndex: 3}
	st, ch, err := eng.Dispatch(data, st, Search{Query: "user 1"})
	require.NoError(t, err)
	assert.True(t, ch.SearchChanged)
	assert.True(t, ch.PageChanged)
	assert.Equal(t, 0, st.PageIndex)
}

func TestDispatchSetPageSize(t *testing.T) {
	eng := NewEngine[map[string]any](Config{Paginate: true, PageSize: 2})
	data := users(8)

	st, ch, err := eng.Dispatch(data, State{PageIndex: 3, PageSize: 2}, SetPageSize{Size: 4})
	require.NoError(t, err)
	assert.True(t, ch.PageChanged)
	assert.Equal(t, 4, st.PageSize)
	// first visible row was row 7 (index 6), which lives on page 1 with size 4
	assert.Equal(t, 1, st.PageIndex)

	_, _, err = eng.Dispatch(data, st, SetPageSize{Size: 0})
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestDispatchDoesNotMutateState(t *testing.T) {
	eng := NewEngine[map[string]any](Config{EnableSelection: true})
	st := State{Selected: []string{"1", "3"}}
	_, _, err := eng.Dispatch(users(4), st, ToggleRow{ID: "2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, st.Selected)
}
