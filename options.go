package hxtable

import (
	"context"

	"github.com/a-h/templ"

	"github.com/pthm/hxtable/table"
)

// Options configures a DataTable. Only Source and Columns are required.
type Options[T any] struct {
	// ID is the DOM id of the table. Defaults to the table's name.
	ID string

	Source  Source[T]
	Columns []Column[T]

	// RowID and Fields override how rows are identified and read. See
	// table.DefaultRowID and table.DefaultFields.
	RowID  table.RowIDFunc[T]
	Fields table.FieldsFunc[T]

	// Sensitive encrypts the state instead of signing it.
	Sensitive bool

	EnableSearch bool
	// SearchableColumns restricts the default filter. Empty means every
	// field.
	SearchableColumns []string
	// OnSearch replaces the default filter for non-empty queries.
	OnSearch func(query string) []T

	// EnableSorting orders rows by the sort state. Headers toggle the sort
	// state either way.
	EnableSorting bool
	// SortableColumns is the sort allow-list. Empty means every column.
	SortableColumns []string
	// OnSortChange receives every proposed sort state. When set, the
	// table no longer keeps the sort state itself: Sorting supplies it.
	OnSortChange func(ctx context.Context, sorting table.Sorting) error
	// Sorting returns the caller-held sort state of a controlled table.
	Sorting func(ctx context.Context) table.Sorting

	EnableMultiSelect bool
	// OnSelectionChange receives the selected rows after every selection
	// change, in data order.
	OnSelectionChange func(ctx context.Context, rows []T) error

	ShowPagination bool
	// RowsPerPage defaults to table.DefaultPageSize.
	RowsPerPage int
	// OnPaginationChange switches the table to manual pagination: the
	// source returns one page at a time and this is called whenever the
	// page index changes.
	OnPaginationChange func(ctx context.Context, pageIndex, pageSize int) error

	// Expand renders the panel shown beneath an expanded row.
	Expand func(row T) templ.Component

	Overrides  Overrides
	Styles     RowStyles
	ClassNames RowClassNames
}

func (o Options[T]) rowsPerPage() int {
	if o.RowsPerPage > 0 {
		return o.RowsPerPage
	}
	return table.DefaultPageSize
}

func (o Options[T]) manual() bool {
	return o.OnPaginationChange != nil
}

func (o Options[T]) expandable() bool {
	return o.Expand != nil || o.ClassNames.Expanded != "" || len(o.Styles.Expanded) > 0
}

func (o Options[T]) tracksHover() bool {
	return o.ClassNames.tracksHover() || o.Styles.tracksHover()
}

func (o Options[T]) engine() *table.Engine[T] {
	keys := make([]string, len(o.Columns))
	for i, c := range o.Columns {
		keys[i] = c.Key
	}
	eng := table.NewEngine[T](table.Config{
		Columns:           keys,
		SearchableColumns: o.SearchableColumns,
		SortableColumns:   o.SortableColumns,
		EnableSorting:     o.EnableSorting,
		ControlledSorting: o.OnSortChange != nil,
		EnableSelection:   o.EnableMultiSelect,
		Paginate:          o.ShowPagination,
		PageSize:          o.rowsPerPage(),
		ManualPagination:  o.manual(),
	})
	eng.Fields = o.Fields
	eng.RowID = o.RowID
	eng.Search = o.OnSearch
	return eng
}
