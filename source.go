package hxtable

import (
	"context"

	"github.com/pthm/hxtable/table"
)

// Query describes the rows a table is about to display.
type Query struct {
	Search  string
	Sorting table.Sorting
	// PageIndex and PageSize describe the visible window. Sources of
	// manually paginated tables return only that window.
	PageIndex int
	PageSize  int
	// Manual is set when the table paginates through its source.
	Manual bool
}

// Rows is a batch of rows from a Source.
type Rows[T any] struct {
	Items []T
	// Total is the number of rows across all pages. Zero means
	// len(Items).
	Total int
}

// Source loads the rows of a table for each request.
type Source[T any] interface {
	Rows(ctx context.Context, q Query) (Rows[T], error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func(ctx context.Context, q Query) (Rows[T], error)

// Rows calls f.
func (f SourceFunc[T]) Rows(ctx context.Context, q Query) (Rows[T], error) {
	return f(ctx, q)
}

// StaticRows serves a fixed slice. Filtering, sorting and paging are left
// to the table.
func StaticRows[T any](items []T) Source[T] {
	return SourceFunc[T](func(context.Context, Query) (Rows[T], error) {
		return Rows[T]{Items: items, Total: len(items)}, nil
	})
}
