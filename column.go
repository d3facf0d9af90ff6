package hxtable

import (
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/a-h/templ"
	"github.com/domonda/go-retable"

	"github.com/pthm/hxtable/table"
)

// Column describes one data column.
type Column[T any] struct {
	// Key is the field the column displays and sorts by.
	Key string
	// Header is the static header text. Defaults to Key.
	Header string
	// HeaderFunc renders custom header content for the column's current
	// sort direction. It replaces Header and the default sort arrows.
	HeaderFunc func(dir table.SortDirection) templ.Component
	// Cell renders a cell. Defaults to the value as escaped text.
	Cell func(row T, value any) templ.Component
}

// StructColumns derives columns from the exported fields of struct type T
// using table.StructFieldNaming for keys. Headers are the field names with
// spaces inserted, e.g. LastLogin becomes "Last Login".
func StructColumns[T any]() []Column[T] {
	typ := reflect.TypeFor[T]()
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}

	var cols []Column[T]
	for _, f := range retable.StructFieldTypes(typ) {
		key := table.StructFieldNaming.StructFieldColumn(f)
		if key == table.StructFieldNaming.Ignore {
			continue
		}
		cols = append(cols, Column[T]{Key: key, Header: retable.SpacePascalCase(f.Name)})
	}
	return cols
}

func (c Column[T]) header(dir table.SortDirection) templ.Component {
	if c.HeaderFunc != nil {
		return c.HeaderFunc(dir)
	}
	if c.Header != "" {
		return Text(c.Header)
	}
	return Text(c.Key)
}

func (c Column[T]) cell(row T, value any) templ.Component {
	if c.Cell != nil {
		return c.Cell(row, value)
	}
	if value == nil {
		return templ.NopComponent
	}
	return Text(fmt.Sprint(value))
}

// Text renders s as escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
