package table

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/domonda/go-retable"
)

// Fields is the key/value view of a single row.
type Fields map[string]any

// FieldsFunc extracts the fields of a row.
type FieldsFunc[T any] func(row T) Fields

// RowIDFunc returns the stable identity of a row. index is the position of
// the row in the slice it came from.
type RowIDFunc[T any] func(row T, index int) string

// Row is a data row as seen by the engine.
type Row[T any] struct {
	// Index is the position of the row in the data it was taken from.
	Index    int
	ID       string
	Original T
	Fields   Fields
}

// StructFieldNaming maps struct fields to column keys for struct rows.
// Fields tagged col:"-" are skipped, untagged fields use their Go name.
var StructFieldNaming = &retable.StructFieldNaming{Tag: "col", Ignore: "-"}

// DefaultFields returns the fields of row. Maps with string keys are used
// as they are, structs (or pointers to structs) are reflected with
// StructFieldNaming. Any other value yields nil.
func DefaultFields[T any](row T) Fields {
	switch r := any(row).(type) {
	case Fields:
		return r
	case map[string]any:
		return r
	}

	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		fields := make(Fields, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			fields[iter.Key().String()] = iter.Value().Interface()
		}
		return fields
	case reflect.Struct:
		types := retable.StructFieldTypes(v.Type())
		values := retable.StructFieldReflectValues(v)
		fields := make(Fields, len(types))
		for i, f := range types {
			key := StructFieldNaming.StructFieldColumn(f)
			if key == StructFieldNaming.Ignore {
				continue
			}
			fields[key] = values[i].Interface()
		}
		return fields
	default:
		return nil
	}
}

// DefaultRowID uses the "id" field when present, otherwise the index.
func DefaultRowID(fields Fields, index int) string {
	if id, ok := fields["id"]; ok && id != nil {
		return fmt.Sprint(id)
	}
	return strconv.Itoa(index)
}
