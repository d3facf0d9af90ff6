package table

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

// SortDirection is the sort state of a single column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

// String returns "none", "asc" or "dsc".
func (d SortDirection) String() string {
	switch d {
	case SortNone:
		return "none"
	case SortAsc:
		return "asc"
	case SortDesc:
		return "dsc"
	default:
		return fmt.Sprintf("SortDirection(%d)", int(d))
	}
}

// ColumnSort is one entry of the sort state.
type ColumnSort struct {
	ID   string `msgpack:"id" json:"id"`
	Desc bool   `msgpack:"d,omitempty" json:"desc"`
}

// Sorting is the ordered sort state. Only the first entry is produced by
// Toggle, but Sorting itself allows several.
type Sorting []ColumnSort

// Direction returns the direction column is currently sorted in.
func (s Sorting) Direction(column string) SortDirection {
	for _, cs := range s {
		if cs.ID == column {
			if cs.Desc {
				return SortDesc
			}
			return SortAsc
		}
	}
	return SortNone
}

// Toggle advances column through none -> asc -> dsc -> none and drops
// every other column from the result. s is not modified.
func (s Sorting) Toggle(column string) Sorting {
	switch s.Direction(column) {
	case SortNone:
		return Sorting{{ID: column}}
	case SortAsc:
		return Sorting{{ID: column, Desc: true}}
	default:
		return Sorting{}
	}
}

// Equal reports whether both sort states are identical.
func (s Sorting) Equal(o Sorting) bool {
	return slices.Equal(s, o)
}

// IsSortable reports whether column may be sorted given an allow-list.
// An empty allow-list makes every column sortable.
func IsSortable(column string, allow []string) bool {
	if column == "" || column == SelectColumn {
		return false
	}
	return len(allow) == 0 || slices.Contains(allow, column)
}

// SortRows stable-sorts rows in place by s.
func SortRows[T any](rows []Row[T], s Sorting) {
	if len(s) == 0 {
		return
	}
	slices.SortStableFunc(rows, func(a, b Row[T]) int {
		for _, cs := range s {
			av, bv := a.Fields[cs.ID], b.Fields[cs.ID]
			// nil goes last regardless of direction
			switch {
			case isNil(av) && isNil(bv):
				continue
			case isNil(av):
				return 1
			case isNil(bv):
				return -1
			}
			c := CompareValues(av, bv)
			if c == 0 {
				continue
			}
			if cs.Desc {
				return -c
			}
			return c
		}
		return 0
	})
}

// CompareValues orders two cell values. Numbers compare numerically,
// times chronologically, bools false before true, anything else by its
// case-insensitive fmt.Sprint form.
func CompareValues(a, b any) int {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return cmp.Compare(af, bf)
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ab == bb:
				return 0
			case !ab:
				return -1
			default:
				return 1
			}
		}
	}
	return strings.Compare(strings.ToLower(fmt.Sprint(a)), strings.ToLower(fmt.Sprint(b)))
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
