package table

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// MatchQuery reports whether any field value, formatted with fmt.Sprint
// and lower-cased, contains the lower-cased query. When searchable is
// non-empty only those keys are considered. An empty query matches.
func MatchQuery(fields Fields, query string, searchable []string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for key, value := range fields {
		if len(searchable) > 0 && !slices.Contains(searchable, key) {
			continue
		}
		if strings.Contains(strings.ToLower(fmt.Sprint(value)), q) {
			return true
		}
	}
	return false
}

// Filter returns the rows of data matching query, in their original order.
//
// With an empty query every row is returned. When the engine has a Search
// function it replaces the default matching entirely and its result is
// used as the filtered set. Its results keep the identity of the data row
// they equal, so index-based row IDs stay stable across searches.
func (e *Engine[T]) Filter(data []T, query string) []Row[T] {
	all := e.rows(data)
	if query == "" {
		return all
	}
	if e.Search != nil {
		return e.resolve(all, e.Search(query))
	}
	filtered := make([]Row[T], 0, len(all))
	for _, r := range all {
		if MatchQuery(r.Fields, query, e.Config.SearchableColumns) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// rows wraps data into engine rows with fields and identity resolved.
func (e *Engine[T]) rows(data []T) []Row[T] {
	out := make([]Row[T], len(data))
	for i, d := range data {
		out[i] = e.row(d, i)
	}
	return out
}

func (e *Engine[T]) row(d T, index int) Row[T] {
	fields := e.fields(d)
	var id string
	if e.RowID != nil {
		id = e.RowID(d, index)
	} else {
		id = DefaultRowID(fields, index)
	}
	return Row[T]{Index: index, ID: id, Original: d, Fields: fields}
}

// resolve maps search results back to the data rows they came from. A
// result equal to no data row is indexed after the data so its
// index-based ID cannot collide with a data row.
func (e *Engine[T]) resolve(all []Row[T], results []T) []Row[T] {
	used := make([]bool, len(all))
	out := make([]Row[T], len(results))
	extra := len(all)
	for i, res := range results {
		found := false
		for j, r := range all {
			if !used[j] && reflect.DeepEqual(r.Original, res) {
				used[j] = true
				out[i] = r
				found = true
				break
			}
		}
		if !found {
			out[i] = e.row(res, extra)
			extra++
		}
	}
	return out
}

func (e *Engine[T]) fields(row T) Fields {
	if e.Fields != nil {
		return e.Fields(row)
	}
	return DefaultFields(row)
}
