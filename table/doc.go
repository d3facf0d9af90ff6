// Package table is the headless engine behind hxtable.
//
// It derives everything a data table displays from three inputs: the raw
// rows, a Config describing which features are enabled, and a State
// holding the user's current choices (sort, search, selection, expansion,
// hover, page). Nothing here renders HTML or touches HTTP.
//
// The engine works in two steps:
//
//	rows := eng.Filter(data, st.Search)   // filter stage
//	m := eng.Model(data, st)              // filter + sort + paginate
//
// User interactions are expressed as Events and applied with Dispatch,
// which returns the next State plus a Change describing what moved so the
// caller can fire callbacks:
//
//	next, change, err := eng.Dispatch(data, st, table.ToggleSort{Column: "age"})
//	if err != nil {
//		return err // unknown column, bad page size
//	}
//
// State is a plain value. Dispatch never mutates its input.
package table
