// Package hxtable provides a server-rendered data table for Go web
// applications built with templ and HTMX.
//
// A DataTable renders a searchable, sortable, paginated table with row
// selection, row expansion and configurable row styling. Every part of the
// default markup can be replaced through Overrides.
//
// # Core Concepts
//
// A table is created from a Source of rows and a list of columns:
//
//	users := hxtable.New("users", hxtable.Options[User]{
//	    Source:            hxtable.StaticRows(all),
//	    Columns:           hxtable.StructColumns[User](),
//	    EnableSearch:      true,
//	    EnableSorting:     true,
//	    EnableMultiSelect: true,
//	    ShowPagination:    true,
//	    RowsPerPage:       6,
//	})
//
// Deriving the visible rows from data and state is the job of the
// headless engine in package table. This package renders the engine's
// model and turns browser interactions into engine events.
//
// # State and Security
//
// The table keeps no per-user state on the server. The search query, sort
// state, selection, expanded row, hovered row and page index travel with
// every HTMX request as a hidden field, encoded in one of two modes:
//   - Signed (default): HMAC-authenticated msgpack, readable but tamper-proof
//   - Encrypted: AES-GCM, opaque to clients (set Options.Sensitive)
//
// CSRF protection is automatic - mutating methods require the
// HX-Request: true header that HTMX sends.
//
// # Events
//
// Callbacks in Options run on the server as the state changes. The page
// is told about the same changes through HX-Trigger events
// (EventSort, EventSearch, EventSelection, EventPage) so other elements
// can react without a round trip through Go code.
//
// # Registration and Routing
//
// Tables are registered explicitly with a Registry:
//
//	reg := hxtable.NewRegistry(key)
//	reg.Add(users)
//	http.Handle("/_c/", reg.Handler())
//
// Each table receives a unique URL prefix based on its name and source
// location. The registry prevents prefix collisions at registration time
// and maps request errors to responses through OnError.
package hxtable
