package hxtable

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	"github.com/pthm/hxtable/table"
)

// Hydrater completes decoded state before any handler runs. Tables use it
// to re-apply configuration that must win over what the client sent, such
// as the page size.
type Hydrater interface {
	Hydrate(ctx context.Context, st *table.State) error
}

// Renderer produces the full table markup for a state.
type Renderer interface {
	Render(ctx context.Context, st table.State) templ.Component
}

// HXComponent is mounted by the Registry.
//
// HXPrefix returns the unique URL prefix for the instance.
// HXServeHTTP handles all HTTP requests under that prefix.
type HXComponent interface {
	HXPrefix() string
	HXServeHTTP(w http.ResponseWriter, r *http.Request)
}

// binder is implemented by components that need the registry's encoder and
// error handler.
type binder interface {
	bind(reg *Registry)
}
