package hxtable

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
)

// Registry manages table registration and routing.
type Registry struct {
	mu         sync.RWMutex
	mux        *http.ServeMux
	encoder    *Encoder
	components map[string]HXComponent

	// Logger receives every error passed to the default OnError.
	Logger *slog.Logger

	// OnError is called when a table request fails.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the registry's logger.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(reg *Registry) {
		reg.Logger = l
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) RegistryOption {
	return func(reg *Registry) {
		reg.OnError = fn
	}
}

// NewRegistry creates a new table registry with the given state key.
func NewRegistry(key []byte, opts ...RegistryOption) *Registry {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("hxtable: failed to create encoder: %v", err))
	}

	reg := &Registry{
		mux:        http.NewServeMux(),
		encoder:    enc,
		components: make(map[string]HXComponent),
		Logger:     slog.Default(),
	}
	reg.OnError = reg.defaultError
	reg.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		reg.fail(w, r, fmt.Errorf("%w: %s", ErrNotFound, r.URL.Path))
	})

	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

func (reg *Registry) defaultError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case IsNotFound(err):
		status = http.StatusNotFound
	case IsBadRequest(err):
		status = http.StatusBadRequest
	}

	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	reg.Logger.LogAttrs(r.Context(), level, "table request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	)

	http.Error(w, http.StatusText(status), status)
}

// Encoder returns the registry's encoder.
func (reg *Registry) Encoder() *Encoder {
	return reg.encoder
}

// Add registers tables with the registry.
// Panics on a prefix collision.
func (reg *Registry) Add(components ...HXComponent) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, comp := range components {
		prefix := comp.HXPrefix()
		if _, exists := reg.components[prefix]; exists {
			panic(fmt.Sprintf("hxtable: prefix collision for %q", prefix))
		}
		if b, ok := comp.(binder); ok {
			b.bind(reg)
		}
		reg.components[prefix] = comp
		reg.mux.HandleFunc(prefix+"/", comp.HXServeHTTP)
	}
}

// Lookup returns the component mounted at prefix.
func (reg *Registry) Lookup(prefix string) (HXComponent, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	comp, ok := reg.components[prefix]
	return comp, ok
}

// Handler returns the HTTP handler for table routes.
// Mount this at "/_c/" in your application.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CSRF protection: mutating methods require HX-Request header
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			if !IsHTMX(r) {
				http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
				return
			}
		}

		reg.mux.ServeHTTP(w, r)
	})
}

func (reg *Registry) fail(w http.ResponseWriter, r *http.Request, err error) {
	if reg.OnError != nil {
		reg.OnError(w, r, err)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
