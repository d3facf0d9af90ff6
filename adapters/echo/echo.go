// Package hxtableecho provides Echo framework integration for hxtable.
//
// Mount tables onto an Echo instance or group:
//
//	e := echo.New()
//	reg := hxtableecho.Mount(e)
//	reg.Add(usersTable)
//
// Or mount on a group with middleware:
//
//	g := e.Group("", authMiddleware)
//	reg := hxtableecho.MountGroup(g)
//	reg.Add(usersTable)
package hxtableecho

import (
	"crypto/rand"
	"fmt"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/pthm/hxtable"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key    []byte
	path   string
	logger *slog.Logger
}

// WithKey sets the state key for the registry.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated, which invalidates every
// rendered table on restart (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithPath sets the route the table handler is mounted at.
// Defaults to "/_c/", where tables place their prefixes.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithLogger sets the logger the registry reports failed requests to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Mount creates a registry and mounts the table handler on an Echo instance.
//
//	e := echo.New()
//	reg := hxtableecho.Mount(e, hxtableecho.WithKey(key))
//	reg.Add(usersTable)
func Mount(e *echo.Echo, opts ...Option) *hxtable.Registry {
	reg, path := newRegistry(opts)
	e.Any(path+"*", echo.WrapHandler(reg.Handler()))
	return reg
}

// MountGroup creates a registry and mounts the table handler on an Echo group.
// This allows tables to share middleware with the group (auth, logging, etc.).
func MountGroup(g *echo.Group, opts ...Option) *hxtable.Registry {
	reg, path := newRegistry(opts)
	g.Any(path+"*", echo.WrapHandler(reg.Handler()))
	return reg
}

func newRegistry(opts []Option) (*hxtable.Registry, string) {
	o := &options{path: "/_c/"}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("hxtableecho: failed to generate random key: %v", err))
		}
	}

	var regOpts []hxtable.RegistryOption
	if o.logger != nil {
		regOpts = append(regOpts, hxtable.WithLogger(o.logger))
	}
	return hxtable.NewRegistry(key, regOpts...), o.path
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return hxtableecho.Render(c, page(usersTable.View(table.State{})))
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response())
}
