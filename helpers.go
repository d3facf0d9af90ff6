package hxtable

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context. Use this for pages that embed a table:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxtable.Render(w, r, page(users.View(table.State{})))
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// BuildTriggerHeader builds a properly formatted HX-Trigger header value.
//
// A single event without data is sent as a bare name:
//
//	{"hxtable:page": true} -> hxtable:page
//
// Anything else is sent as JSON, data becoming the event's detail:
//
//	{"hxtable:page": {"page": 2}} -> {"hxtable:page":{"page":2}}
func BuildTriggerHeader(events map[string]any) string {
	if len(events) == 0 {
		return ""
	}
	if len(events) == 1 {
		for name, data := range events {
			if b, ok := data.(bool); ok && b {
				return name
			}
		}
	}
	data, _ := json.Marshal(events)
	return string(data)
}
