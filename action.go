package hxtable

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// SwapMode defines HTMX swap strategies for how response HTML replaces the target.
//
// See https://htmx.org/attributes/hx-swap/ for visual examples.
type SwapMode string

// SwapOuter replaces the entire element including its tag (outerHTML).
// Table bodies are always swapped this way.
const SwapOuter SwapMode = "outerHTML"

// Action is a fluent builder for the HTMX attributes of one table request.
//
//	t.action("sort").Vals(map[string]any{"col": "age"}).Attrs()
//
// Every table action targets the table body and includes the hidden state
// input, so the builder is mostly used through DataTable's helpers. It is
// exported for custom renderers that want to wire their own elements.
type Action struct {
	url     string
	method  string
	target  string
	swap    SwapMode
	include string
	trigger string
	vals    map[string]any
	valsJS  string
	extra   templ.Attributes
}

// NewAction creates an action for url using the given HTTP method.
func NewAction(url, method string) *Action {
	if method == "" {
		method = http.MethodGet
	}
	return &Action{url: url, method: method}
}

// Target sets hx-target.
func (a *Action) Target(selector string) *Action {
	a.target = selector
	return a
}

// Swap sets hx-swap.
func (a *Action) Swap(mode SwapMode) *Action {
	a.swap = mode
	return a
}

// Include sets hx-include, typically the table's hidden state input.
func (a *Action) Include(selector string) *Action {
	a.include = selector
	return a
}

// Trigger sets hx-trigger, e.g. "click" or "input changed delay:300ms".
func (a *Action) Trigger(trigger string) *Action {
	a.trigger = trigger
	return a
}

// Vals adds static request parameters. Repeated calls merge.
func (a *Action) Vals(vals map[string]any) *Action {
	if a.vals == nil {
		a.vals = make(map[string]any, len(vals))
	}
	for k, v := range vals {
		a.vals[k] = v
	}
	return a
}

// ValsJS sets parameters computed in the browser. expr is the body of a
// JavaScript object literal, e.g. `"ev": event.type`. It is combined with
// any static Vals.
func (a *Action) ValsJS(expr string) *Action {
	a.valsJS = expr
	return a
}

// Attr sets an arbitrary extra attribute.
func (a *Action) Attr(key string, value any) *Action {
	if a.extra == nil {
		a.extra = templ.Attributes{}
	}
	a.extra[key] = value
	return a
}

// URL returns the request URL.
func (a *Action) URL() string {
	return a.url
}

// Attrs renders the builder into HTMX attributes.
func (a *Action) Attrs() templ.Attributes {
	attrs := templ.Attributes{}
	switch a.method {
	case http.MethodGet:
		attrs["hx-get"] = a.url
	case http.MethodPut:
		attrs["hx-put"] = a.url
	case http.MethodPatch:
		attrs["hx-patch"] = a.url
	case http.MethodDelete:
		attrs["hx-delete"] = a.url
	default:
		attrs["hx-post"] = a.url
	}

	if a.target != "" {
		attrs["hx-target"] = a.target
	}
	if a.swap != "" {
		attrs["hx-swap"] = string(a.swap)
	}
	if a.include != "" {
		attrs["hx-include"] = a.include
	}
	if a.trigger != "" {
		attrs["hx-trigger"] = a.trigger
	}
	if vals := a.encodeVals(); vals != "" {
		attrs["hx-vals"] = vals
	}
	for k, v := range a.extra {
		attrs[k] = v
	}
	return attrs
}

func (a *Action) encodeVals() string {
	var static string
	if len(a.vals) > 0 {
		data, _ := json.Marshal(a.vals)
		static = string(data)
	}
	if a.valsJS == "" {
		return static
	}

	var sb strings.Builder
	sb.WriteString("js:{")
	if static != "" {
		// Splice the static members in front of the computed ones.
		sb.WriteString(strings.TrimSuffix(strings.TrimPrefix(static, "{"), "}"))
		sb.WriteString(",")
	}
	sb.WriteString(a.valsJS)
	sb.WriteString("}")
	return sb.String()
}
