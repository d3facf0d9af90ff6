package hxtable

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/pthm/hxtable/table"
)

// TestResult holds the result of rendering a table for testing.
//
// Provides convenience methods for asserting on HTML content, headers,
// status codes and triggered events.
type TestResult struct {
	HTML            string
	StatusCode      int
	Headers         http.Header
	TriggeredEvents []string
	// EventDetails holds the data sent with each triggered event.
	EventDetails map[string]any
}

// TestableComponent combines Hydrater and Renderer for testing.
type TestableComponent interface {
	Hydrater
	Renderer
}

// TestRender renders a table for st and returns testable output.
//
// Use this for pure rendering tests. It runs only Hydrate and Render,
// bypassing routing; the table must still be registered so its state can
// be encoded.
//
//	result, err := hxtable.TestRender(users, table.State{Search: "jane"})
//	if !result.HTMLContains("Jane Smith") {
//	    t.Fatal("missing row")
//	}
func TestRender(comp TestableComponent, st table.State) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), comp, st)
}

// TestRenderWithContext renders a table with a custom context.
func TestRenderWithContext(ctx context.Context, comp TestableComponent, st table.State) (*TestResult, error) {
	if err := comp.Hydrate(ctx, &st); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := comp.Render(ctx, st).Render(ctx, &buf); err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestAction simulates an HTMX request against a table.
//
// This tests the full HTTP lifecycle including state decoding, hydration,
// event handling and response rendering:
//
//	result, err := hxtable.TestAction(users, users.ActionURL("sort"), "POST", map[string]string{
//	    "p":   state,
//	    "col": "age",
//	})
//	if !result.HasEvent(hxtable.EventSort) {
//	    t.Fatal("expected sort event")
//	}
func TestAction(comp HXComponent, actionURL, method string, formData map[string]string) (*TestResult, error) {
	return NewTestRequest(method, actionURL).WithFormValues(formData).Execute(comp)
}

// TestGet simulates a GET request (render) against a table.
func TestGet(comp HXComponent, url string) (*TestResult, error) {
	return TestAction(comp, url, http.MethodGet, nil)
}

// TestPost simulates a POST request against a table.
func TestPost(comp HXComponent, url string, formData map[string]string) (*TestResult, error) {
	return TestAction(comp, url, http.MethodPost, formData)
}

// HTMLContains reports whether the rendered HTML contains substr.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll reports whether the rendered HTML contains every substring.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny reports whether the rendered HTML contains any substring.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// HasEvent reports whether event was triggered.
func (r *TestResult) HasEvent(event string) bool {
	return slices.Contains(r.TriggeredEvents, event)
}

// EventDetail returns the data sent with event, or nil.
func (r *TestResult) EventDetail(event string) map[string]any {
	detail, _ := r.EventDetails[event].(map[string]any)
	return detail
}

// IsOK reports a 200 response.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus reports whether the response has the given status code.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader reports whether a header has the given value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}

var stateInput = regexp.MustCompile(`<input[^>]*name="p"[^>]*value="([^"]*)"`)

// EncodedState returns the encoded state embedded in the rendered HTML,
// ready to be posted back as the "p" field.
func (r *TestResult) EncodedState() string {
	m := stateInput.FindStringSubmatch(r.HTML)
	if m == nil {
		return ""
	}
	return html.UnescapeString(m[1])
}

// parseTriggerHeader parses the HX-Trigger header value into sorted event
// names and their details. The header is either a list of names or JSON.
func parseTriggerHeader(trigger string) ([]string, map[string]any) {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil, nil
	}

	details := map[string]any{}
	if strings.HasPrefix(trigger, "{") {
		if err := json.Unmarshal([]byte(trigger), &details); err != nil {
			return nil, nil
		}
	} else {
		for _, p := range strings.Split(trigger, ",") {
			if p = strings.TrimSpace(p); p != "" {
				details[p] = true
			}
		}
	}

	events := make([]string, 0, len(details))
	for name := range details {
		events = append(events, name)
	}
	slices.Sort(events)
	return events, details
}

// TestRequestBuilder provides a fluent interface for building test requests.
//
//	result, err := hxtable.NewTestRequest("POST", users.ActionURL("page")).
//	    WithState(state).
//	    WithFormData("page", "2").
//	    Execute(users)
type TestRequestBuilder struct {
	method   string
	url      string
	formData url.Values
	headers  map[string]string
	ctx      context.Context
}

// NewTestRequest creates a new test request builder.
func NewTestRequest(method, url string) *TestRequestBuilder {
	return &TestRequestBuilder{
		method:   method,
		url:      url,
		formData: make(map[string][]string),
		headers:  make(map[string]string),
		ctx:      context.Background(),
	}
}

// WithFormData adds form data to the request.
func (b *TestRequestBuilder) WithFormData(key, value string) *TestRequestBuilder {
	b.formData.Set(key, value)
	return b
}

// WithFormValues adds multiple form values to the request.
func (b *TestRequestBuilder) WithFormValues(data map[string]string) *TestRequestBuilder {
	for k, v := range data {
		b.formData.Set(k, v)
	}
	return b
}

// WithState sets the encoded table state.
func (b *TestRequestBuilder) WithState(encoded string) *TestRequestBuilder {
	return b.WithFormData("p", encoded)
}

// WithHeader adds a header to the request.
func (b *TestRequestBuilder) WithHeader(key, value string) *TestRequestBuilder {
	b.headers[key] = value
	return b
}

// WithContext sets the context for the request.
func (b *TestRequestBuilder) WithContext(ctx context.Context) *TestRequestBuilder {
	b.ctx = ctx
	return b
}

// Execute executes the request against a component.
func (b *TestRequestBuilder) Execute(comp HXComponent) (*TestResult, error) {
	target := b.url
	var body *strings.Reader
	if b.method == http.MethodGet || b.method == http.MethodHead {
		if len(b.formData) > 0 {
			sep := "?"
			if strings.Contains(target, "?") {
				sep = "&"
			}
			target += sep + b.formData.Encode()
		}
		body = strings.NewReader("")
	} else {
		body = strings.NewReader(b.formData.Encode())
	}

	req := httptest.NewRequest(b.method, target, body)
	req = req.WithContext(b.ctx)
	req.Header.Set("HX-Request", "true")
	if b.method != http.MethodGet && b.method != http.MethodHead {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	comp.HXServeHTTP(rec, req)

	result := &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
	if trigger := rec.Header().Get("HX-Trigger"); trigger != "" {
		result.TriggeredEvents, result.EventDetails = parseTriggerHeader(trigger)
	}
	return result, nil
}
