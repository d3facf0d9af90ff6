package hxtable

// Result[P] is returned from action handlers to control rendering and side effects.
//
// Result is a fluent builder: handlers describe the new props, the events
// to emit and any extra headers without touching the ResponseWriter. The
// table processes the Result after the handler returns.
//
//	// Success - render with the updated state
//	return OK(st)
//
//	// Success, announcing the change to the page
//	return OK(st).Trigger(EventSort, map[string]any{"sorting": st.Sorting})
//
//	// Failure - handed to Registry.OnError
//	return Err(st, err)
type Result[P any] struct {
	props   P
	err     error
	events  []event
	headers map[string]string
	status  int
}

type event struct {
	name string
	data map[string]any
}

// OK creates a success result that renders with the given props.
func OK[P any](props P) Result[P] {
	return Result[P]{props: props}
}

// Err creates an error result that passes the error to the OnError handler.
func Err[P any](props P, err error) Result[P] {
	return Result[P]{props: props, err: err}
}

// Trigger emits an event via the HX-Trigger header. Calls accumulate, so
// one response can announce several changes. With data, listeners receive
// it as evt.detail.
func (r Result[P]) Trigger(name string, data ...map[string]any) Result[P] {
	ev := event{name: name}
	if len(data) > 0 {
		ev.data = data[0]
	}
	r.events = append(append([]event(nil), r.events...), ev)
	return r
}

// Header sets a custom response header.
func (r Result[P]) Header(key, value string) Result[P] {
	h := make(map[string]string, len(r.headers)+1)
	for k, v := range r.headers {
		h[k] = v
	}
	h[key] = value
	r.headers = h
	return r
}

// Status sets the HTTP status code.
func (r Result[P]) Status(code int) Result[P] {
	r.status = code
	return r
}

// GetProps returns the props from the result.
func (r Result[P]) GetProps() P {
	return r.props
}

// GetErr returns the error from the result.
func (r Result[P]) GetErr() error {
	return r.err
}

// GetEvents returns the names of the triggered events in order.
func (r Result[P]) GetEvents() []string {
	names := make([]string, len(r.events))
	for i, ev := range r.events {
		names[i] = ev.name
	}
	return names
}

// GetHeaders returns the response headers.
func (r Result[P]) GetHeaders() map[string]string {
	return r.headers
}

// GetStatus returns the HTTP status code (0 means not set, use default 200).
func (r Result[P]) GetStatus() int {
	return r.status
}

// triggerHeader builds the HX-Trigger value for the result's events.
func (r Result[P]) triggerHeader() string {
	if len(r.events) == 0 {
		return ""
	}
	events := make(map[string]any, len(r.events))
	for _, ev := range r.events {
		if ev.data != nil {
			events[ev.name] = ev.data
		} else {
			events[ev.name] = true
		}
	}
	return BuildTriggerHeader(events)
}
