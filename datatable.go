package hxtable

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxtable/table"
)

// Events announced through HX-Trigger after a table changes.
const (
	EventSort      = "hxtable:sort"
	EventSearch    = "hxtable:search"
	EventSelection = "hxtable:selection"
	EventPage      = "hxtable:page"
)

// DataTable is a server-rendered table with search, sort, pagination,
// row selection and row expansion.
//
// A DataTable keeps no per-user state. Everything the user changed lives
// in a table.State that is signed (or encrypted) into the page and posted
// back with every interaction. Each request decodes the state, applies
// one event, runs the callbacks and re-renders the table body.
//
//	users := hxtable.New("users", hxtable.Options[User]{
//	    Source:         hxtable.StaticRows(all),
//	    Columns:        hxtable.StructColumns[User](),
//	    EnableSearch:   true,
//	    ShowPagination: true,
//	})
//	reg.Add(users)
//
// Tables are safe for concurrent use once registered.
type DataTable[T any] struct {
	name   string
	prefix string
	opts   Options[T]
	engine *table.Engine[T]
	reg    *Registry
}

var (
	_ HXComponent = (*DataTable[any])(nil)
	_ Hydrater    = (*DataTable[any])(nil)
	_ Renderer    = (*DataTable[any])(nil)
)

// New creates a table with the given name.
//
// The URL prefix is derived from the name and the source location of the
// call, so two tables with the same name still get distinct routes.
func New[T any](name string, opts Options[T]) *DataTable[T] {
	if opts.ID == "" {
		opts.ID = name
	}
	return &DataTable[T]{
		name:   name,
		prefix: "/_c/" + name + "-" + componentHash(name, 1),
		opts:   opts,
		engine: opts.engine(),
	}
}

// Name returns the table's name.
func (t *DataTable[T]) Name() string {
	return t.name
}

// Prefix returns the table's URL prefix.
func (t *DataTable[T]) Prefix() string {
	return t.prefix
}

// HXPrefix implements HXComponent.
func (t *DataTable[T]) HXPrefix() string {
	return t.prefix
}

// ID returns the DOM id of the table's outer element.
func (t *DataTable[T]) ID() string {
	return t.opts.ID
}

// IsSensitive returns whether the state is encrypted.
func (t *DataTable[T]) IsSensitive() bool {
	return t.opts.Sensitive
}

func (t *DataTable[T]) bind(reg *Registry) {
	t.reg = reg
}

func (t *DataTable[T]) bodyID() string  { return t.opts.ID + "-body" }
func (t *DataTable[T]) stateID() string { return t.opts.ID + "-state" }

// Hydrate re-applies configuration the client must not override: the page
// size and, for controlled tables, the sort state.
func (t *DataTable[T]) Hydrate(ctx context.Context, st *table.State) error {
	*st = st.Normalize()
	st.PageSize = t.opts.rowsPerPage()
	if t.opts.Sorting != nil {
		st.Sorting = t.opts.Sorting(ctx)
	}
	return nil
}

// EncodeState seals st for the client.
func (t *DataTable[T]) EncodeState(st table.State) (string, error) {
	if t.reg == nil {
		return "", ErrNotMounted
	}
	return t.reg.encoder.Encode(st, t.opts.Sensitive)
}

// DecodeState opens a state sealed by EncodeState. The empty string is the
// zero state.
func (t *DataTable[T]) DecodeState(encoded string) (table.State, error) {
	var st table.State
	if encoded == "" {
		return st, nil
	}
	if t.reg == nil {
		return st, ErrNotMounted
	}
	if err := t.reg.encoder.Decode(encoded, t.opts.Sensitive, &st); err != nil {
		return table.State{}, wrapEncodingError(err)
	}
	return st, nil
}

// ActionURL returns the URL of a table action such as "sort" or "next".
func (t *DataTable[T]) ActionURL(action string) string {
	return t.prefix + "/" + action
}

// URL returns the render URL for st.
func (t *DataTable[T]) URL(st table.State) (string, error) {
	encoded, err := t.EncodeState(st)
	if err != nil {
		return "", err
	}
	return t.prefix + "/?p=" + url.QueryEscape(encoded), nil
}

// View hydrates st and renders the whole table. Use it to embed the table
// in a page.
func (t *DataTable[T]) View(st table.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := t.Hydrate(ctx, &st); err != nil {
			return err
		}
		return t.Render(ctx, st).Render(ctx, w)
	})
}

// Render loads the rows for st and renders the whole table.
func (t *DataTable[T]) Render(ctx context.Context, st table.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		rows, err := t.load(ctx, st)
		if err != nil {
			return err
		}
		return t.writeTable(ctx, w, rows, st)
	})
}

// Lazy renders placeholder and loads the table once it scrolls into view.
func (t *DataTable[T]) Lazy(st table.State, placeholder templ.Component) templ.Component {
	return t.deferred(st, placeholder, "intersect once")
}

// Defer renders placeholder and loads the table after the page has loaded.
func (t *DataTable[T]) Defer(st table.State, placeholder templ.Component) templ.Component {
	return t.deferred(st, placeholder, "load")
}

func (t *DataTable[T]) deferred(st table.State, placeholder templ.Component, trigger string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		u, err := t.URL(st)
		if err != nil {
			return err
		}
		return lazyComponent(u, placeholder, trigger).Render(ctx, w)
	})
}

// HXServeHTTP implements HXComponent.
//
// GET on the prefix renders the whole table. POST on an action applies
// the action's event and renders the table body.
func (t *DataTable[T]) HXServeHTTP(w http.ResponseWriter, r *http.Request) {
	if t.reg == nil {
		http.Error(w, ErrNotMounted.Error(), http.StatusInternalServerError)
		return
	}
	ctx := r.Context()
	action := strings.Trim(strings.TrimPrefix(r.URL.Path, t.prefix), "/")

	if err := r.ParseForm(); err != nil {
		t.reg.fail(w, r, fmt.Errorf("%w: %v", ErrInvalidState, err))
		return
	}
	st, err := t.DecodeState(r.Form.Get("p"))
	if err != nil {
		t.reg.fail(w, r, err)
		return
	}
	if err := t.Hydrate(ctx, &st); err != nil {
		t.reg.fail(w, r, err)
		return
	}

	if action == "" {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			t.reg.fail(w, r, fmt.Errorf("%w: %s /", ErrUnknownAction, r.Method))
			return
		}
		rows, err := t.load(ctx, st)
		if err != nil {
			t.reg.fail(w, r, err)
			return
		}
		t.respond(w, r, OK(st), rows, true)
		return
	}

	if r.Method != http.MethodPost {
		t.reg.fail(w, r, fmt.Errorf("%w: %s %s", ErrUnknownAction, r.Method, action))
		return
	}
	ev, err := parseEvent(action, r.Form)
	if err != nil {
		t.reg.fail(w, r, err)
		return
	}
	res, rows := t.apply(ctx, st, ev)
	t.respond(w, r, res, rows, false)
}

func (t *DataTable[T]) respond(w http.ResponseWriter, r *http.Request, res Result[table.State], rows Rows[T], full bool) {
	if err := res.GetErr(); err != nil {
		t.reg.fail(w, r, err)
		return
	}

	status := res.GetStatus()
	if status == 0 {
		status = http.StatusOK
	}
	var buf bytes.Buffer
	if status != http.StatusNoContent {
		var err error
		if full {
			err = t.writeTable(r.Context(), &buf, rows, res.GetProps())
		} else {
			err = t.writeBody(r.Context(), &buf, rows, res.GetProps())
		}
		if err != nil {
			t.reg.fail(w, r, err)
			return
		}
	}

	for k, v := range res.GetHeaders() {
		w.Header().Set(k, v)
	}
	if trigger := res.triggerHeader(); trigger != "" {
		w.Header().Set("HX-Trigger", trigger)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// apply runs one event: dispatch, callbacks, and the reload a manually
// paginated source needs. It returns the rows to render with.
func (t *DataTable[T]) apply(ctx context.Context, st table.State, ev table.Event) (Result[table.State], Rows[T]) {
	rows, err := t.load(ctx, st)
	if err != nil {
		return Err(st, err), rows
	}
	next, ch, err := t.engineFor(rows).Dispatch(rows.Items, st, ev)
	if err != nil {
		return Err(st, err), rows
	}
	if !ch.Any() {
		return OK(next).Status(http.StatusNoContent), rows
	}

	if ch.SortChanged && t.opts.OnSortChange != nil {
		if err := t.opts.OnSortChange(ctx, ch.Sorting); err != nil {
			return Err(next, err), rows
		}
		if t.opts.Sorting != nil {
			next.Sorting = t.opts.Sorting(ctx)
		}
	}

	if t.opts.manual() && (ch.SortChanged || ch.SearchChanged || ch.PageChanged) {
		if rows, err = t.load(ctx, next); err != nil {
			return Err(next, err), rows
		}
	}
	m := t.engineFor(rows).Model(rows.Items, next)
	if m.PageIndex != next.PageIndex {
		// The reloaded total no longer reaches the requested page.
		next.PageIndex = m.PageIndex
		if t.opts.manual() {
			if rows, err = t.load(ctx, next); err != nil {
				return Err(next, err), rows
			}
			m = t.engineFor(rows).Model(rows.Items, next)
		}
	}
	if m.PageIndex != st.PageIndex {
		ch.PageChanged = true
	}

	res := OK(next)
	if ch.SortChanged {
		sorting := ch.Sorting
		if sorting == nil {
			sorting = table.Sorting{}
		}
		res = res.Trigger(EventSort, map[string]any{"sorting": sorting})
	}
	if ch.SearchChanged {
		res = res.Trigger(EventSearch, map[string]any{"query": next.Search})
	}
	if ch.SelectionChanged {
		selected := make([]T, len(m.Selected))
		ids := make([]string, len(m.Selected))
		for i, r := range m.Selected {
			selected[i] = r.Original
			ids[i] = r.ID
		}
		if t.opts.OnSelectionChange != nil {
			if err := t.opts.OnSelectionChange(ctx, selected); err != nil {
				return Err(next, err), rows
			}
		}
		res = res.Trigger(EventSelection, map[string]any{"ids": ids})
	}
	if ch.PageChanged {
		if t.opts.OnPaginationChange != nil {
			if err := t.opts.OnPaginationChange(ctx, m.PageIndex, m.PageSize); err != nil {
				return Err(next, err), rows
			}
		}
		res = res.Trigger(EventPage, map[string]any{
			"pageIndex": m.PageIndex,
			"pageSize":  m.PageSize,
			"pageCount": m.PageCount,
		})
	}
	return res, rows
}

func (t *DataTable[T]) load(ctx context.Context, st table.State) (Rows[T], error) {
	if t.opts.Source == nil {
		return Rows[T]{}, nil
	}
	rows, err := t.opts.Source.Rows(ctx, Query{
		Search:    st.Search,
		Sorting:   st.Sorting,
		PageIndex: st.PageIndex,
		PageSize:  t.engine.PageSize(st),
		Manual:    t.opts.manual(),
	})
	if err != nil {
		return Rows[T]{}, fmt.Errorf("%w: %s: %w", ErrSourceFailed, t.name, err)
	}
	if rows.Total == 0 {
		rows.Total = len(rows.Items)
	}
	return rows, nil
}

// engineFor returns the engine to use with rows. Manually paginated
// tables count pages from the source's total.
func (t *DataTable[T]) engineFor(rows Rows[T]) *table.Engine[T] {
	if !t.opts.manual() {
		return t.engine
	}
	eng := *t.engine
	eng.Config.RowCount = rows.Total
	return &eng
}

// action builds a request that swaps the table body.
func (t *DataTable[T]) action(name string) *Action {
	return NewAction(t.ActionURL(name), http.MethodPost).
		Target("#" + t.bodyID()).
		Swap(SwapOuter).
		Include("#" + t.stateID())
}

func parseEvent(action string, form url.Values) (table.Event, error) {
	required := func(key string) (string, error) {
		v := form.Get(key)
		if v == "" {
			return "", fmt.Errorf("%w: %s: missing %q", ErrInvalidState, action, key)
		}
		return v, nil
	}
	index := func(key string) (int, error) {
		v, err := required(key)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %s: bad %q %q", ErrInvalidState, action, key, v)
		}
		return n, nil
	}

	switch action {
	case "sort":
		col, err := required("col")
		return table.ToggleSort{Column: col}, err
	case "search":
		return table.Search{Query: form.Get("q")}, nil
	case "select":
		id, err := required("row")
		return table.ToggleRow{ID: id}, err
	case "select-all":
		return table.ToggleAllRows{}, nil
	case "row":
		switch ev := form.Get("ev"); ev {
		case "click":
			id, err := required("row")
			return table.ToggleExpand{ID: id}, err
		case "mouseenter":
			pos, err := index("pos")
			return table.Hover{Index: pos}, err
		default:
			return nil, fmt.Errorf("%w: row: unsupported event %q", ErrInvalidState, ev)
		}
	case "leave":
		return table.Leave{}, nil
	case "page":
		page, err := index("page")
		return table.GoToPage{Index: page}, err
	case "next":
		return table.NextPage{}, nil
	case "prev":
		return table.PrevPage{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
}

// componentHash generates a deterministic hash based on the table name and
// the source location of the New call.
func componentHash(name string, skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	var input string
	if ok {
		// Use base filename only for portability across environments
		input = fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, name)
	} else {
		input = name
	}
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:4]) // 8 hex chars
}

// lazyComponent creates a placeholder that loads content on trigger.
func lazyComponent(url string, placeholder templ.Component, trigger string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.open("div", templ.Attributes{"hx-get": url, "hx-trigger": trigger, "hx-swap": string(SwapOuter)})
		hw.component(placeholder)
		hw.close("div")
		return hw.err
	})
}
