package hxtableecho

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pthm/hxtable"
	"github.com/pthm/hxtable/table"
)

type row struct {
	ID   int    `col:"id"`
	Name string `col:"name"`
}

func newTable() *hxtable.DataTable[row] {
	return hxtable.New("rows", hxtable.Options[row]{
		Source:         hxtable.StaticRows([]row{{1, "alpha"}, {2, "beta"}, {3, "gamma"}}),
		Columns:        hxtable.StructColumns[row](),
		ShowPagination: true,
		RowsPerPage:    2,
	})
}

func TestMount(t *testing.T) {
	e := echo.New()
	reg := Mount(e)

	if reg == nil {
		t.Fatal("Mount returned nil registry")
	}
}

func TestMountWithKey(t *testing.T) {
	key := make([]byte, 32)
	reg1 := Mount(echo.New(), WithKey(key))
	reg2 := Mount(echo.New(), WithKey(key))

	st := table.State{PageIndex: 1}
	encoded, err := reg1.Encoder().Encode(st, false)
	if err != nil {
		t.Fatal(err)
	}
	var got table.State
	if err := reg2.Encoder().Decode(encoded, false, &got); err != nil {
		t.Fatalf("registries sharing a key should read each other's state: %v", err)
	}
}

func TestMountWithPath(t *testing.T) {
	e := echo.New()
	Mount(e, WithPath("/tables/"))

	req := httptest.NewRequest(http.MethodPost, "/tables/anything", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Routed to the registry, which enforces the CSRF guard.
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 from the registry", rec.Code)
	}
}

func TestMountGroup(t *testing.T) {
	e := echo.New()
	g := e.Group("")
	reg := MountGroup(g)
	tbl := newTable()
	reg.Add(tbl)

	req := httptest.NewRequest(http.MethodGet, tbl.Prefix()+"/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestServeTable(t *testing.T) {
	e := echo.New()
	reg := Mount(e)
	tbl := newTable()
	reg.Add(tbl)

	req := httptest.NewRequest(http.MethodGet, tbl.Prefix()+"/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "alpha") || strings.Contains(body, "gamma") {
		t.Errorf("first page not rendered:\n%s", body)
	}

	req = httptest.NewRequest(http.MethodPost, tbl.ActionURL("next"), strings.NewReader(""))
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "gamma") {
		t.Errorf("next page: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("HX-Trigger") == "" {
		t.Error("page event missing")
	}
}

func TestWithLogger(t *testing.T) {
	var logs bytes.Buffer
	e := echo.New()
	reg := Mount(e, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	tbl := newTable()
	reg.Add(tbl)

	req := httptest.NewRequest(http.MethodPost, tbl.ActionURL("next"), strings.NewReader("p=garbage"))
	req.Header.Set("Content-Type", echo.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(logs.String(), "table request failed") {
		t.Errorf("log = %q", logs.String())
	}
}

func TestCSRFProtection(t *testing.T) {
	e := echo.New()
	Mount(e)

	// POST without HX-Request header should be forbidden
	req := httptest.NewRequest(http.MethodPost, "/_c/test/action", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for POST without HX-Request, got %d", rec.Code)
	}
}

func TestGETAllowed(t *testing.T) {
	e := echo.New()
	Mount(e)

	// GET requests don't need HX-Request header
	req := httptest.NewRequest(http.MethodGet, "/_c/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code == http.StatusForbidden {
		t.Error("GET request should not require HX-Request header")
	}
}

func TestRender(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Render(c, hxtable.Text("<hi>")); err != nil {
		t.Fatal(err)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != echo.MIMETextHTMLCharsetUTF8 {
		t.Errorf("Content-Type = %q", ct)
	}
	body, _ := io.ReadAll(rec.Body)
	if string(body) != "&lt;hi&gt;" {
		t.Errorf("body = %q", body)
	}
}
