package hxtable

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/pthm/hxtable/table"
)

// Overrides replace parts of the default markup. Every renderer receives
// the HTMX attributes it must spread onto its interactive element.
type Overrides struct {
	// Headline is drawn left of the search box.
	Headline templ.Component
	Search   SearchRenderer
	Checkbox CheckboxRenderer
	Prev     ButtonRenderer
	Next     ButtonRenderer
	// Pagination replaces the page strip. When set, the default Prev and
	// Next buttons are not drawn; Prev and Next overrides still are.
	Pagination PaginationRenderer
}

// SearchProps is passed to a SearchRenderer.
type SearchProps struct {
	// Name is the form field the query must be sent as.
	Name  string
	Value string
	Attrs templ.Attributes
}

// SearchRenderer draws the search box.
type SearchRenderer interface {
	RenderSearch(p SearchProps) templ.Component
}

// SearchFunc adapts a function to SearchRenderer.
type SearchFunc func(p SearchProps) templ.Component

// RenderSearch calls f.
func (f SearchFunc) RenderSearch(p SearchProps) templ.Component { return f(p) }

// CheckboxProps is passed to a CheckboxRenderer.
type CheckboxProps struct {
	// RowID is empty for the select-all checkbox in the header.
	RowID         string
	Checked       bool
	Indeterminate bool
	Attrs         templ.Attributes
}

// CheckboxRenderer draws selection checkboxes.
type CheckboxRenderer interface {
	RenderCheckbox(p CheckboxProps) templ.Component
}

// CheckboxFunc adapts a function to CheckboxRenderer.
type CheckboxFunc func(p CheckboxProps) templ.Component

// RenderCheckbox calls f.
func (f CheckboxFunc) RenderCheckbox(p CheckboxProps) templ.Component { return f(p) }

// ButtonProps is passed to a ButtonRenderer.
type ButtonProps struct {
	Label    string
	Disabled bool
	Attrs    templ.Attributes
}

// ButtonRenderer draws the Prev and Next buttons.
type ButtonRenderer interface {
	RenderButton(p ButtonProps) templ.Component
}

// ButtonFunc adapts a function to ButtonRenderer.
type ButtonFunc func(p ButtonProps) templ.Component

// RenderButton calls f.
func (f ButtonFunc) RenderButton(p ButtonProps) templ.Component { return f(p) }

// PaginationProps is passed to a PaginationRenderer.
type PaginationProps struct {
	PageCount   int
	CurrentPage int
	// PageAttrs returns the attributes of an element that opens page.
	PageAttrs func(page int) templ.Attributes
}

// PaginationRenderer draws page navigation.
type PaginationRenderer interface {
	RenderPagination(p PaginationProps) templ.Component
}

// PaginationFunc adapts a function to PaginationRenderer.
type PaginationFunc func(p PaginationProps) templ.Component

// RenderPagination calls f.
func (f PaginationFunc) RenderPagination(p PaginationProps) templ.Component { return f(p) }

// Headline renders text as a heading for Overrides.Headline.
func Headline(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw("<h1>")
		hw.text(text)
		hw.raw("</h1>")
		return hw.err
	})
}

var defaultSearch = SearchFunc(func(p SearchProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.open("input", mergeAttrs(templ.Attributes{
			"type":        "text",
			"name":        p.Name,
			"value":       p.Value,
			"placeholder": "Search...",
			"style":       "width: 30%; padding: 8px; border: 1px solid #ccc; border-radius: 4px;",
		}, p.Attrs))
		return hw.err
	})
})

var defaultCheckbox = CheckboxFunc(func(p CheckboxProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		attrs := templ.Attributes{"type": "checkbox", "checked": p.Checked}
		if p.Indeterminate {
			attrs["data-indeterminate"] = "true"
		}
		hw.open("input", mergeAttrs(attrs, p.Attrs))
		return hw.err
	})
})

var defaultButton = ButtonFunc(func(p ButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cursor, opacity := "pointer", "1"
		if p.Disabled {
			cursor, opacity = "not-allowed", "0.5"
		}
		hw := newHTMLWriter(ctx, w)
		hw.open("button", mergeAttrs(templ.Attributes{
			"type":     "button",
			"disabled": p.Disabled,
			"style": css(Style{
				"padding":          "6px 12px",
				"border":           "1px solid #ccc",
				"border-radius":    "4px",
				"background-color": "#fff",
				"cursor":           cursor,
				"opacity":          opacity,
			}),
		}, p.Attrs))
		hw.text(p.Label)
		hw.close("button")
		return hw.err
	})
})

// BasicPagination is the default page strip: first, last and the pages
// around the current one, with ellipses for the gaps.
var BasicPagination = PaginationFunc(func(p PaginationProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div style="display: flex; gap: 4px; align-items: center;">`)
		for _, item := range table.PageStrip(p.PageCount, p.CurrentPage) {
			if item.Ellipsis {
				hw.raw("<span>...</span>")
				continue
			}
			bg, color := "transparent", "#666"
			if item.Current {
				bg, color = "#f0f0f0", "#333"
			}
			hw.open("button", mergeAttrs(templ.Attributes{
				"type":         "button",
				"aria-current": templ.KV("page", item.Current),
				"style": css(Style{
					"padding":          "8px 14px",
					"border":           "none",
					"border-radius":    "6px",
					"background-color": bg,
					"cursor":           "pointer",
					"min-width":        "36px",
					"color":            color,
				}),
			}, p.PageAttrs(item.Index)))
			hw.raw(strconv.Itoa(item.Number()))
			hw.close("button")
		}
		hw.raw("</div>")
		return hw.err
	})
})

// FirstLastPagination renders First, Prev, the current page, Next and
// Last. Buttons that would leave the page range are disabled.
var FirstLastPagination = PaginationFunc(func(p PaginationProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		last := p.PageCount - 1
		button := func(label string, page int, disabled bool, style Style) {
			attrs := templ.Attributes{"type": "button", "disabled": disabled, "style": css(style)}
			if !disabled && page >= 0 && page < p.PageCount {
				attrs = mergeAttrs(attrs, p.PageAttrs(page))
			}
			hw.open("button", attrs)
			hw.text(label)
			hw.close("button")
		}
		plain := Style{"padding": "8px", "border": "none", "cursor": "pointer"}

		hw.raw(`<div style="display: flex; max-width: 320px; margin: auto; justify-content: space-between; gap: 12px; align-items: center;">`)
		button("First", 0, p.CurrentPage == 0, plain)
		button("Prev", p.CurrentPage-1, p.CurrentPage == 0, plain)
		button(strconv.Itoa(p.CurrentPage+1), p.CurrentPage, false, Style{
			"padding":          "8px 14px",
			"border":           "none",
			"border-radius":    "6px",
			"background-color": "#f0f0f0",
			"cursor":           "pointer",
			"min-width":        "36px",
			"color":            "#333",
		})
		button("Next", p.CurrentPage+1, p.CurrentPage >= last, plain)
		button("Last", last, p.CurrentPage >= last, plain)
		hw.raw("</div>")
		return hw.err
	})
})
