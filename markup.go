package hxtable

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxtable/table"
)

// writeTable writes the toolbar and the swappable body region.
func (t *DataTable[T]) writeTable(ctx context.Context, w io.Writer, rows Rows[T], st table.State) error {
	hw := newHTMLWriter(ctx, w)
	hw.open("div", templ.Attributes{"id": t.opts.ID, "class": "hxtable"})

	hw.raw(`<div class="hxtable-toolbar" style="display: flex; gap: 8px; width: 100%; align-items: center;">`)
	hw.component(t.opts.Overrides.Headline)
	if t.opts.EnableSearch {
		search := t.opts.Overrides.Search
		if search == nil {
			search = defaultSearch
		}
		hw.raw(`<div style="flex: 1;">`)
		hw.component(search.RenderSearch(SearchProps{
			Name:  "q",
			Value: st.Search,
			Attrs: t.action("search").Trigger("input changed delay:300ms, search").Attrs(),
		}))
		hw.raw(`</div>`)
	}
	hw.raw(`</div>`)

	if hw.err == nil {
		hw.err = t.writeBody(ctx, w, rows, st)
	}
	hw.close("div")
	return hw.err
}

// writeBody writes the region every action swaps: the state input, the
// table and the pagination controls.
func (t *DataTable[T]) writeBody(ctx context.Context, w io.Writer, rows Rows[T], st table.State) error {
	m := t.engineFor(rows).Model(rows.Items, st)
	st.PageIndex = m.PageIndex
	encoded, err := t.EncodeState(st)
	if err != nil {
		return err
	}

	hw := newHTMLWriter(ctx, w)
	hw.open("div", templ.Attributes{"id": t.bodyID(), "class": "hxtable-body"})
	hw.open("input", templ.Attributes{"type": "hidden", "id": t.stateID(), "name": "p", "value": encoded})
	hw.raw(`<table style="width: 100%;">`)
	t.writeHead(hw, m, st)
	t.writeRows(hw, m)
	hw.raw(`</table>`)
	if t.opts.ShowPagination {
		t.writePagination(hw, m)
	}
	hw.close("div")
	return hw.err
}

func (t *DataTable[T]) checkbox() CheckboxRenderer {
	if t.opts.Overrides.Checkbox != nil {
		return t.opts.Overrides.Checkbox
	}
	return defaultCheckbox
}

func headerStyle(sortable bool) string {
	cursor := "default"
	if sortable {
		cursor = "pointer"
	}
	return css(Style{
		"padding":       "10px",
		"text-align":    "left",
		"cursor":        cursor,
		"border-bottom": ".4px solid #e0e0e0",
	})
}

func (t *DataTable[T]) writeHead(hw *htmlWriter, m table.Model[T], st table.State) {
	hw.raw("<thead><tr>")
	if t.opts.EnableMultiSelect {
		hw.open("th", templ.Attributes{"style": headerStyle(false), "width": "40"})
		hw.component(t.checkbox().RenderCheckbox(CheckboxProps{
			Checked:       m.AllSelected,
			Indeterminate: m.SomeSelected,
			Attrs:         t.action("select-all").Trigger("change").Attrs(),
		}))
		hw.close("th")
	}

	for _, col := range t.opts.Columns {
		dir := st.Sorting.Direction(col.Key)
		sortable := table.IsSortable(col.Key, t.opts.SortableColumns)
		attrs := templ.Attributes{"style": headerStyle(sortable), "data-sort": dir.String()}
		if sortable {
			attrs = mergeAttrs(attrs, t.action("sort").Vals(map[string]any{"col": col.Key}).Trigger("click").Attrs())
		}

		hw.open("th", attrs)
		hw.component(col.header(dir))
		if col.HeaderFunc == nil && t.opts.EnableSorting {
			hw.raw(`<span style="margin-left: 8px; display: inline-block; width: 12px; height: 12px;">`)
			switch dir {
			case table.SortAsc:
				sortArrow(hw, arrowUp)
			case table.SortDesc:
				sortArrow(hw, arrowDown)
			}
			hw.raw(`</span>`)
		}
		hw.close("th")
	}
	hw.raw("</tr></thead>")
}

func (t *DataTable[T]) writeRows(hw *htmlWriter, m table.Model[T]) {
	var triggers []string
	if t.opts.expandable() {
		triggers = append(triggers, "click")
	}
	if t.opts.tracksHover() {
		triggers = append(triggers, "mouseenter")
	}

	body := templ.Attributes{}
	if t.opts.tracksHover() {
		body = t.action("leave").Trigger("mouseleave").Attrs()
	}
	hw.open("tbody", body)

	for _, pr := range m.Page {
		rs := rowState{
			Position:   pr.Position,
			Selected:   pr.Selected,
			Hovered:    pr.Hovered,
			Expanded:   pr.Expanded,
			Expandable: t.opts.Expand != nil,
		}
		attrs := templ.Attributes{"data-row": pr.ID, "style": t.opts.Styles.style(rs)}
		if class := t.opts.ClassNames.class(rs); class != "" {
			attrs["class"] = class
		}
		if len(triggers) > 0 {
			attrs = mergeAttrs(attrs, t.action("row").
				Vals(map[string]any{"row": pr.ID, "pos": pr.Position}).
				ValsJS(`"ev": event.type`).
				Trigger(strings.Join(triggers, ", ")).
				Attrs())
		}

		hw.open("tr", attrs)
		if t.opts.EnableMultiSelect {
			hw.raw(`<td style="padding: 10px;">`)
			hw.component(t.checkbox().RenderCheckbox(CheckboxProps{
				RowID:   pr.ID,
				Checked: pr.Selected,
				Attrs: t.action("select").
					Vals(map[string]any{"row": pr.ID}).
					Trigger("change").
					Attr("onclick", "event.stopPropagation()").
					Attrs(),
			}))
			hw.raw(`</td>`)
		}
		for _, col := range t.opts.Columns {
			hw.raw(`<td style="padding: 10px;">`)
			hw.component(col.cell(pr.Original, pr.Fields[col.Key]))
			hw.raw(`</td>`)
		}
		hw.close("tr")

		if pr.Expanded && t.opts.Expand != nil {
			hw.raw(`<tr class="hxtable-expansion">`)
			hw.open("td", templ.Attributes{"colspan": strconv.Itoa(len(t.opts.Columns) + 1), "style": "width: 100%;"})
			hw.component(t.opts.Expand(pr.Original))
			hw.raw(`</td></tr>`)
		}
	}
	hw.close("tbody")
}

func (t *DataTable[T]) writePagination(hw *htmlWriter, m table.Model[T]) {
	ov := t.opts.Overrides
	button := func(custom ButtonRenderer, p ButtonProps) {
		switch {
		case custom != nil:
			hw.component(custom.RenderButton(p))
		case ov.Pagination == nil:
			hw.component(defaultButton.RenderButton(p))
		}
	}

	hw.raw(`<div class="hxtable-pagination" style="margin-top: 12px; display: flex; justify-content: space-between; align-items: center; gap: 8px;">`)
	button(ov.Prev, ButtonProps{Label: "Prev", Disabled: !m.CanPrev, Attrs: t.action("prev").Attrs()})

	pages := ov.Pagination
	if pages == nil {
		pages = BasicPagination
	}
	hw.raw(`<div style="display: flex; flex: 1; align-items: center;">`)
	hw.component(pages.RenderPagination(PaginationProps{
		PageCount:   m.PageCount,
		CurrentPage: m.PageIndex,
		PageAttrs: func(page int) templ.Attributes {
			return t.action("page").Vals(map[string]any{"page": page}).Attrs()
		},
	}))
	hw.raw(`</div>`)

	button(ov.Next, ButtonProps{Label: "Next", Disabled: !m.CanNext, Attrs: t.action("next").Attrs()})
	hw.raw(`</div>`)
}
