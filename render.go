package hxtable

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and keeps the first error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) open(tag string, attrs templ.Attributes) {
	hw.raw("<" + tag)
	hw.attrs(attrs)
	hw.raw(">")
}

func (hw *htmlWriter) close(tag string) {
	hw.raw("</" + tag + ">")
}

func (hw *htmlWriter) attrs(attrs templ.Attributes) {
	if hw.err != nil {
		return
	}
	hw.err = templ.RenderAttributes(hw.ctx, hw.w, attrs)
}

func (hw *htmlWriter) component(c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(hw.ctx, hw.w)
}

// css formats declarations sorted by property.
func css(style map[string]string) string {
	if len(style) == 0 {
		return ""
	}
	props := make([]string, 0, len(style))
	for p := range style {
		props = append(props, p)
	}
	slices.Sort(props)

	var sb strings.Builder
	for i, p := range props {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(p)
		sb.WriteString(": ")
		sb.WriteString(style[p])
		sb.WriteString(";")
	}
	return sb.String()
}

// mergeAttrs copies b over a into a new map.
func mergeAttrs(a, b templ.Attributes) templ.Attributes {
	out := make(templ.Attributes, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

const (
	arrowUp   = `<polyline points="18 15 12 9 6 15"></polyline>`
	arrowDown = `<polyline points="6 9 12 15 18 9"></polyline>`
)

func sortArrow(hw *htmlWriter, points string) {
	hw.raw(`<svg width="12" height="12" viewBox="0 0 24 24" fill="none" stroke="black" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
	hw.raw(points)
	hw.raw(`</svg>`)
}
