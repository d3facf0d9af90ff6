package hxtable

import "github.com/a-h/templ"

// RowClassNames are CSS classes applied to body rows.
type RowClassNames struct {
	Row string `yaml:"row"`
	// AlternativeRow applies to rows at even page positions.
	AlternativeRow string `yaml:"alternative_row"`
	Hover          string `yaml:"hover"`
	Selected       string `yaml:"selected"`
	Expanded       string `yaml:"expanded"`
}

// Style is a set of CSS declarations keyed by property.
type Style map[string]string

// RowStyles are inline styles applied to body rows. When several apply,
// they merge in the order Row, Selected, AlternativeRow, Hover, Expanded,
// later values winning.
type RowStyles struct {
	Row            Style `yaml:"row"`
	AlternativeRow Style `yaml:"alternative_row"`
	Hover          Style `yaml:"hover"`
	Selected       Style `yaml:"selected"`
	Expanded       Style `yaml:"expanded"`
}

// rowState is what row styling depends on.
type rowState struct {
	Position   int
	Selected   bool
	Hovered    bool
	Expanded   bool
	Expandable bool
}

func (r rowState) alternative() bool {
	return r.Position%2 == 0
}

// class composes the class attribute for a row.
func (c RowClassNames) class(r rowState) string {
	return templ.Classes(
		templ.KV(c.Row, c.Row != ""),
		templ.KV(c.AlternativeRow, c.AlternativeRow != "" && r.alternative()),
		templ.KV(c.Selected, c.Selected != "" && r.Selected),
		templ.KV(c.Hover, c.Hover != "" && r.Hovered),
		templ.KV(c.Expanded, c.Expanded != "" && r.Expanded),
	).String()
}

func (c RowClassNames) tracksHover() bool {
	return c.Hover != ""
}

func (s RowStyles) style(r rowState) string {
	merged := Style{"cursor": "default"}
	if r.Expandable {
		merged["cursor"] = "pointer"
	}
	apply := func(on bool, st Style) {
		if !on {
			return
		}
		for k, v := range st {
			merged[k] = v
		}
	}
	apply(true, s.Row)
	apply(r.Selected, s.Selected)
	apply(r.alternative(), s.AlternativeRow)
	apply(r.Hovered, s.Hover)
	apply(r.Expanded, s.Expanded)
	return css(merged)
}

func (s RowStyles) tracksHover() bool {
	return len(s.Hover) > 0
}
