package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxtable"
	"github.com/pthm/hxtable/config"
	"github.com/pthm/hxtable/table"
)

type user struct {
	ID         int      `col:"id"`
	Name       string   `col:"name"`
	Age        int      `col:"age"`
	IsAccepted bool     `col:"isAccepted"`
	Groups     []string `col:"groups"`
	LastLogin  string   `col:"lastLogin"`
	Status     string   `col:"status"`
}

var users = []user{
	{1, "John Doe", 28, true, []string{"admin", "developers"}, "2024-03-20", "available"},
	{2, "Jane Smith", 34, true, []string{"moderator"}, "2024-03-19", "busy"},
	{3, "Alice Johnson", 22, false, []string{"guest"}, "2024-03-15", "offline"},
	{4, "Michael Brown", 40, true, []string{"admin", "support"}, "2024-03-18", "available"},
	{5, "Emily Davis", 27, false, []string{"developer"}, "2024-03-10", "offline"},
	{6, "Chris Wilson", 29, true, []string{"moderator", "support"}, "2024-03-21", "busy"},
	{7, "Jessica Taylor", 31, true, []string{"guest", "members"}, "2024-03-22", "available"},
	{8, "David Martinez", 38, false, []string{"administrators"}, "2024-03-16", "offline"},
}

func userColumns() []hxtable.Column[user] {
	return []hxtable.Column[user]{
		{Key: "id", Header: "ID"},
		{Key: "name", Header: "Name", Cell: func(u user, _ any) templ.Component {
			return element("div", nil, hxtable.Text(u.Name))
		}},
		{Key: "age", HeaderFunc: ageHeader},
		{Key: "isAccepted", Header: "Accepted", Cell: func(u user, _ any) templ.Component {
			return acceptedBadge(u.IsAccepted)
		}},
		{Key: "groups", Header: "Groups", Cell: func(u user, _ any) templ.Component {
			return hxtable.Text(strings.Join(u.Groups, ", "))
		}},
		{Key: "lastLogin", Header: "Last Login"},
		{Key: "status", Header: "Status"},
	}
}

func ageHeader(dir table.SortDirection) templ.Component {
	children := []templ.Component{
		element("span", templ.Attributes{"style": "font-weight: 200;"}, hxtable.Text("Age")),
	}
	if dir != table.SortNone {
		children = append(children,
			element("span", templ.Attributes{"style": "margin-left: 8px;"}, hxtable.Text(dir.String())))
	}
	return element("div", templ.Attributes{"style": "min-width: 70px;"}, children...)
}

func acceptedBadge(accepted bool) templ.Component {
	bg, fg, label := "#fce8e8", "#d32f2f", "No"
	if accepted {
		bg, fg, label = "#e6f4ea", "#1e7e34", "Yes"
	}
	style := "padding: 4px 8px; border-radius: 12px; background-color: " + bg +
		"; color: " + fg + "; display: inline-block; font-size: 14px; font-weight: 500;"
	return element("div", templ.Attributes{"style": style}, hxtable.Text(label))
}

var customSearch = hxtable.SearchFunc(func(p hxtable.SearchProps) templ.Component {
	attrs := templ.Attributes{
		"type":        "text",
		"name":        p.Name,
		"value":       p.Value,
		"placeholder": "Custom search...",
		"style": "padding: 8px 12px; font-size: 14px; display: flex; justify-self: flex-end; " +
			"border: 1px solid #ddd; border-radius: 6px; outline: none; box-shadow: 0 2px 4px rgba(0,0,0,0.05);",
	}
	for k, v := range p.Attrs {
		attrs[k] = v
	}
	return element("input", attrs)
})

func newUsersTable(cfg *config.Config, firstLast bool, logger *slog.Logger) *hxtable.DataTable[user] {
	opts := hxtable.Options[user]{
		Source:            hxtable.StaticRows(users),
		Columns:           userColumns(),
		EnableSearch:      true,
		EnableSorting:     true,
		EnableMultiSelect: true,
		ShowPagination:    true,
		RowsPerPage:       6,
		Expand: func(u user) templ.Component {
			return element("div", templ.Attributes{"style": "width: 100%; text-align: center;"},
				hxtable.Text("My name is "+u.Name))
		},
		OnSelectionChange: func(ctx context.Context, rows []user) error {
			ids := make([]int, len(rows))
			for i, u := range rows {
				ids[i] = u.ID
			}
			logger.InfoContext(ctx, "selection changed", slog.Any("ids", ids))
			return nil
		},
		Overrides: hxtable.Overrides{
			Headline: hxtable.Headline("Locofy table"),
			Search:   customSearch,
		},
		Styles: hxtable.RowStyles{
			Hover:    hxtable.Style{"background-color": "#f5f5f5"},
			Selected: hxtable.Style{"background-color": "#e8f0fe"},
		},
	}
	if firstLast {
		opts.Overrides.Pagination = hxtable.FirstLastPagination
	}
	config.ApplyNamed(cfg, "users", &opts)
	return hxtable.New("users", opts)
}
