package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	assert.Equal(t, 2, PageCount(8, 6))
	assert.Equal(t, 1, PageCount(6, 6))
	assert.Equal(t, 0, PageCount(0, 6))
	assert.Equal(t, 1, PageCount(3, 0), "zero page size uses the default")
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(5, 2))
	assert.Equal(t, 0, ClampPage(-1, 2))
	assert.Equal(t, 0, ClampPage(3, 0))
	assert.Equal(t, 1, ClampPage(1, 2))
}

type stripItem struct {
	n        int
	ellipsis bool
	current  bool
}

func strip(items []PageItem) []stripItem {
	out := make([]stripItem, len(items))
	for i, it := range items {
		out[i] = stripItem{n: it.Number(), ellipsis: it.Ellipsis, current: it.Current}
		if it.Ellipsis {
			out[i].n = 0
		}
	}
	return out
}

func TestPageStrip(t *testing.T) {
	tests := []struct {
		name      string
		pageCount int
		current   int
		want      []stripItem
	}{
		{"no pages", 0, 0, []stripItem{}},
		{"single page", 1, 0, []stripItem{{n: 1, current: true}}},
		{
			"start of many", 10, 0,
			[]stripItem{{n: 1, current: true}, {n: 2}, {ellipsis: true}, {n: 10}},
		},
		{
			"middle", 10, 5,
			[]stripItem{{n: 1}, {ellipsis: true}, {n: 5}, {n: 6, current: true}, {n: 7}, {ellipsis: true}, {n: 10}},
		},
		{
			"end", 10, 9,
			[]stripItem{{n: 1}, {ellipsis: true}, {n: 9}, {n: 10, current: true}},
		},
		{
			// current == 2: page 2 (index 1) is adjacent, no leading ellipsis
			"near start", 10, 2,
			[]stripItem{{n: 1}, {n: 2}, {n: 3, current: true}, {n: 4}, {ellipsis: true}, {n: 10}},
		},
		{
			// a single hidden page still becomes a marker
			"short strip", 4, 0,
			[]stripItem{{n: 1, current: true}, {n: 2}, {ellipsis: true}, {n: 4}},
		},
		{
			"several hidden pages share one marker", 10, 4,
			[]stripItem{{n: 1}, {ellipsis: true}, {n: 4}, {n: 5, current: true}, {n: 6}, {ellipsis: true}, {n: 10}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strip(PageStrip(tt.pageCount, tt.current))
			assert.Equal(t, tt.want, got)
		})
	}
}
