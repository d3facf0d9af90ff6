package table

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 10

// PageCount returns ceil(rowCount / pageSize). A non-positive page size
// counts as DefaultPageSize.
func PageCount(rowCount, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if rowCount <= 0 {
		return 0
	}
	return (rowCount + pageSize - 1) / pageSize
}

// ClampPage keeps index inside [0, max(pageCount-1, 0)].
func ClampPage(index, pageCount int) int {
	if index >= pageCount {
		index = pageCount - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

// PageItem is one entry of a page-number strip.
type PageItem struct {
	// Index is the zero-based page index. Meaningless for ellipses.
	Index    int
	Current  bool
	Ellipsis bool
}

// Number is the one-based page number shown to users.
func (p PageItem) Number() int { return p.Index + 1 }

// PageStrip returns the page buttons to draw for pageCount pages with
// current selected. First, last and the pages next to current are always
// shown. An ellipsis takes the place of page 1 when current > 2 and of
// page pageCount-2 when current < pageCount-3; other pages are omitted.
func PageStrip(pageCount, current int) []PageItem {
	var items []PageItem
	for i := 0; i < pageCount; i++ {
		near := i-current <= 1 && current-i <= 1
		edge := i == 0 || i == pageCount-1
		switch {
		case near || edge:
			items = append(items, PageItem{Index: i, Current: i == current})
		case (i == 1 && current > 2) || (i == pageCount-2 && current < pageCount-3):
			items = append(items, PageItem{Index: i, Ellipsis: true})
		}
	}
	return items
}
