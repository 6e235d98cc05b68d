// Package list implements the paginated search screen shared by every
// resource: committed-keyword search, page navigation, and a selection
// set over the visible rows. The Controller is the pure state machine;
// Model wraps it in a bubbletea program.
package list

// Controller owns one list page's state. The search box value is
// uncommitted until a search submit copies it into the committed
// keyword; only the committed keyword travels to the backend.
type Controller struct {
	searchInput string
	keyword     string
	page        int
	total       int
	visible     []int
	selected    map[int]bool
}

// NewController creates a Controller positioned on page 1 with no
// keyword and nothing selected.
func NewController() *Controller {
	return &Controller{page: 1, selected: make(map[int]bool)}
}

// SetSearchInput updates the live, uncommitted search box value.
func (c *Controller) SetSearchInput(s string) { c.searchInput = s }

// SearchInput returns the uncommitted search box value.
func (c *Controller) SearchInput() string { return c.searchInput }

// CommitSearch turns the uncommitted text into the committed keyword.
// The page number is deliberately left alone: a keyword committed while
// on page 3 fetches page 3 of the new result set.
func (c *Controller) CommitSearch() { c.keyword = c.searchInput }

// Keyword returns the committed keyword.
func (c *Controller) Keyword() string { return c.keyword }

// Page returns the current 1-based page number.
func (c *Controller) Page() int { return c.page }

// SetPage moves to the given page, clamped to at least 1.
func (c *Controller) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	c.page = p
}

// Total returns the total record count reported by the last fetch.
func (c *Controller) Total() int { return c.total }

// PageCount returns the number of pages at the given page size.
func (c *Controller) PageCount(limit int) int {
	if limit <= 0 || c.total <= 0 {
		return 1
	}
	n := (c.total + limit - 1) / limit
	if n < 1 {
		n = 1
	}
	return n
}

// ApplyPage replaces the visible rows with a fetched page and
// unconditionally clears the selection set.
func (c *Controller) ApplyPage(ids []int, total int) {
	c.visible = append(c.visible[:0], ids...)
	c.total = total
	c.selected = make(map[int]bool)
}

// Visible returns the identifiers of the currently displayed rows.
func (c *Controller) Visible() []int { return c.visible }

// Toggle flips one row's membership in the selection set. Unchecking
// removes exactly that identifier and nothing else.
func (c *Controller) Toggle(id int) {
	if c.selected[id] {
		delete(c.selected, id)
		return
	}
	c.selected[id] = true
}

// IsSelected reports whether the given row is selected.
func (c *Controller) IsSelected(id int) bool { return c.selected[id] }

// ToggleAll selects every visible row, or clears the selection when
// every visible row is already selected.
func (c *Controller) ToggleAll() {
	if c.AllSelected() {
		c.ClearSelection()
		return
	}
	c.selected = make(map[int]bool, len(c.visible))
	for _, id := range c.visible {
		c.selected[id] = true
	}
}

// ClearSelection empties the selection set.
func (c *Controller) ClearSelection() { c.selected = make(map[int]bool) }

// Selected returns the selected identifiers in visible-row order.
func (c *Controller) Selected() []int {
	out := make([]int, 0, len(c.selected))
	for _, id := range c.visible {
		if c.selected[id] {
			out = append(out, id)
		}
	}
	return out
}

// SelectedCount returns the number of selected rows.
func (c *Controller) SelectedCount() int { return len(c.selected) }

// AllSelected reports whether every visible row is selected. It drives
// the header checkbox state: false while nothing is visible or nothing
// is selected.
func (c *Controller) AllSelected() bool {
	return len(c.selected) != 0 && len(c.selected) == len(c.visible)
}
