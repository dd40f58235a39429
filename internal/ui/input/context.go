package input

import (
	"prodsearch/internal/domain"
	"prodsearch/internal/session"
	"prodsearch/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State   *state.AppState
	Session *session.Session
}

// CurrentIndex returns the highlighted card
func (c *ModelContext) CurrentIndex() int {
	return c.State.Cursor
}

// TotalItems returns the number of cards on screen
func (c *ModelContext) TotalItems() int {
	if c.Session.Loading() {
		return 0
	}
	return len(c.Session.Items())
}

func (c *ModelContext) Page() int {
	return c.Session.Page()
}

func (c *ModelContext) TotalPages() int {
	return c.Session.TotalPages()
}

func (c *ModelContext) Loading() bool {
	return c.Session.Loading()
}

func (c *ModelContext) Query() string {
	return c.Session.Query()
}

// RegionIndex returns the position of the session region in domain.Regions
func (c *ModelContext) RegionIndex() int {
	id := c.Session.Region().ID
	for i, r := range domain.Regions {
		if r.ID == id {
			return i
		}
	}
	return 0
}

// LimitIndex returns the position of the session page size in domain.PageSizes
func (c *ModelContext) LimitIndex() int {
	for i, n := range domain.PageSizes {
		if n == c.Session.Limit() {
			return i
		}
	}
	return 0
}
