package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"prodsearch/internal/catalog"
	"prodsearch/internal/domain"
	"prodsearch/internal/logger"
	"prodsearch/internal/session"
	"prodsearch/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx     context.Context
	Session *session.Session
	Client  catalog.Client
	State   *state.AppState
}

// FetchResultMsg carries the outcome of a catalog request back to the update loop
type FetchResultMsg struct {
	Request session.Request
	Page    *domain.ResultPage
	Err     error
}

// fetch returns a command that runs req against the catalog off the update loop
func fetch(ctx *CommandContext, req session.Request) tea.Cmd {
	base := ctx.Ctx
	client := ctx.Client
	return func() tea.Msg {
		page, err := client.Fetch(base, req.PageRequest)
		return FetchResultMsg{Request: req, Page: page, Err: err}
	}
}

// SearchCommand starts a new search from page 1
type SearchCommand struct {
	ctx *CommandContext
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext) *SearchCommand {
	return &SearchCommand{ctx: ctx}
}

// Execute begins the search. It does nothing while a fetch is in flight or
// when the query is empty.
func (c *SearchCommand) Execute() tea.Cmd {
	if c.ctx.Session.Loading() {
		logger.Debug("search ignored while loading")
		return nil
	}
	req, ok := c.ctx.Session.BeginSearch()
	if !ok {
		return nil
	}
	c.ctx.State.ResetCursor()
	return fetch(c.ctx, req)
}

// ChangePageCommand moves to another result page
type ChangePageCommand struct {
	ctx  *CommandContext
	page int
}

// NewChangePageCommand creates a new change page command
func NewChangePageCommand(ctx *CommandContext, page int) *ChangePageCommand {
	return &ChangePageCommand{ctx: ctx, page: page}
}

// Execute begins the page change
func (c *ChangePageCommand) Execute() tea.Cmd {
	req, err := c.ctx.Session.BeginChangePage(c.page)
	if err != nil {
		logger.Warn("page change rejected", zap.Int("page", c.page), zap.Error(err))
		return nil
	}
	c.ctx.State.ResetCursor()
	return fetch(c.ctx, req)
}

// ApplyResultCommand feeds a fetch result into the session
type ApplyResultCommand struct {
	ctx *CommandContext
	msg FetchResultMsg
}

// NewApplyResultCommand creates a new apply result command
func NewApplyResultCommand(ctx *CommandContext, msg FetchResultMsg) *ApplyResultCommand {
	return &ApplyResultCommand{ctx: ctx, msg: msg}
}

// Execute applies the result. Stale results are dropped by the session. A page
// that landed past the new end is fetched again.
func (c *ApplyResultCommand) Execute() tea.Cmd {
	if c.msg.Err != nil {
		logger.Error("catalog fetch failed",
			zap.String("session", c.ctx.Session.ID()),
			zap.Uint64("seq", c.msg.Request.Seq),
			zap.Stringer("kind", c.msg.Request.Kind),
			zap.Error(c.msg.Err))
	}
	if !c.ctx.Session.Complete(c.msg.Request, c.msg.Page, c.msg.Err) {
		return nil
	}
	if c.ctx.Session.NeedsRefetch() {
		logger.Info("result set shrank, refetching last page",
			zap.String("session", c.ctx.Session.ID()),
			zap.Int("page", c.ctx.Session.Page()))
		return NewChangePageCommand(c.ctx, c.ctx.Session.Page()).Execute()
	}
	c.ctx.State.SetCursor(c.ctx.State.Cursor, len(c.ctx.Session.Items()))
	return nil
}
