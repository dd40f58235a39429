package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"prodsearch/internal/catalog"
	"prodsearch/internal/session"
	"prodsearch/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, sess *session.Session, client catalog.Client, state *state.AppState) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Ctx:     ctx,
			Session: sess,
			Client:  client,
			State:   state,
		},
	}
}

// ExecuteSearch creates and executes a search command
func (e *Executor) ExecuteSearch() tea.Cmd {
	cmd := NewSearchCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteChangePage creates and executes a change page command
func (e *Executor) ExecuteChangePage(page int) tea.Cmd {
	cmd := NewChangePageCommand(e.ctx, page)
	return cmd.Execute()
}

// ExecuteApplyResult creates and executes an apply result command
func (e *Executor) ExecuteApplyResult(msg FetchResultMsg) tea.Cmd {
	cmd := NewApplyResultCommand(e.ctx, msg)
	return cmd.Execute()
}
