package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"prodsearch/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyLeft:
		return m.previousPage(ctx)

	case tea.KeyRight:
		return m.nextPage(ctx)

	case tea.KeyEnter:
		// Enter opens the highlighted product when there is one
		if ctx.TotalItems() > 0 && !ctx.Loading() {
			return []types.Action{types.OpenDetailsAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch key := msg.String(); key {
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h", "p":
		return m.previousPage(ctx)

	case "n":
		return m.nextPage(ctx)

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery, Data: ctx.Query()}}, true

	case "r":
		// Re-run the search with the current region and page size
		return []types.Action{types.SearchAction{}}, true

	case "g":
		return []types.Action{types.CycleRegionAction{}}, true

	case "l":
		return []types.Action{types.CycleLimitAction{}}, true

	case "R":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRegion}}, true

	case "L":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeLimit}}, true

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		page := int(key[0] - '0')
		if page <= ctx.TotalPages() && page != ctx.Page() {
			return []types.Action{types.ChangePageAction{Page: page}}, true
		}
		return nil, false
	}

	return nil, false
}

func (m *NormalMode) previousPage(ctx types.Context) ([]types.Action, bool) {
	if ctx.Page() > 1 {
		return []types.Action{types.ChangePageAction{Page: ctx.Page() - 1}}, true
	}
	return nil, false
}

func (m *NormalMode) nextPage(ctx types.Context) ([]types.Action, bool) {
	if ctx.Page() < ctx.TotalPages() {
		return []types.Action{types.ChangePageAction{Page: ctx.Page() + 1}}, true
	}
	return nil, false
}
