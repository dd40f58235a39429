package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"prodsearch/internal/domain"
	"prodsearch/internal/ui/input/types"
)

// OptionSelectMode picks one entry from a fixed list of options
type OptionSelectMode struct {
	name    string
	count   int
	current func(ctx types.Context) int
	choose  func(index int) types.Action
	index   int
}

// NewRegionSelectMode lists domain.Regions
func NewRegionSelectMode() *OptionSelectMode {
	return &OptionSelectMode{
		name:    "region",
		count:   len(domain.Regions),
		current: func(ctx types.Context) int { return ctx.RegionIndex() },
		choose:  func(i int) types.Action { return types.SelectRegionAction{Index: i} },
	}
}

// NewLimitSelectMode lists domain.PageSizes
func NewLimitSelectMode() *OptionSelectMode {
	return &OptionSelectMode{
		name:    "limit",
		count:   len(domain.PageSizes),
		current: func(ctx types.Context) int { return ctx.LimitIndex() },
		choose:  func(i int) types.Action { return types.SelectLimitAction{Index: i} },
	}
}

func (m *OptionSelectMode) Name() string {
	return m.name
}

func (m *OptionSelectMode) Enter(ctx types.Context) []types.Action {
	m.index = m.current(ctx)
	if m.index < 0 || m.index >= m.count {
		m.index = 0
	}
	return []types.Action{types.UpdateOptionIndexAction{Index: m.index}}
}

func (m *OptionSelectMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

// HandleKey processes key messages for option selection
func (m *OptionSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "enter":
		return []types.Action{
			m.choose(m.index),
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "up", "k":
		m.index--
		if m.index < 0 {
			m.index = m.count - 1
		}
		return []types.Action{types.UpdateOptionIndexAction{Index: m.index}}, true

	case "down", "j":
		m.index++
		if m.index >= m.count {
			m.index = 0
		}
		return []types.Action{types.UpdateOptionIndexAction{Index: m.index}}, true
	}

	return nil, false
}

// CurrentIndex returns the highlighted option
func (m *OptionSelectMode) CurrentIndex() int {
	return m.index
}
