package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"prodsearch/internal/catalog"
	"prodsearch/internal/config"
	"prodsearch/internal/domain"
	"prodsearch/internal/i18n"
	"prodsearch/internal/logger"
	"prodsearch/internal/session"
	"prodsearch/internal/ui/commands"
	"prodsearch/internal/ui/handlers"
	"prodsearch/internal/ui/input"
	inputtypes "prodsearch/internal/ui/input/types"
	"prodsearch/internal/ui/state"
	"prodsearch/internal/ui/viewmodels"
	"prodsearch/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	config  *config.Config
	state   *state.AppState // UI-only state
	session *session.Session

	spinner spinner.Model
	// a tick loop is running
	spinning bool
	help    help.Model
	keys    keyMap

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpRender   *HelpRenderer
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. ctx bounds every catalog request.
func NewModel(ctx context.Context, cfg *config.Config, sess *session.Session, client catalog.Client) *Model {
	appState := state.NewAppState()
	appState.ShowPrices = cfg.UI.ShowPrices

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		config:       cfg,
		state:        appState,
		session:      sess,
		spinner:      sp,
		help:         help.New(),
		keys:         newKeyMap(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpRender:   NewHelpRenderer(),
		pager:        NewPager(),
	}

	sess.SetTranslator(i18n.New(sess.Region().Language))

	m.eventHandler = handlers.NewEventHandler(appState, sess.Translator)
	m.cmdExecutor = commands.NewExecutor(ctx, sess, client, appState)

	m.viewModel = viewmodels.NewViewModel(appState, sess, *m.inputHandler.GetTextInput())
	m.viewModel.SetHelp(m.help, m.keys)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Session returns the search session driven by this model
func (m *Model) Session() *session.Session {
	return m.session
}

// Init runs the initial search when a query was given
func (m *Model) Init() tea.Cmd {
	if m.session.Query() == "" {
		return nil
	}
	return m.withSpinner(m.cmdExecutor.ExecuteSearch())
}

// withSpinner starts the spinner tick loop if a request went out and no loop
// is running yet. The loop ends on the first tick after loading finishes.
func (m *Model) withSpinner(cmd tea.Cmd) tea.Cmd {
	if m.spinning || !m.session.Loading() {
		return cmd
	}
	m.spinning = true
	return tea.Batch(cmd, m.spinner.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.keys)
		return m, nil

	case tea.KeyMsg:
		if m.state.InPager {
			return m, nil
		}

		ctx := &input.ModelContext{
			State:   m.state,
			Session: m.session,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, m.withSpinner(tea.Batch(cmds...))

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPager {
		return ""
	}

	var mode viewmodels.InputMode
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeQuery:
		mode = viewmodels.InputModeQuery
	case inputtypes.ModeRegion:
		mode = viewmodels.InputModeRegion
	case inputtypes.ModeLimit:
		mode = viewmodels.InputModeLimit
	default:
		mode = viewmodels.InputModeNormal
	}
	m.viewModel.SetInputMode(mode)

	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	m.viewModel.SetSpinner(m.spinner.View())

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	logger.Debug("processAction", zap.String("action", action.Type()))

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		total := len(m.session.Items())
		if m.session.Loading() {
			total = 0
		}
		switch a.Direction {
		case "up":
			m.state.MoveCursor(-1, total)
		case "down":
			m.state.MoveCursor(1, total)
		case "home":
			m.state.SetCursor(0, total)
		case "end":
			m.state.SetCursor(total-1, total)
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeQuery {
			m.session.SetQuery(strings.TrimSpace(a.Text))
			return m.cmdExecutor.ExecuteSearch()
		}

	case inputtypes.SearchAction:
		return m.cmdExecutor.ExecuteSearch()

	case inputtypes.ChangePageAction:
		return m.cmdExecutor.ExecuteChangePage(a.Page)

	case inputtypes.CycleRegionAction:
		ctx := &input.ModelContext{State: m.state, Session: m.session}
		m.selectRegion((ctx.RegionIndex() + 1) % len(domain.Regions))

	case inputtypes.CycleLimitAction:
		ctx := &input.ModelContext{State: m.state, Session: m.session}
		m.selectLimit((ctx.LimitIndex() + 1) % len(domain.PageSizes))

	case inputtypes.SelectRegionAction:
		m.selectRegion(a.Index)

	case inputtypes.SelectLimitAction:
		m.selectLimit(a.Index)

	case inputtypes.UpdateOptionIndexAction:
		m.state.OptionIndex = a.Index

	case inputtypes.OpenDetailsAction:
		items := m.session.Items()
		if m.state.Cursor < 0 || m.state.Cursor >= len(items) {
			return nil
		}
		doc := m.helpRender.RenderProductDetails(items[m.state.Cursor], m.session.Region(), m.session.Translator())
		return m.showInPager(doc)

	case inputtypes.ShowHelpAction:
		return m.showInPager(m.helpRender.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) selectRegion(index int) {
	if index < 0 || index >= len(domain.Regions) {
		return
	}
	region := domain.Regions[index]
	if err := m.session.SetRegion(region.ID); err != nil {
		logger.Warn("region change rejected", zap.Error(err))
		return
	}
	m.session.SetTranslator(i18n.New(region.Language))
}

func (m *Model) selectLimit(index int) {
	if index < 0 || index >= len(domain.PageSizes) {
		return
	}
	if err := m.session.SetLimit(domain.PageSizes[index]); err != nil {
		logger.Warn("page size change rejected", zap.Error(err))
	}
}

// showInPager returns a command that hands the terminal to ov until it exits
func (m *Model) showInPager(content string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return pagerMsg{err: errNoProgram}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case commands.FetchResultMsg:
		return m, m.withSpinner(m.cmdExecutor.ExecuteApplyResult(msg))

	case spinner.TickMsg:
		if !m.session.Loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			logger.Error("pager failed", zap.Error(msg.err))
			m.state.StatusMessage = m.session.Translator().T(i18n.PagerFailed)
			return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPager = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPager = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}
