package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"prodsearch/internal/i18n"
	"prodsearch/internal/session"
	"prodsearch/internal/ui/state"
	"prodsearch/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	session          *session.Session
	help             help.Model
	keys             help.KeyMap
	spinnerView      string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, sess *session.Session, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		session:          sess,
		help:             help.New(),
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetHelp sets the help model and the bindings it renders
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(view string) {
	vm.spinnerView = view
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.session
	tr := s.Translator()
	region := s.Region()

	vs := views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		SearchLabel:   tr.T(i18n.SearchLabel),
		QueryText:     vm.inputTransformer.QueryText(s.Query(), tr),
		Editing:       vm.inputTransformer.Editing(),
		RegionLabel:   region.Label,
		LimitLabel:    tr.T(i18n.ItemsPerPage, s.Limit()),
		Loading:       s.Loading(),
		SpinnerView:   vm.spinnerView,
		ErrorMessage:  s.Message(),
		Items:         s.Items(),
		Cursor:        vm.state.Cursor,
		SkeletonCount: s.Limit(),
		Currency:      region.CurrencySymbol(),
		ShowPrices:    vm.state.ShowPrices,
		CardLabels: views.CardLabels{
			AdultFrom: tr.T(i18n.AdultFrom),
			ChildFrom: tr.T(i18n.ChildFrom),
		},
		Page:          s.Page(),
		TotalPages:    s.TotalPages(),
		InputMode:     vm.inputTransformer.GetInputModeString(),
		Options:       vm.inputTransformer.Options(tr),
		OptionIndex:   vm.state.OptionIndex,
		StatusMessage: vm.state.StatusMessage,
	}

	if s.Status() == session.Idle {
		vs.EmptyHint = tr.T(i18n.SearchPrompt)
	}
	if s.TotalPages() > 1 {
		vs.PageLabel = tr.T(i18n.PageOf, s.Page(), s.TotalPages())
	}
	if vm.keys != nil {
		vm.help.Width = vm.state.Width
		vs.HelpView = vm.help.View(vm.keys)
	}

	return vs
}
