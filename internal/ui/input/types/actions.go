package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search actions
type SearchAction struct{}

func (a SearchAction) Type() string { return "search" }

type ChangePageAction struct {
	Page int
}

func (a ChangePageAction) Type() string { return "change_page" }

// Option actions
type CycleRegionAction struct{}

func (a CycleRegionAction) Type() string { return "cycle_region" }

type CycleLimitAction struct{}

func (a CycleLimitAction) Type() string { return "cycle_limit" }

type SelectRegionAction struct {
	Index int
}

func (a SelectRegionAction) Type() string { return "select_region" }

type SelectLimitAction struct {
	Index int
}

func (a SelectLimitAction) Type() string { return "select_limit" }

// UpdateOptionIndexAction moves the highlight in an option list
type UpdateOptionIndexAction struct {
	Index int
}

func (a UpdateOptionIndexAction) Type() string { return "update_option_index" }

// Pager actions
type OpenDetailsAction struct{}

func (a OpenDetailsAction) Type() string { return "open_details" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

// Application actions
type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
