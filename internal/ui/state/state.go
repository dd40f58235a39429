package state

// AppState contains the UI-only state. Search state lives in session.Session.
type AppState struct {
	// Selection state
	Cursor int // highlighted card on the current page

	// Option pickers
	OptionIndex int // highlighted entry while choosing a region or page size

	// UI state
	Width         int
	Height        int
	InPager       bool   // ov owns the terminal
	StatusMessage string // status bar message
	ShowPrices    bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ShowPrices: true,
	}
}

// MoveCursor moves the highlighted card by delta, clamped to [0, total)
func (s *AppState) MoveCursor(delta, total int) {
	s.SetCursor(s.Cursor+delta, total)
}

// SetCursor places the cursor, clamped to [0, total)
func (s *AppState) SetCursor(index, total int) {
	if total <= 0 {
		s.Cursor = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= total {
		index = total - 1
	}
	s.Cursor = index
}

// ResetCursor moves the cursor back to the first card
func (s *AppState) ResetCursor() {
	s.Cursor = 0
}
