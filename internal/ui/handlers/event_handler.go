package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"prodsearch/internal/eventbus"
	"prodsearch/internal/i18n"
	"prodsearch/internal/logger"
	"prodsearch/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state      *state.AppState
	translator func() i18n.Translator
}

// NewEventHandler creates a new event handler. translator returns the lookup
// for the currently selected region.
func NewEventHandler(appState *state.AppState, translator func() i18n.Translator) *EventHandler {
	return &EventHandler{
		state:      appState,
		translator: translator,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchStartedEvent:
		h.state.StatusMessage = h.translator().T(i18n.Searching)

	case eventbus.PageRequestedEvent:
		h.state.StatusMessage = h.translator().T(i18n.Searching)

	case eventbus.SearchCompletedEvent:
		h.state.StatusMessage = h.translator().T(i18n.ResultsFound, e.TotalCount)

	case eventbus.SearchFailedEvent:
		// The session message is shown in the error banner
		h.state.StatusMessage = ""

	case eventbus.ResponseDiscardedEvent:
		logger.Debug("stale response dropped",
			zap.Uint64("seq", e.Seq),
			zap.Uint64("current", e.Current))
	}

	return nil
}
