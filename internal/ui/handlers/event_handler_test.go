package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"prodsearch/internal/eventbus"
	"prodsearch/internal/i18n"
	"prodsearch/internal/ui/state"
)

func TestStatusFollowsSearchLifecycle(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, func() i18n.Translator { return i18n.English })

	h.HandleEvent(eventbus.SearchStartedEvent{Seq: 1})
	assert.Equal(t, "Searching...", st.StatusMessage)

	h.HandleEvent(eventbus.SearchCompletedEvent{Seq: 1, TotalCount: 30, TotalPages: 3})
	assert.Equal(t, "30 products found", st.StatusMessage)

	h.HandleEvent(eventbus.PageRequestedEvent{Seq: 2, Page: 2})
	assert.Equal(t, "Searching...", st.StatusMessage)

	h.HandleEvent(eventbus.SearchFailedEvent{Seq: 2, Message: "Nothing to return this time"})
	assert.Empty(t, st.StatusMessage)
}

func TestStatusUsesCurrentTranslator(t *testing.T) {
	st := state.NewAppState()
	tr := i18n.English
	h := NewEventHandler(st, func() i18n.Translator { return tr })

	tr = i18n.New(language.German)
	h.HandleEvent(eventbus.SearchCompletedEvent{TotalCount: 5})

	assert.Equal(t, "5 Produkte gefunden", st.StatusMessage)
}
