package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prodsearch/internal/catalog/catalogtest"
	"prodsearch/internal/config"
	"prodsearch/internal/domain"
	"prodsearch/internal/session"
	"prodsearch/internal/ui/commands"
	"prodsearch/internal/ui/views"
)

func newTestModel(t *testing.T, query string) (*Model, *catalogtest.Client) {
	t.Helper()
	client := &catalogtest.Client{}
	sess := session.New()
	sess.SetQuery(query)

	m := NewModel(context.Background(), config.DefaultConfig(), sess, client)
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 200})
	return m, client
}

// drain runs cmd and feeds any fetch results back into the model
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(t, m, c)
		}
	case commands.FetchResultMsg:
		_, next := m.Update(msg)
		drain(t, m, next)
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *Model, s string) {
	t.Helper()
	_, cmd := m.Update(keyMsg(s))
	drain(t, m, cmd)
}

// typeText sends runes without running the cursor blink commands they return
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// collect runs cmd and returns the messages it produced, flattening batches
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func firstPage(req domain.PageRequest) bool { return req.Offset == 0 }

func TestQuerySubmitRunsSearch(t *testing.T) {
	m, client := newTestModel(t, "")
	client.On("Fetch", mock.Anything, domain.PageRequest{Query: "paris", RegionID: "en", Offset: 0, Limit: 12}).
		Return(&domain.ResultPage{Items: catalogtest.Products(1, 12), TotalCount: 30}, nil).Once()

	m.Update(keyMsg("/"))
	typeText(m, "paris")
	press(t, m, "enter")

	assert.Equal(t, "paris", m.Session().Query())
	out := m.View()
	assert.Contains(t, out, "Experience 1")
	assert.Contains(t, out, "Page 1 of 3")
	client.AssertExpectations(t)
}

func TestEscKeepsPreviousQuery(t *testing.T) {
	m, client := newTestModel(t, "rome")

	m.Update(keyMsg("/"))
	typeText(m, "x")
	press(t, m, "esc")

	assert.Equal(t, "rome", m.Session().Query())
	client.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestEmptyQueryDoesNotSearch(t *testing.T) {
	m, client := newTestModel(t, "")

	m.Update(keyMsg("/"))
	typeText(m, "   ")
	press(t, m, "enter")

	assert.False(t, m.Session().Loading())
	client.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestNextPageRequestsOffset(t *testing.T) {
	m, client := newTestModel(t, "paris")
	client.On("Fetch", mock.Anything, mock.MatchedBy(firstPage)).
		Return(&domain.ResultPage{Items: catalogtest.Products(1, 12), TotalCount: 30}, nil).Once()
	client.On("Fetch", mock.Anything, mock.MatchedBy(func(r domain.PageRequest) bool { return r.Offset == 12 })).
		Return(&domain.ResultPage{Items: catalogtest.Products(13, 12), TotalCount: 30}, nil).Once()

	press(t, m, "r")
	press(t, m, "right")

	assert.Equal(t, 2, m.Session().Page())
	out := m.View()
	assert.Contains(t, out, "Experience 13")
	assert.Contains(t, out, "Page 2 of 3")
	client.AssertExpectations(t)
}

func TestPreviousPageOnFirstPageIsIgnored(t *testing.T) {
	m, client := newTestModel(t, "paris")
	client.On("Fetch", mock.Anything, mock.MatchedBy(firstPage)).
		Return(&domain.ResultPage{Items: catalogtest.Products(1, 12), TotalCount: 30}, nil).Once()

	press(t, m, "r")
	press(t, m, "left")

	assert.Equal(t, 1, m.Session().Page())
	client.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestSkeletonsWhileLoading(t *testing.T) {
	m, _ := newTestModel(t, "paris")

	_, cmd := m.Update(keyMsg("r"))
	require.NotNil(t, cmd)
	require.True(t, m.Session().Loading())

	bar := strings.Repeat("░", views.CardWidth-4)
	assert.Equal(t, 12, strings.Count(m.View(), bar))
}

func TestRegionCycleSwapsLanguage(t *testing.T) {
	m, client := newTestModel(t, "paris")
	client.On("Fetch", mock.Anything, mock.MatchedBy(func(r domain.PageRequest) bool { return r.RegionID == "de-de" })).
		Return(&domain.ResultPage{}, nil).Once()

	press(t, m, "g")
	press(t, m, "g")
	assert.Equal(t, "de-de", m.Session().Region().ID)
	assert.Contains(t, m.View(), "Suchen:")

	press(t, m, "r")
	assert.Equal(t, "Keine Produkte gefunden", m.Session().Message())
	client.AssertExpectations(t)
}

func TestLimitPickerAppliesOnNextSearch(t *testing.T) {
	m, client := newTestModel(t, "paris")
	client.On("Fetch", mock.Anything, mock.MatchedBy(func(r domain.PageRequest) bool { return r.Limit == 24 })).
		Return(&domain.ResultPage{Items: catalogtest.Products(1, 24), TotalCount: 24}, nil).Once()

	press(t, m, "L")
	assert.Contains(t, m.View(), "> 12 items per page")
	press(t, m, "down")
	press(t, m, "enter")
	assert.Equal(t, 24, m.Session().Limit())
	assert.False(t, m.Session().Loading(), "changing the page size does not fetch")

	press(t, m, "r")
	assert.Len(t, m.Session().Items(), 24)
	client.AssertExpectations(t)
}

func TestInitSearchesWhenQueryGiven(t *testing.T) {
	m, client := newTestModel(t, "paris")
	client.On("Fetch", mock.Anything, mock.MatchedBy(firstPage)).
		Return(&domain.ResultPage{Items: catalogtest.Products(1, 3), TotalCount: 3}, nil).Once()

	drain(t, m, m.Init())

	assert.Len(t, m.Session().Items(), 3)
	client.AssertExpectations(t)
}

func TestKeysIgnoredInPager(t *testing.T) {
	m, client := newTestModel(t, "paris")

	m.Update(pauseRenderingMsg{})
	_, cmd := m.Update(keyMsg("r"))
	assert.Nil(t, cmd)
	assert.Empty(t, m.View())

	m.Update(resumeRenderingMsg{})
	assert.NotEmpty(t, m.View())
	client.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestDetailsWithoutProgramReportsPagerError(t *testing.T) {
	m, client := newTestModel(t, "paris")
	client.On("Fetch", mock.Anything, mock.Anything).
		Return(&domain.ResultPage{Items: catalogtest.Products(1, 2), TotalCount: 2}, nil).Once()
	press(t, m, "r")

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, pagerMsg{}, msg)

	m.Update(msg)
	assert.Contains(t, m.View(), "Pager unavailable")
}

func TestPagerErrorIsTranslated(t *testing.T) {
	m, _ := newTestModel(t, "")
	press(t, m, "g")
	press(t, m, "g")
	require.Equal(t, "de-de", m.Session().Region().ID)

	m.Update(pagerMsg{err: errNoProgram})
	assert.Contains(t, m.View(), "Anzeige nicht verfügbar")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "")

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSpinnerIdleWithoutSearch(t *testing.T) {
	m, _ := newTestModel(t, "")

	assert.Nil(t, m.Init())

	_, cmd := m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd, "no tick loop while idle")
}

func TestSpinnerTicksOnlyWhileLoading(t *testing.T) {
	m, client := newTestModel(t, "paris")
	client.On("Fetch", mock.Anything, mock.Anything).
		Return(&domain.ResultPage{Items: catalogtest.Products(1, 3), TotalCount: 3}, nil).Once()

	_, cmd := m.Update(keyMsg("r"))
	var tick spinner.TickMsg
	var result commands.FetchResultMsg
	for _, msg := range collect(cmd) {
		switch msg := msg.(type) {
		case spinner.TickMsg:
			tick = msg
		case commands.FetchResultMsg:
			result = msg
		}
	}
	require.NotZero(t, tick.ID, "search starts the spinner")

	_, next := m.Update(tick)
	assert.NotNil(t, next, "spinner keeps ticking while loading")

	m.Update(result)
	require.False(t, m.Session().Loading())

	_, next = m.Update(tick)
	assert.Nil(t, next, "first tick after loading ends the loop")
}

func TestSpinnerNotDuplicatedAcrossRequests(t *testing.T) {
	m, _ := newTestModel(t, "paris")

	_, cmd := m.Update(keyMsg("r"))
	require.NotNil(t, cmd)
	require.True(t, m.spinning)

	assert.Nil(t, m.Init(), "a running loop is not started twice")
}
