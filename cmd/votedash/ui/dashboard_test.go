package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"votedash/internal/config"
	"votedash/internal/tally"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestDashboard(t *testing.T) (DashboardModel, *tally.Tally) {
	t.Helper()
	tl := tally.New()
	m := NewDashboardModel(tl, *config.DefaultUIConfig(), NewStyles(LightTheme()), nil)
	m.SetSize(80, 24)
	return m, tl
}

func press(t *testing.T, m DashboardModel, msgs ...tea.Msg) DashboardModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(DashboardModel)
		require.True(t, ok, "Update should return a DashboardModel")
	}
	return m
}

func TestDashboard_InitialView(t *testing.T) {
	m, _ := newTestDashboard(t)
	view := m.View()

	assert.Contains(t, view, "LIVE")
	assert.Contains(t, view, "Voting Dashboard")
	assert.Contains(t, view, "Total Votes")
	assert.Contains(t, view, "Positive Votes")
	assert.Contains(t, view, "Negative Votes")
	assert.Equal(t, 2, strings.Count(view, "0.0%"))
	assert.NotContains(t, view, positiveGlyph, "bar should be hidden with no votes")
	assert.NotContains(t, view, negativeGlyph, "bar should be hidden with no votes")
}

func TestDashboard_VoteKeys(t *testing.T) {
	m, tl := newTestDashboard(t)

	m = press(t, m, runes("p"), runes("+"), tea.KeyMsg{Type: tea.KeyUp}, runes("n"))

	s := tl.Stats()
	assert.Equal(t, uint64(3), s.Positive)
	assert.Equal(t, uint64(1), s.Negative)
	assert.Equal(t, s, m.Stats())

	view := m.View()
	assert.Contains(t, view, "75.0%")
	assert.Contains(t, view, "25.0%")

	pos, neg := BarSegments(m.layout.BarWidth(), s)
	assert.Equal(t, m.layout.BarWidth(), pos+neg)
	assert.Equal(t, pos, strings.Count(view, positiveGlyph))
	assert.Equal(t, neg, strings.Count(view, negativeGlyph))
}

func TestDashboard_NegativeKeys(t *testing.T) {
	m, tl := newTestDashboard(t)

	m = press(t, m, runes("-"), tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, uint64(2), tl.Stats().Negative)

	view := m.View()
	assert.Contains(t, view, "100.0%")
	assert.Contains(t, view, "0.0%")
	assert.NotContains(t, view, positiveGlyph)
	assert.Equal(t, m.layout.BarWidth(), strings.Count(view, negativeGlyph))
}

func TestDashboard_Reset(t *testing.T) {
	m, tl := newTestDashboard(t)

	m = press(t, m, runes("p"), runes("n"), runes("r"))

	assert.Equal(t, tally.Stats{}, tl.Stats())
	view := m.View()
	assert.NotContains(t, view, positiveGlyph)
	assert.NotContains(t, view, negativeGlyph)
	assert.Equal(t, 2, strings.Count(view, "0.0%"))
}

func TestDashboard_IgnoresUnboundKeys(t *testing.T) {
	m, tl := newTestDashboard(t)

	m = press(t, m, runes("x"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, tally.Stats{}, tl.Stats())
	assert.NotEmpty(t, m.View())
}

func TestDashboard_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m, _ := newTestDashboard(t)
		next, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, next.View())
	}
}

func TestDashboard_HelpToggle(t *testing.T) {
	m, _ := newTestDashboard(t)
	assert.False(t, m.help.ShowAll)

	m = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "reset votes")

	m = press(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestDashboard_WindowResize(t *testing.T) {
	m, _ := newTestDashboard(t)

	m = press(t, m, tea.WindowSizeMsg{Width: 40, Height: 30})
	assert.True(t, m.layout.IsCompact)
	assert.Equal(t, m.layout.ContentWidth(), m.help.Width)

	m = press(t, m, runes("p"))
	assert.Equal(t, m.layout.BarWidth(), strings.Count(m.View(), positiveGlyph))
}

func TestDashboard_Init(t *testing.T) {
	m, _ := newTestDashboard(t)
	assert.NotNil(t, m.Init())

	m = press(t, m, m.spinner.Tick())
	assert.NotEmpty(t, m.spinner.View())
}

func TestDashboard_CustomLabels(t *testing.T) {
	ui := *config.DefaultUIConfig()
	ui.Title = "Sprint Retro"
	ui.Labels.Positive = "Keep"
	ui.Labels.Negative = "Drop"

	m := NewDashboardModel(tally.New(), ui, NewStyles(DarkTheme()), nil)
	view := m.View()
	assert.Contains(t, view, "Sprint Retro")
	assert.Contains(t, view, "Keep")
	assert.Contains(t, view, "Drop")
}

func TestDashboard_LogsEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	tl := tally.New()
	m := NewDashboardModel(tl, *config.DefaultUIConfig(), NewStyles(LightTheme()), zap.New(core))

	press(t, m, runes("p"), runes("n"), runes("r"))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "vote recorded", entries[0].Message)
	assert.Equal(t, "positive", entries[0].ContextMap()["kind"])
	assert.Equal(t, "negative", entries[1].ContextMap()["kind"])
	assert.Equal(t, "tally reset", entries[2].Message)
}

func TestDashboard_ResetHintFollowsBinding(t *testing.T) {
	m, tl := newTestDashboard(t)
	assert.Contains(t, m.View(), "press r to reset votes")

	m.keys.Reset = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset votes"))
	assert.Contains(t, m.View(), "press x to reset votes")

	m = press(t, m, runes("p"), runes("x"))
	assert.Equal(t, tally.Stats{}, tl.Stats())
}
