package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"votedash/internal/config"
	"votedash/internal/tally"
)

// DashboardModel is the bubbletea model for the live vote dashboard. The
// view is recomputed from the tally on every render.
type DashboardModel struct {
	tally   *tally.Tally
	ui      config.UIConfig
	styles  Styles
	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	layout  LayoutConfig
	logger  *zap.Logger

	quitting bool
}

// NewDashboardModel creates a dashboard over t. A nil logger disables logging.
func NewDashboardModel(t *tally.Tally, ui config.UIConfig, styles Styles, logger *zap.Logger) DashboardModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Live

	h := help.New()
	h.Styles.ShortKey = styles.Key
	h.Styles.FullKey = styles.Key

	return DashboardModel{
		tally:   t,
		ui:      ui,
		styles:  styles,
		keys:    DefaultKeyMap(),
		help:    h,
		spinner: sp,
		layout:  NewLayoutConfig(DefaultWidth, DefaultHeight),
		logger:  logger,
	}
}

// SetSize updates the layout for a terminal of the given size.
func (m *DashboardModel) SetSize(w, h int) {
	m.layout = NewLayoutConfig(w, h)
	m.help.Width = m.layout.ContentWidth()
}

// Stats returns the current derived stats.
func (m DashboardModel) Stats() tally.Stats {
	return m.tally.Stats()
}

// Init starts the live indicator.
func (m DashboardModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.logger.Debug("window resized", zap.Int("width", msg.Width), zap.Int("height", msg.Height))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.VotePositive):
			m.vote(tally.Positive, msg)
		case key.Matches(msg, m.keys.VoteNegative):
			m.vote(tally.Negative, msg)
		case key.Matches(msg, m.keys.Reset):
			m.tally.Reset()
			m.logger.Info("tally reset")
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m DashboardModel) vote(k tally.Kind, msg tea.KeyMsg) {
	m.tally.RecordVote(k)
	m.logger.Info("vote recorded", zap.Stringer("kind", k), zap.String("key", msg.String()))
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	width := m.layout.ContentWidth()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	s := m.tally.Stats()

	sections := []string{
		center.Render(m.renderHeader()),
		m.renderTotal(s),
		m.renderCards(s),
		center.Render(m.styles.Muted.Render(fmt.Sprintf("press %s to %s",
			m.styles.Key.Render(m.keys.Reset.Help().Key), m.keys.Reset.Help().Desc))),
		m.styles.RenderDivider(width),
		m.help.View(m.keys),
	}
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m DashboardModel) renderHeader() string {
	live := m.styles.LiveBadge.Render(m.spinner.View() + " LIVE")
	return lipgloss.JoinVertical(lipgloss.Center,
		live,
		m.styles.Title.Render(m.ui.Title),
		m.styles.Subtitle.Render(m.ui.Subtitle),
	)
}

func (m DashboardModel) renderTotal(s tally.Stats) string {
	inner := m.layout.ContentWidth() - CardChrome
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	lines := []string{
		center.Render(m.styles.Heading.Render("Total Votes")),
		center.Render(m.styles.Total.Render(humanize.Comma(int64(s.Total)))),
	}
	// The bar only appears once there is something to split.
	if s.Total > 0 {
		lines = append(lines, RenderBar(m.styles, m.layout.BarWidth(), s))
	}
	return m.styles.Card.Width(m.layout.ContentWidth() - 2).Render(strings.Join(lines, "\n"))
}

func (m DashboardModel) renderCards(s tally.Stats) string {
	pos := m.renderCard(tally.Positive, s)
	neg := m.renderCard(tally.Negative, s)
	if m.layout.IsCompact {
		return lipgloss.JoinVertical(lipgloss.Left, pos, neg)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pos, strings.Repeat(" ", CardGap), neg)
}

func (m DashboardModel) renderCard(k tally.Kind, s tally.Stats) string {
	label, badge, count, binding := m.ui.Labels.Positive, m.styles.PositiveBadge, m.styles.PositiveCount, m.keys.VotePositive
	if k == tally.Negative {
		label, badge, count, binding = m.ui.Labels.Negative, m.styles.NegativeBadge, m.styles.NegativeCount, m.keys.VoteNegative
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		badge.Render(tally.FormatPercent(s.Percentage(k))),
		m.styles.Heading.Render(label),
		count.Render(humanize.Comma(int64(s.Count(k)))),
		m.styles.Muted.Render(fmt.Sprintf("[%s] %s", m.styles.Key.Render(binding.Help().Key), binding.Help().Desc)),
	)
	return m.styles.Card.Width(m.layout.CardWidth() - 2).Render(body)
}
