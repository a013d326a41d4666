package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"votedash/cmd/votedash/ui"
	"votedash/internal/logging"
	"votedash/internal/tally"
)

// newSession builds a fresh tally and dashboard model sharing a session id
// in every log line. The returned func detaches the tally observer.
func newSession() (ui.DashboardModel, *tally.Tally, func()) {
	sessionID := uuid.NewString()
	base := logger.With(zap.String("session_id", sessionID))

	t := tally.New()
	tallyLog := base.Named(string(logging.CategoryTally))
	unsubscribe := t.Subscribe(func(s tally.Stats) {
		tallyLog.Debug("tally changed",
			zap.Uint64("positive", s.Positive),
			zap.Uint64("negative", s.Negative),
			zap.Uint64("total", s.Total),
			zap.String("positive_pct", tally.FormatPercent(s.PositivePercentage)),
			zap.String("negative_pct", tally.FormatPercent(s.NegativePercentage)),
		)
	})

	styles := ui.NewStyles(ui.ThemeFor(cfg.Theme))
	m := ui.NewDashboardModel(t, cfg.UIConfig, styles, base.Named(string(logging.CategoryUI)))
	return m, t, unsubscribe
}

// runDashboard runs the interactive dashboard until the user quits.
func runDashboard() error {
	m, t, unsubscribe := newSession()
	defer unsubscribe()

	boot := logger.Category(logging.CategoryBoot)
	boot.Info("dashboard started", zap.String("theme", cfg.Theme))

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}

	s := t.Stats()
	boot.Info("dashboard stopped", zap.Uint64("total", s.Total))
	return nil
}
