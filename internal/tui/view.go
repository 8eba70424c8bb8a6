package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellday/internal/chart"
	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/storage"
)

const (
	maxChartWidth = 80
	chartRows     = 14
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return dangerStyle.Render(errors.Format(m.err))
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🧠 wellday"),
		subtitleStyle.Render("Track mood, sleep, screen time & get wellness tips!"),
	)

	var content string
	if m.state == StateCheckin {
		content = lipgloss.JoinVertical(lipgloss.Left,
			sectionStyle.Render("📋 Daily Check-in"),
			m.form.View(),
		)
	} else {
		content = m.viewDashboard()
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		content,
		"",
		m.help.View(m),
	))
}

func (m Model) viewDashboard() string {
	var parts []string

	if m.last != nil {
		parts = append(parts,
			"",
			successStyle.Render(fmt.Sprintf("✅ Logged! Your Wellness Score today: %s/10",
				storage.FormatDecimal(m.last.Entry.WellnessScore))),
			infoStyle.Render("🧠 Today's Micro Habit: "+m.last.Entry.MicroHabit),
		)
	}
	if m.notice != "" {
		parts = append(parts, "", m.notice)
	}

	parts = append(parts,
		sectionStyle.Render("📈 Mood Journal & Streak Tracker"),
		chart.Render(m.entries, chart.Options{Width: m.chartWidth(), MaxRows: chartRows}),
	)
	if len(m.entries) > 0 {
		parts = append(parts, "", streakStyle.Render(cli.StreakText(m.streak)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) chartWidth() int {
	if m.width <= 0 {
		return 0
	}
	// docStyle padding
	return min(m.width-4, maxChartWidth)
}
