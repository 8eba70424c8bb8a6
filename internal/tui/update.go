package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state == StateCheckin {
		return m.updateCheckin(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Checkin):
			cmd := m.startCheckin()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateCheckin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Cancel) {
		m.state = StateDashboard
		m.notice = "Check-in cancelled."
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submitCheckin()
	case huh.StateAborted:
		m.state = StateDashboard
		m.notice = "Check-in cancelled."
		return m, nil
	}
	return m, cmd
}

// submitCheckin records the form values. A failed write ends the session so the
// caller can exit with an error.
func (m Model) submitCheckin() (tea.Model, tea.Cmd) {
	res, err := m.ctx.Checkin(m.checkinForm.Input(), "")
	if err != nil {
		if errors.IsPersistence(err) {
			logger.Error("Failed to record check-in", "error", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.state = StateDashboard
		m.notice = errors.Format(err)
		return m, nil
	}

	m.last = res
	m.entries = res.Entries
	m.streak = res.Streak
	m.state = StateDashboard
	return m, nil
}
