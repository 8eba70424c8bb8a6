package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/logger"
	"github.com/julianstephens/wellday/internal/models"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateCheckin
)

type Model struct {
	ctx         *cli.Context
	state       SessionState
	keys        KeyMap
	help        help.Model
	form        *huh.Form
	checkinForm *CheckinForm
	entries     []models.DailyEntry
	streak      int
	last        *cli.CheckinResult
	notice      string
	err         error
	quitting    bool
	width       int
	height      int
}

// NewModel opens on the check-in form unless today already has an entry.
func NewModel(ctx *cli.Context) Model {
	m := Model{
		ctx:   ctx,
		state: StateDashboard,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}

	streak, entries, err := ctx.Streak()
	if err != nil {
		logger.Error("Failed to read check-in log", "error", err)
		m.err = err
		return m
	}
	m.entries = entries
	m.streak = streak

	if !m.checkedInToday() {
		m.startCheckin()
	}
	return m
}

// Err returns the persistence failure that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) State() SessionState {
	return m.state
}

func (m Model) checkedInToday() bool {
	if len(m.entries) == 0 {
		return false
	}
	today, err := m.ctx.Today()
	if err != nil {
		return false
	}
	return m.entries[len(m.entries)-1].Date == today.Format(constants.DateFormat)
}

func (m *Model) startCheckin() tea.Cmd {
	m.checkinForm = NewCheckinFormModel()
	m.form = NewCheckinForm(m.checkinForm)
	m.state = StateCheckin
	m.notice = ""
	return m.form.Init()
}

func (m Model) ShortHelp() []key.Binding {
	if m.state == StateCheckin {
		return []key.Binding{m.keys.Cancel, m.keys.Quit}
	}
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	if m.state == StateCheckin && m.form != nil {
		return m.form.Init()
	}
	return nil
}
