package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitctl/internal/constants"
	"habitctl/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case authDoneMsg:
		m.busy = false
		if msg.result.Success {
			m.state = constants.StateHabits
			m.errMsg = ""
			m.busy = true
			return m, refreshData(m.habits, m.today)
		}
		if m.state != constants.StateLogin {
			m.state = constants.StateLogin
			m.form = m.newLoginForm()
			cmds = append(cmds, m.form.Init())
		}
		// A missing stored session is the normal first-run path; only
		// surface real login failures.
		if m.session.State().Err != "" {
			m.errMsg = m.session.State().Err
		}
		return m, tea.Batch(cmds...)

	case dataRefreshedMsg:
		m.busy = false
		if err := m.habits.Err(); err != "" {
			m.errMsg = err
		}
		if m.cursor >= len(m.habits.HabitList()) {
			m.cursor = 0
		}
		return m, nil

	case opDoneMsg:
		m.busy = false
		m.statusMsg = msg.status
		m.errMsg = msg.err
		if msg.err == "" {
			m.busy = true
			return m, refreshData(m.habits, m.today)
		}
		return m, nil
	}

	switch m.state {
	case constants.StateLogin, constants.StateAddHabit:
		return m.updateForm(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateBrowse(msg)
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if m.state == constants.StateAddHabit {
				m.state = constants.StateHabits
				return m, nil
			}
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		switch m.state {
		case constants.StateLogin:
			m.busy = true
			email, password := m.loginForm.Email, m.loginForm.Password
			m.form = m.newLoginForm()
			return m, tea.Batch(m.form.Init(), loginCmd(m.session, email, password))
		case constants.StateAddHabit:
			data := m.habitData()
			if err := validation.HabitData(data); err != nil {
				m.errMsg = err.Error()
				m.state = constants.StateHabits
				return m, nil
			}
			m.state = constants.StateHabits
			m.busy = true
			return m, createHabitCmd(m.habits, data)
		}
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		m.state = constants.StateHabits
		m.busy = true
		return m, deleteHabitCmd(m.habits, m.deleteTarget.ID, m.deleteTarget.Name)
	case "n", "N", "esc":
		m.state = constants.StateHabits
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.NextTab):
		m.state = nextState(m.state)
		m.statusMsg = ""

	case key.Matches(keyMsg, m.keys.PrevTab):
		m.state = prevState(m.state)
		m.statusMsg = ""

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.habits.HabitList())-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.state == constants.StateToday {
			habits := m.habits.HabitList()
			if m.cursor < len(habits) {
				habit := habits[m.cursor]
				m.busy = true
				if entry, ok := m.entryForHabit(habit.ID); ok {
					return m, toggleEntryCmd(m.habits, habit.ID, m.today, &entry)
				}
				return m, toggleEntryCmd(m.habits, habit.ID, m.today, nil)
			}
		}

	case key.Matches(keyMsg, m.keys.Add):
		if m.state == constants.StateHabits {
			m.state = constants.StateAddHabit
			m.form = m.newHabitForm()
			return m, m.form.Init()
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if m.state == constants.StateHabits {
			habits := m.habits.HabitList()
			if m.cursor < len(habits) {
				m.deleteTarget = habits[m.cursor]
				m.state = constants.StateConfirmDelete
			}
		}

	case key.Matches(keyMsg, m.keys.Refresh):
		m.busy = true
		return m, refreshData(m.habits, m.today)

	case key.Matches(keyMsg, m.keys.Logout):
		m.session.Logout()
		m.state = constants.StateLogin
		m.cursor = 0
		m.statusMsg = ""
		m.errMsg = ""
		m.form = m.newLoginForm()
		return m, m.form.Init()
	}

	return m, nil
}

func nextState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateHabits:
		return constants.StateToday
	case constants.StateToday:
		return constants.StateStats
	case constants.StateStats:
		return constants.StateHabits
	}
	return s
}

func prevState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateHabits:
		return constants.StateStats
	case constants.StateToday:
		return constants.StateHabits
	case constants.StateStats:
		return constants.StateToday
	}
	return s
}
