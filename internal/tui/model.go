package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitctl/internal/constants"
	"habitctl/internal/models"
	"habitctl/internal/store"
)

type LoginFormModel struct {
	Email    string
	Password string
}

type HabitFormModel struct {
	Name   string
	Type   string
	Target string
	Unit   string
}

type KeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Add     key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Logout  key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle done")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add habit")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete habit")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Logout:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Toggle, k.Add, k.Refresh, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Up, k.Down},
		{k.Toggle, k.Add, k.Delete, k.Refresh},
		{k.Logout, k.Quit},
	}
}

type Model struct {
	session *store.Session
	habits  *store.Habits

	state     constants.SessionState
	keys      KeyMap
	help      help.Model
	spinner   spinner.Model
	form      *huh.Form
	loginForm *LoginFormModel
	habitForm *HabitFormModel

	cursor       int
	today        string
	deleteTarget models.Habit
	busy         bool
	statusMsg    string
	errMsg       string
	width        int
	height       int
	quitting     bool
}

func NewModel(session *store.Session, habits *store.Habits) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		session: session,
		habits:  habits,
		state:   constants.StateLogin,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		today:   time.Now().Format(constants.DateFormat),
	}
	m.form = m.newLoginForm()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.form.Init(), restoreSession(m.session))
}

func (m *Model) newLoginForm() *huh.Form {
	m.loginForm = &LoginFormModel{}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Email").Value(&m.loginForm.Email),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&m.loginForm.Password),
	))
}

func (m *Model) newHabitForm() *huh.Form {
	m.habitForm = &HabitFormModel{Type: string(constants.HabitTypeBoolean), Target: "1"}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&m.habitForm.Name),
		huh.NewSelect[string]().Title("Type").
			Options(
				huh.NewOption("boolean", string(constants.HabitTypeBoolean)),
				huh.NewOption("count", string(constants.HabitTypeCount)),
				huh.NewOption("duration", string(constants.HabitTypeDuration)),
			).
			Value(&m.habitForm.Type),
		huh.NewInput().Title("Target per day").Value(&m.habitForm.Target),
		huh.NewInput().Title("Unit (optional)").Value(&m.habitForm.Unit),
	))
}

func (m *Model) habitData() models.HabitData {
	target, err := strconv.ParseFloat(m.habitForm.Target, 64)
	if err != nil || target <= 0 {
		target = 1
	}
	return models.HabitData{
		Name:        m.habitForm.Name,
		HabitType:   constants.HabitType(m.habitForm.Type),
		TargetValue: target,
		Unit:        m.habitForm.Unit,
	}
}

// entryForHabit finds today's cached entry for a habit, if any.
func (m Model) entryForHabit(habitID int) (models.Entry, bool) {
	for _, entry := range m.habits.EntryList() {
		if entry.HabitID == habitID {
			return entry, true
		}
	}
	return models.Entry{}, false
}

// Messages

type authDoneMsg struct {
	result store.Result
}

type dataRefreshedMsg struct{}

type opDoneMsg struct {
	err    string
	status string
}

// Commands

func restoreSession(session *store.Session) tea.Cmd {
	return func() tea.Msg {
		return authDoneMsg{result: session.Restore(context.Background())}
	}
}

func loginCmd(session *store.Session, email, password string) tea.Cmd {
	return func() tea.Msg {
		return authDoneMsg{result: session.Login(context.Background(), email, password)}
	}
}

func refreshData(habits *store.Habits, today string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		habits.FetchHabits(ctx)
		habits.FetchDashboardStats(ctx)
		habits.FetchEntriesForDate(ctx, today)
		return dataRefreshedMsg{}
	}
}

func createHabitCmd(habits *store.Habits, data models.HabitData) tea.Cmd {
	return func() tea.Msg {
		result := habits.CreateHabit(context.Background(), data)
		if !result.Success {
			return opDoneMsg{err: result.Error}
		}
		return opDoneMsg{status: "Created " + result.Habit.Name}
	}
}

func deleteHabitCmd(habits *store.Habits, id int, name string) tea.Cmd {
	return func() tea.Msg {
		result := habits.DeleteHabit(context.Background(), id)
		if !result.Success {
			return opDoneMsg{err: result.Error}
		}
		return opDoneMsg{status: "Deleted " + name}
	}
}

func toggleEntryCmd(habits *store.Habits, habitID int, today string, existing *models.Entry) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if existing != nil {
			completed := !existing.Completed
			result := habits.UpdateEntry(ctx, existing.ID, models.EntryUpdate{Completed: &completed})
			if !result.Success {
				return opDoneMsg{err: result.Error}
			}
		} else {
			result := habits.CreateEntry(ctx, models.EntryData{HabitID: habitID, Date: today, Completed: true})
			if !result.Success {
				return opDoneMsg{err: result.Error}
			}
		}
		habits.FetchEntriesForDate(ctx, today)
		return opDoneMsg{}
	}
}
