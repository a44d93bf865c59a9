package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"habitctl/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == constants.StateLogin {
		return docStyle.Render(m.viewLogin())
	}

	var content string
	switch m.state {
	case constants.StateHabits:
		content = m.viewHabits()
	case constants.StateToday:
		content = m.viewToday()
	case constants.StateStats:
		content = m.viewStats()
	case constants.StateAddHabit:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.viewFooter(),
	)
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString("habitctl — sign in\n\n")
	if m.busy {
		b.WriteString(m.spinner.View() + " signing in...\n")
	} else {
		b.WriteString(m.form.View())
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	return b.String()
}

func (m Model) viewTabs() string {
	var tabs []string
	titles := []struct {
		state constants.SessionState
		title string
	}{
		{constants.StateHabits, "Habits"},
		{constants.StateToday, "Today"},
		{constants.StateStats, "Stats"},
	}
	for _, t := range titles {
		if m.state == t.state || (m.state == constants.StateAddHabit || m.state == constants.StateConfirmDelete) && t.state == constants.StateHabits {
			tabs = append(tabs, activeTabStyle.Render(t.title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(t.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHabits() string {
	habits := m.habits.HabitList()
	if len(habits) == 0 {
		return mutedStyle.Render("No habits yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, habit := range habits {
		line := fmt.Sprintf("%s  %s", habit.Name, mutedStyle.Render(string(habit.HabitType)))
		if habit.CurrentStreak > 0 {
			line += fmt.Sprintf("  🔥%d", habit.CurrentStreak)
		}
		if !habit.IsActive {
			line += mutedStyle.Render("  inactive")
		}
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewToday() string {
	habits := m.habits.HabitList()
	if len(habits) == 0 {
		return mutedStyle.Render("No habits to track today.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.today)
	for i, habit := range habits {
		mark := "[ ]"
		if entry, ok := m.entryForHabit(habit.ID); ok && entry.Completed {
			mark = doneStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", mark, habit.Name)
		if i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewStats() string {
	stats := m.habits.Stats()
	if stats == nil {
		return mutedStyle.Render("No stats yet. Press 'r' to refresh.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Today:             %d/%d completed\n", stats.TodayCompleted, stats.TodayTotal)
	fmt.Fprintf(&b, "Current streak:    %d days\n", stats.CurrentStreak)
	fmt.Fprintf(&b, "Habits:            %d active / %d total\n", stats.ActiveHabits, stats.TotalHabits)
	fmt.Fprintf(&b, "Total completions: %d\n", stats.TotalCompletions)
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return fmt.Sprintf("Delete habit %q? This removes its history on the server. (y/n)", m.deleteTarget.Name)
}

func (m Model) viewFooter() string {
	var parts []string
	if m.busy {
		parts = append(parts, m.spinner.View()+" working...")
	}
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render(m.errMsg))
	} else if m.statusMsg != "" {
		parts = append(parts, statusStyle.Render(m.statusMsg))
	}
	parts = append(parts, m.help.View(m.keys))
	return docStyle.Render(strings.Join(parts, "\n"))
}
