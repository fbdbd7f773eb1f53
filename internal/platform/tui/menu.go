package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// handleMenuKey processes keyboard input for level selection.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		cmd := m.startSelected()
		return m, cmd

	case MenuActionScoreboard:
		m.scoreboard = NewScoreboardModel(m.store, m.levels, m.runtime.ScreenW, m.runtime.ScreenH)
		m.mode = modeScores
	}
	return m, nil
}

// updateScores forwards a message to the scoreboard and leaves it on back.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}
	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.mode = modeMenu
		return m, nil
	}
	return m, cmd
}

// viewMenu renders the level picker.
func (m Model) viewMenu() string {
	width := m.runtime.ScreenW
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("P L A T F O R M E R"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(menuDimStyle.Render("No levels found."), width))
		b.WriteString("\n")
	}

	for i, l := range m.levels {
		line := fmt.Sprintf("%-20s %3ds  best %d", l.Title(), l.TimeLimit, m.best[l.ID])
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(centerText(menuErrorStyle.Render(m.err.Error()), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("In game: arrows/WASD move, Space jump, P pause, Ctrl+S screenshot"), width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
