package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/scoreboard"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show stats beside the table
	sidebarWidth       = 30 // Width of the stats sidebar
)

// statsMsg carries stats and achievements for the scoreboard screen.
type statsMsg struct {
	stats        scoreboard.Stats
	achievements []scoreboard.Achievement
	err          error
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the leaderboard table, play stats and achievements.
// The zero value is usable once sized with NewScoreboardModel or Resize.
type ScoreboardModel struct {
	entries      []scoreboard.Entry
	stats        *scoreboard.Stats
	achievements []scoreboard.Achievement
	statsErr     error
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	ready        bool
	quitting     bool
	goingBack    bool
}

// NewScoreboardModel creates a scoreboard sized for a width×height terminal.
func NewScoreboardModel(width, height int) ScoreboardModel {
	m := ScoreboardModel{
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
		ready:  true,
	}
	m.help.Width = width
	m.table = m.createTable()
	return m
}

// createTable creates a new table with appropriate columns.
func (m ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 6},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	t.SetRows(entryRows(m.entries))
	return t
}

// entryRows formats leaderboard entries as table rows.
func entryRows(entries []scoreboard.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			truncate(e.PlayerName, 14),
			fmt.Sprintf("%d", e.Score),
			e.Date.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// WithEntries replaces the leaderboard rows.
func (m ScoreboardModel) WithEntries(entries []scoreboard.Entry) ScoreboardModel {
	m.entries = entries
	if m.ready {
		m.table.SetRows(entryRows(entries))
		m.table.GotoTop()
	}
	return m
}

// WithStats stores the result of a stats fetch.
func (m ScoreboardModel) WithStats(msg statsMsg) ScoreboardModel {
	m.statsErr = msg.err
	if msg.err == nil {
		stats := msg.stats
		m.stats = &stats
		m.achievements = msg.achievements
	}
	return m
}

// Resize adapts the layout to a new terminal size.
func (m ScoreboardModel) Resize(width, height int) ScoreboardModel {
	m.width, m.height = width, height
	m.help.Width = width
	if m.ready {
		m.table = m.createTable()
	}
	return m
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// IsGoingBack returns true if user wants to return to the game.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render("HIGH SCORES")))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableBox := boxStyle.Render(m.renderTableContent())
	statsBox := boxStyle.Width(sidebarWidth).Render(m.renderStats())

	if m.width >= minWidthForSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableBox, "  ", statsBox))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, tableBox, statsBox))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nFly through a pipe to set one!")
	}
	return m.table.View()
}

func (m ScoreboardModel) renderStats() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.statsErr != nil {
		return dim.Render("Stats unavailable")
	}
	if m.stats == nil {
		return dim.Render("Loading stats…")
	}

	var b strings.Builder
	s := m.stats
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Your Stats"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Games played   %d\n", s.TotalGames)
	fmt.Fprintf(&b, "Time spent     %s\n", scoreboard.FormatDuration(s.TotalTime))
	fmt.Fprintf(&b, "Average score  %.1f\n", s.AverageScore)
	fmt.Fprintf(&b, "Best streak    %d\n", s.BestStreak)
	if s.FavoritePlayTime != "" {
		fmt.Fprintf(&b, "Favorite time  %s\n", s.FavoritePlayTime)
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Achievements"))
	unlocked := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	for _, a := range m.achievements {
		b.WriteString("\n")
		if a.Unlocked {
			b.WriteString(unlocked.Render("★ " + a.Name))
		} else {
			b.WriteString(dim.Render("☆ " + a.Name))
		}
	}
	return b.String()
}
