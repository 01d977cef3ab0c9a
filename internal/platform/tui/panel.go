package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Side panel layout constants
const (
	minWidthForPanel = 60 // Below this the field takes the whole width
	panelWidth       = 26 // Including border
	panelTopEntries  = 5
	helpHeight       = 1
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(panelWidth-2).
			Padding(0, 1)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	panelValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	badgeStyle      = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Padding(0, 1)
	badgeMaxStyle = badgeStyle.Background(lipgloss.Color("208"))
	recordStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	helpBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// fieldSize returns the game field size for a terminal of w×h cells.
func fieldSize(w, h int) (int, int) {
	fh := max(h-helpHeight, 1)
	if w >= minWidthForPanel {
		return max(w-panelWidth-1, 1), fh
	}
	return max(w, 1), fh
}

// speedLabel formats a difficulty multiplier the way the badge shows it.
func speedLabel(speed float64) string {
	return fmt.Sprintf("%.1fx", speed)
}

func modeLabel(m flappy.Mode) string {
	switch m {
	case flappy.ModeMenu:
		return "Ready"
	case flappy.ModePlaying:
		return "Flying"
	case flappy.ModePaused:
		return "Paused"
	case flappy.ModeGameOver:
		return "Game over"
	}
	return ""
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func (m Model) gameView() string {
	m.game.Render(m.screen)
	body := RenderScreen(m.screen)

	if m.width >= minWidthForPanel {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.sidePanel())
	}
	return body + "\n" + helpBarStyle.Render(m.help.View(m.keys))
}

func (m Model) sidePanel() string {
	snap := m.game.Snapshot()
	cfg := m.game.Config()

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(m.game.Title()))
	b.WriteString("\n")
	b.WriteString(panelLabelStyle.Render(modeLabel(snap.Mode)))
	b.WriteString("\n\n")

	b.WriteString(panelLabelStyle.Render("Score  "))
	b.WriteString(panelValueStyle.Render(fmt.Sprintf("%d", snap.Score)))
	b.WriteString("\n")
	b.WriteString(panelLabelStyle.Render("Best   "))
	b.WriteString(panelValueStyle.Render(fmt.Sprintf("🏆 %d", snap.Best)))
	b.WriteString("\n")
	b.WriteString(panelLabelStyle.Render("Speed  "))
	badge := badgeStyle
	if snap.Speed >= cfg.Speed.Max {
		badge = badgeMaxStyle
	}
	b.WriteString(badge.Render(speedLabel(snap.Speed)))
	b.WriteString("\n")

	if m.lastResult != nil && m.lastResult.IsNewRecord {
		b.WriteString("\n")
		b.WriteString(recordStyle.Render("New record!"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(panelTitleStyle.Render("Top pilots"))
	b.WriteString("\n")
	b.WriteString(m.topList())

	return panelStyle.Render(b.String())
}

func (m Model) topList() string {
	if m.board == nil {
		return panelLabelStyle.Render("offline")
	}
	if len(m.leaders) == 0 {
		return panelLabelStyle.Render("loading…")
	}

	var b strings.Builder
	for i, e := range m.leaders[:min(len(m.leaders), panelTopEntries)] {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %-13s %3d", i+1, truncate(e.PlayerName, 13), e.Score)
	}
	return b.String()
}
