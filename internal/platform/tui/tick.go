// Package tui hosts the game in a Bubble Tea program, locally or over SSH.
// It owns the tick timer, maps keys to actions and draws the side panel and
// leaderboard around the game field.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to run one simulation tick.
// Gen is the clock generation the tick was scheduled under.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// tickCmd schedules a single tick after interval, tagged with gen.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
