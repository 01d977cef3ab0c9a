package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/scoreboard"
)

// DefaultRequestTimeout bounds every scoreboard call made from the UI.
const DefaultRequestTimeout = 5 * time.Second

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	// Board serves the leaderboard. nil plays offline.
	Board scoreboard.Service
	// Player is the name submitted with scores.
	Player  string
	Logger  *log.Logger
	Timeout time.Duration
}

type screenView int

const (
	viewGame screenView = iota
	viewScores
)

// Messages produced by scoreboard commands.
type (
	leaderboardMsg struct {
		entries []scoreboard.Entry
		err     error
	}
	submitMsg struct {
		result scoreboard.SubmitResult
		err    error
	}
)

// Model is the Bubble Tea model running one game.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	board      scoreboard.Service
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	runtime    core.RuntimeConfig
	player     string
	timeout    time.Duration
	leaders    []scoreboard.Entry
	lastResult *scoreboard.SubmitResult
	view       screenView
	scores     ScoreboardModel
	width      int
	height     int
	quitting   bool
}

// NewModel creates a model for game. The game is reset to its menu on Init.
func NewModel(game *flappy.Game, opts Options) Model {
	rc := opts.Runtime
	if rc.ScreenW <= 0 || rc.ScreenH <= 0 {
		def := core.DefaultConfig()
		rc.ScreenW, rc.ScreenH = def.ScreenW, def.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	m := Model{
		game:    game,
		board:   opts.Board,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		runtime: rc,
		player:  opts.Player,
		timeout: timeout,
		width:   rc.ScreenW,
		height:  rc.ScreenH,
	}
	fw, fh := fieldSize(rc.ScreenW, rc.ScreenH)
	m.screen = core.NewScreen(fw, fh)
	m.help.Width = rc.ScreenW
	return m
}

// Init resets the game and fetches the leaderboard to seed the best score.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	return m.fetchLeaderboard()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case leaderboardMsg:
		if msg.err != nil {
			m.logger.Warn("leaderboard fetch failed", "err", msg.err)
			return m, nil
		}
		m.leaders = msg.entries
		m.game.SeedBest(scoreboard.Top(msg.entries))
		m.scores = m.scores.WithEntries(msg.entries)
		return m, nil

	case submitMsg:
		if msg.err != nil {
			m.logger.Warn("score submission failed", "err", msg.err)
			return m, nil
		}
		m.lastResult = &msg.result
		m.logger.Info("score submitted",
			"player", msg.result.Entry.PlayerName,
			"score", msg.result.Entry.Score,
			"record", msg.result.IsNewRecord,
		)
		return m, m.fetchLeaderboard()

	case statsMsg:
		if msg.err != nil {
			m.logger.Warn("stats fetch failed", "err", msg.err)
		}
		m.scores = m.scores.WithStats(msg)
		return m, nil
	}

	if m.view == viewScores {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))
	case tea.MouseMsg:
		if isClick(msg) {
			return m.handleAction(core.ActionJump)
		}
	}
	return m, nil
}

// handleAction applies one user action to the game and schedules a tick
// stream if the action started a new clock generation.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScoreboard:
		return m.openScores()
	}

	clock := m.game.Clock()
	before := clock.Generation()
	if !m.game.Handle(a) {
		return m, nil
	}
	if m.game.Mode() == flappy.ModePlaying {
		m.lastResult = nil
	}
	if clock.Running() && clock.Generation() != before {
		return m, tickCmd(clock.Interval(), clock.Generation())
	}
	return m, nil
}

// handleTick runs a tick if it belongs to the current generation and
// reschedules only while that generation is still current.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.game.Tick(msg.Gen) {
		return m, nil
	}

	if m.game.Mode() == flappy.ModeGameOver {
		return m, m.submitScore(m.game.Snapshot())
	}

	clock := m.game.Clock()
	if clock.Accept(msg.Gen) {
		return m, tickCmd(clock.Interval(), msg.Gen)
	}
	return m, nil
}

// handleResize resizes the field. The run keeps going; only the view scales.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.runtime.ScreenW, m.runtime.ScreenH = msg.Width, msg.Height
	fw, fh := fieldSize(msg.Width, msg.Height)
	m.screen.Resize(fw, fh)
	m.help.Width = msg.Width
	m.scores = m.scores.Resize(msg.Width, msg.Height)
	return m, nil
}

// openScores pauses a live run and shows the leaderboard screen.
func (m Model) openScores() (tea.Model, tea.Cmd) {
	if m.game.Mode() == flappy.ModePlaying {
		m.game.Handle(core.ActionPause)
	}
	m.view = viewScores
	m.scores = NewScoreboardModel(m.width, m.height).WithEntries(m.leaders)
	return m, tea.Batch(m.fetchLeaderboard(), m.fetchStats())
}

func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scores, cmd = m.scores.Update(msg)
	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.view = viewGame
	}
	return m, cmd
}

func (m Model) request() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

func (m Model) fetchLeaderboard() tea.Cmd {
	if m.board == nil {
		return nil
	}
	board := m.board
	return func() tea.Msg {
		ctx, cancel := m.request()
		defer cancel()
		entries, err := board.Leaderboard(ctx)
		return leaderboardMsg{entries: entries, err: err}
	}
}

// submitScore reports a finished run. Its result only feeds the side panel.
func (m Model) submitScore(snap flappy.Snapshot) tea.Cmd {
	if m.board == nil {
		return nil
	}
	board := m.board
	sub := scoreboard.Submission{
		Score:      snap.Score,
		PlayerName: m.player,
		Duration:   snap.Elapsed,
		TopSpeed:   snap.TopSpeed,
	}
	return func() tea.Msg {
		ctx, cancel := m.request()
		defer cancel()
		res, err := board.SubmitScore(ctx, sub)
		return submitMsg{result: res, err: err}
	}
}

func (m Model) fetchStats() tea.Cmd {
	if m.board == nil {
		return nil
	}
	board := m.board
	return func() tea.Msg {
		ctx, cancel := m.request()
		defer cancel()
		stats, err := board.Stats(ctx)
		if err != nil {
			return statsMsg{err: err}
		}
		achievements, err := board.Achievements(ctx)
		return statsMsg{stats: stats, achievements: achievements, err: err}
	}
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view == viewScores {
		return m.scores.View()
	}
	return m.gameView()
}

// Run starts the Bubble Tea program on the local terminal.
func Run(game *flappy.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
