package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/scoreboard"
)

func newTestModel(t *testing.T, board scoreboard.Service) (Model, *flappy.Game) {
	t.Helper()
	game := flappy.NewDefault(flappy.WithRand(rand.New(rand.NewSource(1))))
	m := NewModel(game, Options{
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 30},
		Board:   board,
		Player:  "tester",
	})
	return m, game
}

func instantBoard() *scoreboard.Mock {
	return scoreboard.NewMock(scoreboard.WithLatency(scoreboard.Latency{}))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func space() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace}
}

func TestInitSeedsBestFromLeaderboard(t *testing.T) {
	m, game := newTestModel(t, instantBoard())

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should fetch the leaderboard")
	}
	m, _ = update(t, m, cmd())

	if best := game.Snapshot().Best; best != 45 {
		t.Errorf("best = %d, expected 45 from the leaderboard", best)
	}
	if game.Mode() != flappy.ModeMenu {
		t.Errorf("mode = %s, expected menu", game.Mode())
	}
	if !strings.Contains(m.View(), "FlappyMaster") {
		t.Error("side panel should list the leaderboard")
	}
}

func TestOfflineInit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if cmd := m.Init(); cmd != nil {
		t.Error("offline model should not issue commands on Init")
	}
	if !strings.Contains(m.View(), "offline") {
		t.Error("offline model should say so in the side panel")
	}
}

func TestTicksFollowClockGeneration(t *testing.T) {
	m, game := newTestModel(t, nil)
	m.Init()

	m, cmd := update(t, m, space())
	if game.Mode() != flappy.ModePlaying {
		t.Fatalf("mode = %s, expected playing", game.Mode())
	}
	if cmd == nil {
		t.Fatal("starting a run should schedule a tick")
	}
	gen := game.Clock().Generation()

	// A flap keeps the generation, so no second tick stream starts.
	m, cmd = update(t, m, space())
	if cmd != nil {
		t.Error("flapping should not schedule another tick")
	}

	m, cmd = update(t, m, TickMsg{Gen: gen})
	if cmd == nil {
		t.Fatal("a current tick should reschedule")
	}
	if ticks := game.Snapshot().Ticks; ticks != 1 {
		t.Fatalf("ticks = %d, expected 1", ticks)
	}

	m, cmd = update(t, m, TickMsg{Gen: gen - 1})
	if cmd != nil || game.Snapshot().Ticks != 1 {
		t.Error("a stale tick must be dropped without rescheduling")
	}

	m, _ = update(t, m, runeKey('p'))
	if game.Mode() != flappy.ModePaused {
		t.Fatalf("mode = %s, expected paused", game.Mode())
	}
	m, cmd = update(t, m, TickMsg{Gen: gen})
	if cmd != nil || game.Snapshot().Ticks != 1 {
		t.Error("no tick may run while paused")
	}

	m, cmd = update(t, m, runeKey('p'))
	if cmd == nil {
		t.Fatal("resuming should schedule a fresh tick stream")
	}
	if game.Clock().Generation() == gen {
		t.Error("resuming should start a new generation")
	}
	_, cmd = update(t, m, TickMsg{Gen: gen})
	if cmd != nil {
		t.Error("a tick from before the pause must stay dead")
	}
}

func TestGameOverSubmitsOnce(t *testing.T) {
	board := instantBoard()
	m, game := newTestModel(t, board)
	m.Init()
	m, _ = update(t, m, space())

	var submit tea.Cmd
	for i := 0; i < 1000 && game.Mode() == flappy.ModePlaying; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{Gen: game.Clock().Generation()})
		if game.Mode() == flappy.ModeGameOver {
			submit = cmd
		}
	}
	if game.Mode() != flappy.ModeGameOver {
		t.Fatalf("mode = %s, expected the bird to fall", game.Mode())
	}
	if submit == nil {
		t.Fatal("game over should submit the score")
	}

	// Further ticks do nothing, so nothing else is submitted.
	if _, cmd := update(t, m, TickMsg{Gen: game.Clock().Generation()}); cmd != nil {
		t.Error("ticks after game over must not produce commands")
	}

	msg := submit()
	sm, ok := msg.(submitMsg)
	if !ok {
		t.Fatalf("submit produced %T", msg)
	}
	if sm.err != nil || sm.result.Entry.PlayerName != "tester" {
		t.Errorf("unexpected submission result: %+v", sm)
	}

	m, cmd := update(t, m, msg)
	if cmd == nil {
		t.Error("a successful submission should refresh the leaderboard")
	}
	if m.lastResult == nil {
		t.Error("submission result should be kept for the side panel")
	}

	m, cmd = update(t, m, runeKey('r'))
	if game.Mode() != flappy.ModePlaying || cmd == nil {
		t.Errorf("restart should start a run with a tick, mode = %s", game.Mode())
	}
	if m.lastResult != nil {
		t.Error("restart should clear the previous submission")
	}
}

func TestSubmitFailureIsLoggedNotFatal(t *testing.T) {
	m, game := newTestModel(t, nil)
	m, cmd := update(t, m, submitMsg{err: scoreboard.ErrUnavailable})
	if cmd != nil {
		t.Error("a failed submission should not trigger follow-up commands")
	}
	if game.Mode() != flappy.ModeMenu {
		t.Errorf("mode = %s, a failed submission must not touch the game", game.Mode())
	}
	if m.quitting {
		t.Error("a failed submission must not quit")
	}
}

func TestIgnoredKeysInMenu(t *testing.T) {
	m, game := newTestModel(t, nil)
	m.Init()

	for _, k := range []tea.KeyMsg{runeKey('r'), runeKey('p'), runeKey('x')} {
		var cmd tea.Cmd
		m, cmd = update(t, m, k)
		if cmd != nil {
			t.Errorf("%q in menu produced a command", k.String())
		}
	}
	if game.Mode() != flappy.ModeMenu {
		t.Errorf("mode = %s, expected menu", game.Mode())
	}
}

func TestClickFlaps(t *testing.T) {
	m, game := newTestModel(t, nil)
	m.Init()

	_, cmd := update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if game.Mode() != flappy.ModePlaying || cmd == nil {
		t.Errorf("click should start a run, mode = %s", game.Mode())
	}
}

func TestScoreboardScreen(t *testing.T) {
	m, game := newTestModel(t, instantBoard())
	m.Init()
	m, _ = update(t, m, space())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if game.Mode() != flappy.ModePaused {
		t.Errorf("opening scores should pause a live run, mode = %s", game.Mode())
	}
	if cmd == nil {
		t.Fatal("opening scores should fetch data")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view not shown")
	}

	// Keys go to the scoreboard, not the game.
	m, _ = update(t, m, space())
	if game.Mode() != flappy.ModePaused {
		t.Errorf("space on the scoreboard changed the game to %s", game.Mode())
	}

	m, _ = update(t, m, statsMsg{stats: scoreboard.Stats{TotalGames: 3}})
	if !strings.Contains(m.View(), "Games played") {
		t.Error("stats not rendered")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewGame {
		t.Error("esc should return to the game")
	}
	if game.Mode() != flappy.ModePaused {
		t.Errorf("returning should leave the run paused, mode = %s", game.Mode())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	m, game := newTestModel(t, nil)
	m.Init()
	m, _ = update(t, m, space())
	m, _ = update(t, m, TickMsg{Gen: game.Clock().Generation()})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	if game.Mode() != flappy.ModePlaying || game.Snapshot().Ticks != 1 {
		t.Error("resize should not reset the run")
	}
	if m.screen.Width() != 50 || m.screen.Height() != 19 {
		t.Errorf("field = %dx%d, expected 50x19 without the panel", m.screen.Width(), m.screen.Height())
	}
	if strings.Contains(m.View(), "Top pilots") {
		t.Error("narrow terminals should hide the side panel")
	}
}

func TestFieldSize(t *testing.T) {
	tests := []struct {
		w, h, fw, fh int
	}{
		{100, 30, 73, 29},
		{59, 20, 59, 19},
		{0, 0, 1, 1},
	}
	for _, tc := range tests {
		fw, fh := fieldSize(tc.w, tc.h)
		if fw != tc.fw || fh != tc.fh {
			t.Errorf("fieldSize(%d, %d) = %d, %d; expected %d, %d", tc.w, tc.h, fw, fh, tc.fw, tc.fh)
		}
	}
}

func TestSpeedLabel(t *testing.T) {
	if got := speedLabel(1); got != "1.0x" {
		t.Errorf("speedLabel(1) = %q", got)
	}
	if got := speedLabel(2); got != "2.0x" {
		t.Errorf("speedLabel(2) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("FlappyMaster", 20); got != "FlappyMaster" {
		t.Errorf("truncate kept = %q", got)
	}
	if got := truncate("FlappyMaster", 6); got != "Flapp…" {
		t.Errorf("truncate cut = %q", got)
	}
}
