package scoreboard

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Latency is the simulated round-trip time of each Mock call.
type Latency struct {
	Leaderboard  time.Duration
	Submit       time.Duration
	Stats        time.Duration
	Achievements time.Duration
}

// DefaultLatency matches the delays of a modest remote backend.
func DefaultLatency() Latency {
	return Latency{
		Leaderboard:  300 * time.Millisecond,
		Submit:       500 * time.Millisecond,
		Stats:        200 * time.Millisecond,
		Achievements: 250 * time.Millisecond,
	}
}

// Mock is an in-memory Service with canned data and simulated latency.
// It is safe for concurrent use; bubbletea runs commands on their own goroutines.
type Mock struct {
	mu           sync.Mutex
	latency      Latency
	entries      []Entry
	stats        Stats
	achievements []Achievement
	played       history // submissions made to this mock
	failure      error
	now          func() time.Time
	nextID       int64
}

// MockOption configures a Mock.
type MockOption func(*Mock)

// WithLatency overrides the simulated latencies. Zero disables the delay.
func WithLatency(l Latency) MockOption {
	return func(m *Mock) { m.latency = l }
}

// WithNow overrides the clock used to date submissions.
func WithNow(now func() time.Time) MockOption {
	return func(m *Mock) { m.now = now }
}

// WithSpeedCap sets the multiplier that unlocks Speed Demon.
func WithSpeedCap(c float64) MockOption {
	return func(m *Mock) { m.played.speedCap = c }
}

// NewMock creates a Mock seeded with the sample leaderboard.
func NewMock(opts ...MockOption) *Mock {
	m := &Mock{
		latency:      DefaultLatency(),
		entries:      seedEntries(),
		stats:        seedStats(),
		achievements: seedAchievements(),
		now:          time.Now,
		played:       history{speedCap: 2},
	}
	for _, e := range m.entries {
		m.nextID = max(m.nextID, e.ID)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetFailure makes every following call return err. nil restores service.
func (m *Mock) SetFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failure = err
}

// wait simulates the round trip, honouring ctx, then reports any injected failure.
func (m *Mock) wait(ctx context.Context, d time.Duration) error {
	if d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failure
}

// Leaderboard returns the top entries by score.
func (m *Mock) Leaderboard(ctx context.Context) ([]Entry, error) {
	if err := m.wait(ctx, m.latency.Leaderboard); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	n := min(len(m.entries), LeaderboardSize)
	return slices.Clone(m.entries[:n]), nil
}

// SubmitScore records a run. It is a new record when it beats the current top.
func (m *Mock) SubmitScore(ctx context.Context, sub Submission) (SubmitResult, error) {
	if err := m.wait(ctx, m.latency.Submit); err != nil {
		return SubmitResult{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	e := Entry{
		ID:         m.nextID,
		Score:      sub.Score,
		PlayerName: normalizeName(sub.PlayerName),
		Date:       m.now().UTC(),
	}
	res := SubmitResult{Entry: e, IsNewRecord: sub.Score > Top(m.entries)}

	// Insert after any equal scores so earlier runs keep their place.
	i, _ := slices.BinarySearchFunc(m.entries, e, func(a, b Entry) int {
		if a.Score >= b.Score {
			return -1
		}
		return 1
	})
	m.entries = slices.Insert(m.entries, i, e)

	total := m.stats.AverageScore * float64(m.stats.TotalGames)
	m.stats.TotalGames++
	m.stats.TotalTime += sub.Duration
	m.stats.AverageScore = (total + float64(sub.Score)) / float64(m.stats.TotalGames)

	m.played.games++
	m.played.bestScore = max(m.played.bestScore, sub.Score)
	m.played.totalTime += sub.Duration
	m.played.topSpeed = max(m.played.topSpeed, sub.TopSpeed)

	return res, nil
}

// Stats returns aggregate play statistics.
func (m *Mock) Stats(ctx context.Context) (Stats, error) {
	if err := m.wait(ctx, m.latency.Stats); err != nil {
		return Stats{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats, nil
}

// Achievements returns the seeded achievements plus any unlocked by
// submissions made to this Mock.
func (m *Mock) Achievements(ctx context.Context) ([]Achievement, error) {
	if err := m.wait(ctx, m.latency.Achievements); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	earned := evaluate(m.played)
	out := slices.Clone(m.achievements)
	for i := range out {
		out[i].Unlocked = out[i].Unlocked || earned[i].Unlocked
	}
	return out, nil
}

func seedEntries() []Entry {
	rows := []struct {
		score int
		name  string
		date  string
	}{
		{45, "FlappyMaster", "2024-12-20T10:30:00Z"},
		{38, "SkyNavigator", "2024-12-19T15:45:00Z"},
		{32, "BirdBrain", "2024-12-18T09:20:00Z"},
		{28, "WingWarrior", "2024-12-17T14:15:00Z"},
		{22, "FeatheredFly", "2024-12-16T11:00:00Z"},
		{19, "AerialAce", "2024-12-15T16:30:00Z"},
		{16, "GlideMaster", "2024-12-14T13:45:00Z"},
		{12, "PipeDodger", "2024-12-13T08:20:00Z"},
		{10, "FlightRookie", "2024-12-12T12:10:00Z"},
		{8, "Beginner", "2024-12-11T17:55:00Z"},
	}

	entries := make([]Entry, len(rows))
	for i, r := range rows {
		date, _ := time.Parse(time.RFC3339, r.date)
		entries[i] = Entry{ID: int64(i + 1), Score: r.score, PlayerName: r.name, Date: date}
	}
	return entries
}

func seedStats() Stats {
	return Stats{
		TotalGames:       156,
		TotalTime:        4*time.Hour + 32*time.Minute,
		AverageScore:     18.7,
		BestStreak:       5,
		FavoritePlayTime: Evening,
	}
}

func seedAchievements() []Achievement {
	out := evaluate(history{})
	for i := range out {
		out[i].Unlocked = i < 3
	}
	return out
}
