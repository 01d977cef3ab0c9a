package scoreboard

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newInstantMock(opts ...MockOption) *Mock {
	return NewMock(append([]MockOption{WithLatency(Latency{})}, opts...)...)
}

func TestMockLeaderboardSeed(t *testing.T) {
	m := newInstantMock()
	entries, err := m.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(entries) != LeaderboardSize {
		t.Fatalf("Expected %d entries, got %d", LeaderboardSize, len(entries))
	}
	if entries[0].PlayerName != "FlappyMaster" || entries[0].Score != 45 {
		t.Errorf("Unexpected top entry: %+v", entries[0])
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score > entries[i-1].Score {
			t.Errorf("Entries not sorted at %d: %d > %d", i, entries[i].Score, entries[i-1].Score)
		}
	}
}

func TestMockSubmitScore(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	m := newInstantMock(WithNow(func() time.Time { return fixed }))
	ctx := context.Background()

	tests := []struct {
		name      string
		sub       Submission
		newRecord bool
		wantName  string
	}{
		{"below top", Submission{Score: 20, PlayerName: "Ann"}, false, "Ann"},
		{"equal to top", Submission{Score: 45, PlayerName: "Bob"}, false, "Bob"},
		{"empty name", Submission{Score: 3}, false, AnonymousName},
		{"new record", Submission{Score: 46, PlayerName: "  Cid "}, true, "Cid"},
		{"beats the new top only", Submission{Score: 46, PlayerName: "Dee"}, false, "Dee"},
	}

	for _, tc := range tests {
		res, err := m.SubmitScore(ctx, tc.sub)
		if err != nil {
			t.Fatalf("%s: SubmitScore() failed: %v", tc.name, err)
		}
		if res.IsNewRecord != tc.newRecord {
			t.Errorf("%s: IsNewRecord = %v, expected %v", tc.name, res.IsNewRecord, tc.newRecord)
		}
		if res.Entry.PlayerName != tc.wantName {
			t.Errorf("%s: name = %q, expected %q", tc.name, res.Entry.PlayerName, tc.wantName)
		}
		if !res.Entry.Date.Equal(fixed) {
			t.Errorf("%s: date = %v", tc.name, res.Entry.Date)
		}
	}

	entries, _ := m.Leaderboard(ctx)
	if entries[0].PlayerName != "Cid" || entries[1].PlayerName != "Dee" {
		t.Errorf("Expected Cid then Dee on top, got %s then %s", entries[0].PlayerName, entries[1].PlayerName)
	}
	if entries[2].PlayerName != "FlappyMaster" || entries[3].PlayerName != "Bob" {
		t.Errorf("Equal scores should keep the earlier entry first, got %s then %s", entries[2].PlayerName, entries[3].PlayerName)
	}
}

func TestMockStatsTrackSubmissions(t *testing.T) {
	m := newInstantMock()
	ctx := context.Background()

	before, _ := m.Stats(ctx)
	if before.TotalGames != 156 || before.FavoritePlayTime != Evening {
		t.Fatalf("Unexpected seed stats: %+v", before)
	}

	m.SubmitScore(ctx, Submission{Score: 30, Duration: 2 * time.Minute})

	after, _ := m.Stats(ctx)
	if after.TotalGames != 157 {
		t.Errorf("Expected 157 games, got %d", after.TotalGames)
	}
	if after.TotalTime != before.TotalTime+2*time.Minute {
		t.Errorf("Expected total time to grow by 2m, got %v", after.TotalTime)
	}
	if after.AverageScore <= before.AverageScore {
		t.Errorf("Average should rise after a 30, got %v", after.AverageScore)
	}
}

func TestMockAchievements(t *testing.T) {
	m := newInstantMock()
	ctx := context.Background()

	got, err := m.Achievements(ctx)
	if err != nil {
		t.Fatalf("Achievements() failed: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("Expected 6 achievements, got %d", len(got))
	}
	for i, a := range got {
		if a.Unlocked != (i < 3) {
			t.Errorf("%s unlocked = %v", a.Name, a.Unlocked)
		}
	}

	m.SubmitScore(ctx, Submission{Score: 55, TopSpeed: 2})
	got, _ = m.Achievements(ctx)
	for _, a := range got {
		if a.Name == "Legendary Bird" || a.Name == "Speed Demon" {
			if !a.Unlocked {
				t.Errorf("%s should unlock after a 55 at 2x", a.Name)
			}
		}
		if a.Name == "Marathon Flyer" && a.Unlocked {
			t.Error("Marathon Flyer should stay locked")
		}
	}
}

func TestMockFailure(t *testing.T) {
	m := newInstantMock()
	m.SetFailure(ErrUnavailable)

	if _, err := m.Leaderboard(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
	if _, err := m.SubmitScore(context.Background(), Submission{Score: 1}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}

	m.SetFailure(nil)
	if _, err := m.Stats(context.Background()); err != nil {
		t.Errorf("Expected recovery, got %v", err)
	}
}

func TestMockHonoursContext(t *testing.T) {
	m := NewMock(WithLatency(Latency{Leaderboard: time.Hour}))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := m.Leaderboard(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("Leaderboard did not return promptly after the deadline")
	}
}

func TestMockLatency(t *testing.T) {
	m := NewMock(WithLatency(Latency{Stats: 20 * time.Millisecond}))
	start := time.Now()
	if _, err := m.Stats(context.Background()); err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Expected at least 20ms latency, got %v", elapsed)
	}
}

func TestDefaultLatency(t *testing.T) {
	l := DefaultLatency()
	if l.Leaderboard != 300*time.Millisecond || l.Submit != 500*time.Millisecond ||
		l.Stats != 200*time.Millisecond || l.Achievements != 250*time.Millisecond {
		t.Errorf("Unexpected default latency: %+v", l)
	}
}
