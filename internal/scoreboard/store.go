package scoreboard

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// RunStore is the persistence StoreService needs. *storage.Store implements it.
type RunStore interface {
	SaveRun(ctx context.Context, r storage.Run) (int64, error)
	TopRuns(ctx context.Context, limit int) ([]storage.Run, error)
	AllRuns(ctx context.Context) ([]storage.Run, error)
	HighScore(ctx context.Context) (int, error)
	Aggregate(ctx context.Context) (storage.Aggregate, error)
}

var _ RunStore = (*storage.Store)(nil)

// StoreService is a Service backed by locally stored runs.
type StoreService struct {
	store    RunStore
	speedCap float64
	loc      *time.Location
	now      func() time.Time
}

// NewStoreService creates a service over store. speedCap is the difficulty
// multiplier that unlocks Speed Demon.
func NewStoreService(store RunStore, speedCap float64) *StoreService {
	return &StoreService{
		store:    store,
		speedCap: speedCap,
		loc:      time.Local,
		now:      time.Now,
	}
}

// SetLocation sets the zone favorite play time is computed in.
func (s *StoreService) SetLocation(loc *time.Location) {
	s.loc = loc
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
}

// Leaderboard returns the best stored runs.
func (s *StoreService) Leaderboard(ctx context.Context) ([]Entry, error) {
	runs, err := s.store.TopRuns(ctx, LeaderboardSize)
	if err != nil {
		return nil, unavailable("leaderboard", err)
	}

	entries := make([]Entry, len(runs))
	for i, r := range runs {
		entries[i] = Entry{ID: r.ID, Score: r.Score, PlayerName: r.PlayerName, Date: r.CreatedAt}
	}
	return entries, nil
}

// SubmitScore stores the run and reports whether it beat the previous best.
func (s *StoreService) SubmitScore(ctx context.Context, sub Submission) (SubmitResult, error) {
	prev, err := s.store.HighScore(ctx)
	if err != nil {
		return SubmitResult{}, unavailable("submit", err)
	}

	run := storage.Run{
		PlayerName: normalizeName(sub.PlayerName),
		Score:      sub.Score,
		Duration:   sub.Duration,
		TopSpeed:   sub.TopSpeed,
		CreatedAt:  s.now().UTC().Truncate(time.Second),
	}
	id, err := s.store.SaveRun(ctx, run)
	if err != nil {
		return SubmitResult{}, unavailable("submit", err)
	}

	return SubmitResult{
		Entry:       Entry{ID: id, Score: run.Score, PlayerName: run.PlayerName, Date: run.CreatedAt},
		IsNewRecord: sub.Score > prev,
	}, nil
}

// Stats derives play statistics from every stored run.
func (s *StoreService) Stats(ctx context.Context) (Stats, error) {
	agg, err := s.store.Aggregate(ctx)
	if err != nil {
		return Stats{}, unavailable("stats", err)
	}
	runs, err := s.store.AllRuns(ctx)
	if err != nil {
		return Stats{}, unavailable("stats", err)
	}

	return Stats{
		TotalGames:       agg.Games,
		TotalTime:        agg.TotalDuration,
		AverageScore:     agg.AvgScore,
		BestStreak:       bestStreak(runs),
		FavoritePlayTime: favoritePlayTime(runs, s.loc),
	}, nil
}

// Achievements evaluates every rule against the stored history.
func (s *StoreService) Achievements(ctx context.Context) ([]Achievement, error) {
	agg, err := s.store.Aggregate(ctx)
	if err != nil {
		return nil, unavailable("achievements", err)
	}

	return evaluate(history{
		games:     agg.Games,
		bestScore: agg.HighScore,
		totalTime: agg.TotalDuration,
		topSpeed:  agg.TopSpeed,
		speedCap:  s.speedCap,
	}), nil
}
