// Package scoreboard serves the leaderboard, play statistics and achievements
// shown around the game.
//
// Two implementations exist: Mock simulates a slow remote service with canned
// data, StoreService derives everything from runs persisted in SQLite.
package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// LeaderboardSize is how many entries Leaderboard returns.
const LeaderboardSize = 10

// AnonymousName replaces an empty player name on submission.
const AnonymousName = "Anonymous"

// ErrUnavailable is returned when the backing service cannot be reached.
var ErrUnavailable = errors.New("scoreboard: service unavailable")

// Service is the scoreboard API. Every call may block and honours ctx.
type Service interface {
	Leaderboard(ctx context.Context) ([]Entry, error)
	SubmitScore(ctx context.Context, sub Submission) (SubmitResult, error)
	Stats(ctx context.Context) (Stats, error)
	Achievements(ctx context.Context) ([]Achievement, error)
}

// Entry is one leaderboard row.
type Entry struct {
	ID         int64
	Score      int
	PlayerName string
	Date       time.Time
}

// Submission is a finished run reported by the host.
type Submission struct {
	Score      int
	PlayerName string
	Duration   time.Duration
	TopSpeed   float64
}

// SubmitResult echoes the stored entry and whether it beat the previous top.
type SubmitResult struct {
	Entry       Entry
	IsNewRecord bool
}

// Stats summarizes play history.
type Stats struct {
	TotalGames       int
	TotalTime        time.Duration
	AverageScore     float64
	BestStreak       int
	FavoritePlayTime string
}

// Achievement is an unlockable milestone.
type Achievement struct {
	ID          int
	Name        string
	Description string
	Unlocked    bool
}

// normalizeName trims the player name and falls back to AnonymousName.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return AnonymousName
	}
	return name
}

// FormatDuration renders a play time the way the stats panel shows it: "4h 32m".
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// Top returns the highest score in entries, or 0.
func Top(entries []Entry) int {
	best := 0
	for _, e := range entries {
		if e.Score > best {
			best = e.Score
		}
	}
	return best
}
