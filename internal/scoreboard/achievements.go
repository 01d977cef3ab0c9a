package scoreboard

import (
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// Thresholds for the built-in achievements.
const (
	PipeMasterScore    = 10
	SkyHighScore       = 25
	LegendaryBirdScore = 50
	MarathonDuration   = 30 * time.Minute
	// StreakScore is the score a run needs to extend a streak.
	StreakScore = 10
)

// rule decides whether an achievement is unlocked given the run history.
type rule struct {
	name        string
	description string
	unlocked    func(h history) bool
}

// history is the summary the rules are evaluated against.
type history struct {
	games     int
	bestScore int
	totalTime time.Duration
	topSpeed  float64
	speedCap  float64
}

var rules = []rule{
	{"First Flight", "Complete your first game", func(h history) bool {
		return h.games > 0
	}},
	{"Pipe Master", "Pass through 10 pipes in one game", func(h history) bool {
		return h.bestScore >= PipeMasterScore
	}},
	{"Sky High", "Reach a score of 25", func(h history) bool {
		return h.bestScore >= SkyHighScore
	}},
	{"Legendary Bird", "Reach a score of 50", func(h history) bool {
		return h.bestScore >= LegendaryBirdScore
	}},
	{"Marathon Flyer", "Play for 30 minutes in total", func(h history) bool {
		return h.totalTime >= MarathonDuration
	}},
	{"Speed Demon", "Survive at 2x speed", func(h history) bool {
		return h.speedCap > 0 && h.topSpeed >= h.speedCap-1e-9
	}},
}

func evaluate(h history) []Achievement {
	out := make([]Achievement, len(rules))
	for i, r := range rules {
		out[i] = Achievement{
			ID:          i + 1,
			Name:        r.name,
			Description: r.description,
			Unlocked:    r.unlocked(h),
		}
	}
	return out
}

// bestStreak returns the longest run of consecutive games scoring at least
// StreakScore. runs must be in play order.
func bestStreak(runs []storage.Run) int {
	best, cur := 0, 0
	for _, r := range runs {
		if r.Score >= StreakScore {
			cur++
			best = max(best, cur)
		} else {
			cur = 0
		}
	}
	return best
}

// Play time buckets by local hour.
const (
	Morning   = "Morning"
	Afternoon = "Afternoon"
	Evening   = "Evening"
	Night     = "Night"
)

func bucket(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return Morning
	case h >= 12 && h < 17:
		return Afternoon
	case h >= 17 && h < 22:
		return Evening
	default:
		return Night
	}
}

// favoritePlayTime returns the bucket most runs were played in, in loc.
// Ties resolve in the order Morning, Afternoon, Evening, Night.
func favoritePlayTime(runs []storage.Run, loc *time.Location) string {
	if len(runs) == 0 {
		return ""
	}
	counts := make(map[string]int, 4)
	for _, r := range runs {
		counts[bucket(r.CreatedAt.In(loc))]++
	}

	fav, n := "", 0
	for _, b := range []string{Morning, Afternoon, Evening, Night} {
		if counts[b] > n {
			fav, n = b, counts[b]
		}
	}
	return fav
}
