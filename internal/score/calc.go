package score

import (
	"math"
	"time"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// Percentage is score/total*100 rounded to two decimals, or 0 for an empty quiz.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return roundTwo(float64(score) / float64(total) * 100)
}

// roundTwo rounds half to even, so 3.125 becomes 3.12.
func roundTwo(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLeaderboardLimit
	case limit > MaxLeaderboardLimit:
		return MaxLeaderboardLimit
	default:
		return limit
	}
}

// BucketDaily counts records per UTC day for the days ending at now, oldest
// first. Days without attempts are reported as zero.
func BucketDaily(records []Record, now time.Time, days int) []DailyAttempts {
	if days <= 0 {
		return nil
	}

	today := now.UTC().Truncate(24 * time.Hour)
	counts := make(map[string]int, days)
	for _, r := range records {
		counts[r.CreatedAt.UTC().Format(time.DateOnly)]++
	}

	out := make([]DailyAttempts, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(time.DateOnly)
		out = append(out, DailyAttempts{Date: day, Attempts: counts[day]})
	}
	return out
}
