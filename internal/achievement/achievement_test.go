package achievement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/quiz-arena/internal/achievement"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name  string
		stats achievement.Stats
		want  []achievement.ID
	}{
		{
			name:  "FirstQuizOnly",
			stats: achievement.Stats{TotalQuizzes: 1, Accuracy: 50, ElapsedSeconds: 120, LongestStreak: 2, Points: 30},
			want:  []achievement.ID{achievement.FirstQuiz},
		},
		{
			name:  "PerfectFastStreak",
			stats: achievement.Stats{TotalQuizzes: 1, Accuracy: 100, ElapsedSeconds: 12, LongestStreak: 10, Points: 100},
			want: []achievement.ID{
				achievement.FirstQuiz,
				achievement.PerfectScore,
				achievement.SpeedDemon,
				achievement.OnFire,
				achievement.HighScorer,
			},
		},
		{
			name:  "TenthQuiz",
			stats: achievement.Stats{TotalQuizzes: 10, Accuracy: 70, ElapsedSeconds: 30},
			want:  []achievement.ID{achievement.FirstQuiz, achievement.QuizMaster},
		},
		{
			name:  "NothingBeforeFirstQuiz",
			stats: achievement.Stats{},
			want:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, achievement.Evaluate(tc.stats))
		})
	}
}

func TestUnlockedSkipsOwned(t *testing.T) {
	stats := achievement.Stats{TotalQuizzes: 2, Accuracy: 100, ElapsedSeconds: 90}

	fresh := achievement.Unlocked(stats, []string{string(achievement.FirstQuiz)})
	assert.Equal(t, []achievement.ID{achievement.PerfectScore}, fresh)
}

func TestCatalogIsACopy(t *testing.T) {
	c := achievement.Catalog()
	assert.Len(t, c, 6)

	c[0].Name = "changed"
	d, ok := achievement.Lookup(achievement.FirstQuiz)
	assert.True(t, ok)
	assert.Equal(t, "First Quiz", d.Name)
}
