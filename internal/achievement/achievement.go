// Package achievement decides which badges a finished quiz unlocks. It holds
// no state: callers pass the player's numbers in and persist the result.
package achievement

type ID string

const (
	FirstQuiz    ID = "first_quiz"
	QuizMaster   ID = "quiz_master"
	PerfectScore ID = "perfect_score"
	SpeedDemon   ID = "speed_demon"
	OnFire       ID = "on_fire"
	HighScorer   ID = "high_scorer"
)

type Condition string

const (
	ConditionQuizzes  Condition = "quizzes"
	ConditionAccuracy Condition = "accuracy"
	ConditionTime     Condition = "time"
	ConditionStreak   Condition = "streak"
	ConditionPoints   Condition = "points"
)

type Definition struct {
	ID          ID        `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	Condition   Condition `json:"condition_type"`
	Threshold   float64   `json:"condition_value"`
}

// Stats is the snapshot an unlock decision is made from. Quiz fields describe
// the quiz just finished; TotalQuizzes already includes it.
type Stats struct {
	Points         int
	Accuracy       float64
	LongestStreak  int
	ElapsedSeconds int
	TotalQuizzes   int
}

var catalog = []Definition{
	{FirstQuiz, "First Quiz", "Complete your first quiz", "🎯", "milestone", ConditionQuizzes, 1},
	{QuizMaster, "Quiz Master", "Complete 10 quizzes", "👑", "milestone", ConditionQuizzes, 10},
	{PerfectScore, "Perfect Score", "Get 100% on a quiz", "💯", "performance", ConditionAccuracy, 100},
	{SpeedDemon, "Speed Demon", "Complete a quiz in under 30 seconds", "⚡", "speed", ConditionTime, 30},
	{OnFire, "On Fire", "Answer 5 questions correctly in a row", "🔥", "streak", ConditionStreak, 5},
	{HighScorer, "High Scorer", "Earn 100 points in a single quiz", "⭐", "performance", ConditionPoints, 100},
}

func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(id ID) (Definition, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

func (d Definition) Met(s Stats) bool {
	switch d.Condition {
	case ConditionQuizzes:
		return float64(s.TotalQuizzes) >= d.Threshold
	case ConditionAccuracy:
		return s.Accuracy >= d.Threshold
	case ConditionTime:
		return s.TotalQuizzes > 0 && float64(s.ElapsedSeconds) < d.Threshold
	case ConditionStreak:
		return float64(s.LongestStreak) >= d.Threshold
	case ConditionPoints:
		return float64(s.Points) >= d.Threshold
	default:
		return false
	}
}

// Evaluate returns every achievement whose condition holds, in catalog order.
func Evaluate(s Stats) []ID {
	var ids []ID
	for _, d := range catalog {
		if d.Met(s) {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// Unlocked filters Evaluate down to the ids not already in owned.
func Unlocked(s Stats, owned []string) []ID {
	have := make(map[string]struct{}, len(owned))
	for _, id := range owned {
		have[id] = struct{}{}
	}

	var fresh []ID
	for _, id := range Evaluate(s) {
		if _, ok := have[string(id)]; !ok {
			fresh = append(fresh, id)
		}
	}
	return fresh
}
