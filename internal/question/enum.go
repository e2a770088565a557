package question

import "strings"

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var AllDifficulties = []Difficulty{
	Easy,
	Medium,
	Hard,
}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

// ParseDifficulty normalizes user input. Blank input yields def.
func ParseDifficulty(raw string, def Difficulty) (Difficulty, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return def, nil
	}
	d := Difficulty(raw)
	if !d.IsValid() {
		return "", ErrInvalidDifficulty
	}
	return d, nil
}

// IsAllCategories reports whether category means "no category filter".
func IsAllCategories(category string) bool {
	category = strings.TrimSpace(category)
	return category == "" || strings.EqualFold(category, "all")
}
