package score

type Medal string

const (
	Gold   Medal = "Gold"
	Silver Medal = "Silver"
	Bronze Medal = "Bronze"
	None   Medal = "None"
)

var AllMedals = []Medal{Gold, Silver, Bronze, None}

// MedalFor buckets a percentage: Gold >= 90, Silver >= 75, Bronze >= 60.
func MedalFor(percentage float64) Medal {
	switch {
	case percentage >= 90:
		return Gold
	case percentage >= 75:
		return Silver
	case percentage >= 60:
		return Bronze
	default:
		return None
	}
}

func (m Medal) order() int {
	for i, v := range AllMedals {
		if v == m {
			return i
		}
	}
	return len(AllMedals)
}
