package aiquiz

import (
	"fmt"
	"strings"
)

const (
	defaultCount = 3
	maxCount     = 10
)

const systemPrompt = `
You write multiple-choice questions for a general-knowledge quiz game.

Rules:
1. Every question has exactly one correct option.
2. Every question has exactly 4 options, of similar length and structure.
3. Wrong options must be plausible; never make the correct one obviously longer or more technical.
4. Never reveal the answer in the question text.
5. Difficulty:
   - easy: recall of a well-known fact.
   - medium: applying or connecting facts.
   - hard: analysis, deduction or calculation.
6. "correct" is the zero-based index of the correct option.
7. "explanation" is one or two sentences on why the correct option is right.

Reply with pure JSON and nothing else, in this shape:

[
  {
    "category": "<category>",
    "difficulty": "<easy | medium | hard>",
    "question": "<question text>",
    "options": ["...", "...", "...", "..."],
    "correct": 2,
    "explanation": "<short explanation>"
  }
]
`

func clampCount(n int) int {
	switch {
	case n <= 0:
		return defaultCount
	case n > maxCount:
		return maxCount
	default:
		return n
	}
}

func BuildUserPrompt(req GenerateRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d questions in the category %q with difficulty %q.",
		clampCount(req.Count), req.Category, strings.ToLower(req.Difficulty))
	if c := strings.TrimSpace(req.Context); c != "" {
		fmt.Fprintf(&b, " Focus on this material: %s.", c)
	}
	b.WriteString(" Vary the style between factual, applied and analytical questions.")
	return b.String()
}
