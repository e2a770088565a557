package question

import (
	"context"

	"github.com/saulo-duarte/quiz-arena/internal/config"
)

func strPtr(s string) *string { return &s }

func seedQuestions() []Question {
	return []Question{
		{Question: "What is the capital of France?", Options: []string{"Berlin", "Madrid", "Paris", "Rome"}, Correct: 2, Difficulty: Easy, Category: "Geography", Explanation: strPtr("Paris has been the capital of France since 987 AD."), Points: 10, TimeLimit: 30},
		{Question: "What is the largest planet in our solar system?", Options: []string{"Earth", "Mars", "Jupiter", "Saturn"}, Correct: 2, Difficulty: Medium, Category: "Science", Explanation: strPtr("Jupiter is the largest planet with a mass greater than all other planets combined."), Points: 20, TimeLimit: 25},
		{Question: "What is the speed of light in vacuum?", Options: []string{"299,792 km/s", "199,792 km/s", "399,792 km/s", "99,792 km/s"}, Correct: 0, Difficulty: Hard, Category: "Physics", Explanation: strPtr("The speed of light is exactly 299,792,458 meters per second."), Points: 30, TimeLimit: 20},
		{Question: "Who painted the Mona Lisa?", Options: []string{"Van Gogh", "Da Vinci", "Picasso", "Rembrandt"}, Correct: 1, Difficulty: Medium, Category: "Art", Explanation: strPtr("Leonardo da Vinci painted the Mona Lisa between 1503 and 1519."), Points: 20, TimeLimit: 25},
		{Question: "What is 2 + 2?", Options: []string{"3", "4", "5", "6"}, Correct: 1, Difficulty: Easy, Category: "Mathematics", Explanation: strPtr("2 + 2 = 4 is basic addition."), Points: 10, TimeLimit: 15},
		{Question: "What is the largest ocean on Earth?", Options: []string{"Atlantic", "Indian", "Arctic", "Pacific"}, Correct: 3, Difficulty: Easy, Category: "Geography", Points: 10, TimeLimit: 30},
		{Question: "Who wrote Romeo and Juliet?", Options: []string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"}, Correct: 1, Difficulty: Medium, Category: "Literature", Points: 20, TimeLimit: 30},
		{Question: "What is the chemical symbol for gold?", Options: []string{"Go", "Gd", "Au", "Ag"}, Correct: 2, Difficulty: Medium, Category: "Chemistry", Points: 20, TimeLimit: 30},
		{Question: "How many continents are there?", Options: []string{"5", "6", "7", "8"}, Correct: 2, Difficulty: Easy, Category: "Geography", Points: 10, TimeLimit: 30},
		{Question: "What year did World War II end?", Options: []string{"1943", "1944", "1945", "1946"}, Correct: 2, Difficulty: Medium, Category: "History", Points: 20, TimeLimit: 30},
	}
}

// Seed inserts the starter question set when the table is empty.
func Seed(ctx context.Context, repo Repository) (int, error) {
	log := config.WithContext(ctx)

	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	questions := seedQuestions()
	for i := range questions {
		questions[i].IsActive = true
	}
	if err := repo.CreateBatch(ctx, questions); err != nil {
		log.WithError(err).Error("Failed to seed questions")
		return 0, err
	}

	log.WithField("count", len(questions)).Info("Seeded starter questions")
	return len(questions), nil
}
