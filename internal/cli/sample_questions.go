package cli

import "trivia-quiz-service/internal/domain"

// sampleQuestions provides a small built-in pool for running without a
// database; swap in the postgres store for real content.
func sampleQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:            1,
			Prompt:        "Who painted the Mona Lisa?",
			Kind:          domain.KindFreeText,
			Difficulty:    1,
			CorrectAnswer: "Leonardo da Vinci",
			Aliases:       []string{"Leonardo", "da Vinci", "Leonardo di ser Piero da Vinci"},
		},
		{
			ID:            2,
			Prompt:        "What is the capital of France?",
			Kind:          domain.KindFreeText,
			Difficulty:    1,
			CorrectAnswer: "Paris",
		},
		{
			ID:            3,
			Prompt:        "Which planet is known as the Red Planet?",
			Kind:          domain.KindMultipleChoice,
			Difficulty:    1,
			Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
			CorrectAnswer: "Mars",
		},
		{
			ID:            4,
			Prompt:        "Who wrote the play Romeo and Juliet?",
			Kind:          domain.KindFreeText,
			Difficulty:    2,
			CorrectAnswer: "William Shakespeare",
			Aliases:       []string{"Shakespeare"},
		},
		{
			ID:            5,
			Prompt:        "What is the largest ocean on Earth?",
			Kind:          domain.KindMultipleChoice,
			Difficulty:    1,
			Options:       []string{"Atlantic Ocean", "Indian Ocean", "Pacific Ocean", "Arctic Ocean"},
			CorrectAnswer: "Pacific Ocean",
		},
		{
			ID:            6,
			Prompt:        "In which year did the Apollo 11 mission land on the Moon?",
			Kind:          domain.KindFreeText,
			Difficulty:    2,
			CorrectAnswer: "1969",
		},
		{
			ID:            7,
			Prompt:        "What is the chemical symbol for gold?",
			Kind:          domain.KindMultipleChoice,
			Difficulty:    2,
			Options:       []string{"Au", "Ag", "Gd", "Go"},
			CorrectAnswer: "Au",
		},
		{
			ID:            8,
			Prompt:        "Which country hosted the 2016 Summer Olympics?",
			Kind:          domain.KindFreeText,
			Difficulty:    2,
			CorrectAnswer: "Brazil",
			Aliases:       []string{"Brasil"},
		},
		{
			ID:            9,
			Prompt:        "What is the longest river in the world?",
			Kind:          domain.KindFreeText,
			Difficulty:    3,
			CorrectAnswer: "The Nile",
			Aliases:       []string{"Nile", "Nile River"},
		},
		{
			ID:            10,
			Prompt:        "Which composer wrote the Ninth Symphony while almost completely deaf?",
			Kind:          domain.KindFreeText,
			Difficulty:    3,
			CorrectAnswer: "Ludwig van Beethoven",
			Aliases:       []string{"Beethoven"},
		},
	}
}
