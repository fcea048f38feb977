package memory

import (
	"context"

	"trivia-quiz-service/internal/domain"
)

// StaticQuestionLoader serves a fixed in-memory pool (useful for tests/demos).
type StaticQuestionLoader struct {
	questions []domain.Question
}

func NewStaticQuestionLoader(questions []domain.Question) *StaticQuestionLoader {
	return &StaticQuestionLoader{questions: questions}
}

func (l *StaticQuestionLoader) LoadQuestions(_ context.Context) ([]domain.Question, error) {
	return l.questions, nil
}
