package memory

import (
	"context"
	"testing"
	"time"

	"trivia-quiz-service/internal/domain"
)

func TestQuestionStoreCachesPool(t *testing.T) {
	loader := &countingLoader{
		QuestionLoader: NewStaticQuestionLoader(samplePool()),
	}
	store := NewQuestionStore(loader, 2, time.Minute)

	if _, err := store.FetchBatch(context.Background()); err != nil {
		t.Fatalf("fetch batch: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := store.FetchBatch(context.Background()); err != nil {
		t.Fatalf("fetch batch 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestQuestionStoreBatchSize(t *testing.T) {
	store := NewQuestionStore(NewStaticQuestionLoader(samplePool()), 2, time.Minute)

	batch, err := store.FetchBatch(context.Background())
	if err != nil {
		t.Fatalf("fetch batch: %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("expected batch of 2, got %d", len(batch))
	}

	seen := make(map[int]bool)
	for _, q := range batch {
		if seen[q.ID] {
			t.Fatalf("duplicate question %d in batch", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestQuestionStoreBatchLargerThanPool(t *testing.T) {
	store := NewQuestionStore(NewStaticQuestionLoader(samplePool()), 10, time.Minute)

	batch, err := store.FetchBatch(context.Background())
	if err != nil {
		t.Fatalf("fetch batch: %v", err)
	}
	if len(batch) != len(samplePool()) {
		t.Fatalf("expected whole pool, got %d", len(batch))
	}
}

type countingLoader struct {
	QuestionLoader
	calls int
}

func (l *countingLoader) LoadQuestions(ctx context.Context) ([]domain.Question, error) {
	l.calls++
	return l.QuestionLoader.LoadQuestions(ctx)
}

func samplePool() []domain.Question {
	return []domain.Question{
		{
			ID:            1,
			Prompt:        "Who painted the Mona Lisa?",
			Kind:          domain.KindFreeText,
			CorrectAnswer: "Leonardo da Vinci",
			Aliases:       []string{"Leonardo", "da Vinci"},
		},
		{
			ID:            2,
			Prompt:        "What is the capital of France?",
			Kind:          domain.KindFreeText,
			CorrectAnswer: "Paris",
		},
		{
			ID:            3,
			Prompt:        "Which planet is known as the Red Planet?",
			Kind:          domain.KindMultipleChoice,
			Options:       []string{"Venus", "Mars"},
			CorrectAnswer: "Mars",
		},
	}
}
