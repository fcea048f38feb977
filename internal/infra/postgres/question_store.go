package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"trivia-quiz-service/internal/domain"
)

// QuestionStore serves random question batches from the questions table,
// where each row holds one question as a JSONB document.
type QuestionStore struct {
	pool      *pgxpool.Pool
	batchSize int
}

func NewQuestionStore(pool *pgxpool.Pool, batchSize int) *QuestionStore {
	return &QuestionStore{pool: pool, batchSize: batchSize}
}

func (s *QuestionStore) FetchBatch(ctx context.Context) ([]domain.Question, error) {
	rows, err := s.pool.Query(ctx, `SELECT data FROM questions ORDER BY random() LIMIT $1`, s.batchSize)
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		var q domain.Question
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, fmt.Errorf("unmarshal question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}
	return questions, nil
}
