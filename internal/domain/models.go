package domain

import "time"

// QuestionKind discriminates the two question variants.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindFreeText       QuestionKind = "free_text"
)

// Question is an immutable record supplied by the question store.
// Options is populated only for multiple-choice questions, and for those
// the store guarantees CorrectAnswer appears among Options.
type Question struct {
	ID            int          `json:"id"`
	Prompt        string       `json:"prompt"`
	Kind          QuestionKind `json:"kind"`
	Difficulty    int          `json:"difficulty"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Aliases       []string     `json:"aliases,omitempty"`
}

// QuestionView is the answer-free projection of a Question sent to clients.
type QuestionView struct {
	Index      int          `json:"index"`
	Total      int          `json:"total"`
	Prompt     string       `json:"prompt"`
	Kind       QuestionKind `json:"kind"`
	Difficulty int          `json:"difficulty"`
	Options    []string     `json:"options,omitempty"`
}

// LeaderboardEntry is one persisted (name, score) submission.
type LeaderboardEntry struct {
	Name        string    `json:"name"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Leaderboard is a snapshot of the top scores.
type Leaderboard struct {
	Entries   []LeaderboardEntry `json:"entries"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
