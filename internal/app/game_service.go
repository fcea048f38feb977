package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"trivia-quiz-service/internal/domain"
)

// SessionRepository abstracts how sessions are tracked (in-memory, Redis-backed).
type SessionRepository interface {
	GetOrCreate(sessionID string) *Session
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// QuestionStore fetches one random question batch per game.
type QuestionStore interface {
	FetchBatch(ctx context.Context) ([]domain.Question, error)
}

// LeaderboardStore persists final scores and serves the top entries.
type LeaderboardStore interface {
	SubmitScore(ctx context.Context, name string, score int) error
	Top(ctx context.Context, n int) (domain.Leaderboard, error)
}

// AnswerOutcome summarizes a graded answer for the presentation layer.
type AnswerOutcome struct {
	Correct       bool                 `json:"correct"`
	CorrectAnswer string               `json:"correctAnswer"`
	Score         int                  `json:"score"`
	Finished      bool                 `json:"finished"`
	Next          *domain.QuestionView `json:"next,omitempty"`
}

// GameService contains the trivia game use cases.
type GameService struct {
	sessions    SessionRepository
	questions   QuestionStore
	leaderboard LeaderboardStore
	log         zerolog.Logger
}

func NewGameService(sessions SessionRepository, questions QuestionStore, leaderboard LeaderboardStore, log zerolog.Logger) *GameService {
	return &GameService{
		sessions:    sessions,
		questions:   questions,
		leaderboard: leaderboard,
		log:         log,
	}
}

// NewSession is exported for infrastructure layers that need to seed sessions.
func NewSession(id string) *Session {
	return newSession(id)
}

// StartGame confirms the nickname, fetches exactly one question batch, and
// moves the session into playing. On any failure the session stays in setup
// and StartGame may be retried.
func (g *GameService) StartGame(ctx context.Context, sessionID, nickname string) (domain.QuestionView, error) {
	session := g.sessions.GetOrCreate(sessionID)

	trimmed, err := session.beginFetch(nickname)
	if err != nil {
		return domain.QuestionView{}, err
	}

	questions, fetchErr := g.questions.FetchBatch(ctx)
	if fetchErr != nil {
		fetchErr = fmt.Errorf("%w: %v", domain.ErrQuestionLoad, fetchErr)
	}
	return session.finishFetch(trimmed, questions, fetchErr)
}

// SubmitAnswer grades the current question and advances the session. When
// the last question is answered the final score is submitted to the
// leaderboard; a failed submission is logged and never blocks the game.
func (g *GameService) SubmitAnswer(ctx context.Context, sessionID, text string) (AnswerOutcome, error) {
	session, ok := g.sessions.Get(sessionID)
	if !ok {
		return AnswerOutcome{}, domain.ErrSessionNotFound
	}

	outcome, err := session.answer(text)
	if err != nil {
		return AnswerOutcome{}, err
	}

	if outcome.Finished {
		name := session.Nickname()
		if err := g.leaderboard.SubmitScore(ctx, name, outcome.Score); err != nil {
			g.log.Warn().Err(err).Str("nickname", name).Int("score", outcome.Score).
				Msg("leaderboard submit failed")
		}
	}
	return outcome, nil
}

// Restart returns the session to setup for a fresh play-through.
func (g *GameService) Restart(sessionID string) error {
	session, ok := g.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.reset()
	return nil
}

// SessionSnapshot is the observable state a presentation layer binds to.
type SessionSnapshot struct {
	SessionID string               `json:"sessionId"`
	State     State                `json:"state"`
	Nickname  string               `json:"nickname,omitempty"`
	Score     int                  `json:"score"`
	Answered  int                  `json:"answered"`
	Total     int                  `json:"total"`
	Question  *domain.QuestionView `json:"question,omitempty"`
}

// Snapshot returns the observable state of a session.
func (g *GameService) Snapshot(sessionID string) (SessionSnapshot, bool) {
	session, ok := g.sessions.Get(sessionID)
	if !ok {
		return SessionSnapshot{}, false
	}
	answered, total := session.Progress()
	snap := SessionSnapshot{
		SessionID: sessionID,
		State:     session.State(),
		Nickname:  session.Nickname(),
		Score:     session.Score(),
		Answered:  answered,
		Total:     total,
	}
	if view, ok := session.CurrentQuestion(); ok {
		snap.Question = &view
	}
	return snap, true
}

// Leaderboard returns the current top entries.
func (g *GameService) Leaderboard(ctx context.Context, n int) (domain.Leaderboard, error) {
	return g.leaderboard.Top(ctx, n)
}

// Leave drops the session from the registry once the client disconnects.
// Playing sessions are kept so a reconnecting client can resume.
func (g *GameService) Leave(sessionID string) {
	session, ok := g.sessions.Get(sessionID)
	if !ok {
		return
	}
	if session.State() != StatePlaying {
		g.sessions.Delete(sessionID)
	}
}
