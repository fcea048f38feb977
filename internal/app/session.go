package app

import (
	"strings"
	"sync"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/match"
)

// State is the lifecycle phase of a play-through.
type State string

const (
	StateSetup    State = "setup"
	StatePlaying  State = "playing"
	StateFinished State = "finished"
)

// Session is one play-through: a fixed question batch, a cursor, a running
// score, and the lifecycle state. All transitions go through GameService.
type Session struct {
	id string

	mu        sync.Mutex
	nickname  string
	questions []domain.Question
	current   int
	score     int
	state     State
	fetching  bool
}

func newSession(id string) *Session {
	return &Session{
		id:    id,
		state: StateSetup,
	}
}

// ID returns the registry key of the session.
func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Score returns the running score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Progress returns the number of answered questions and the batch size.
func (s *Session) Progress() (answered, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, len(s.questions)
}

// Nickname returns the player name confirmed at start.
func (s *Session) Nickname() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nickname
}

// CurrentQuestion returns the answer-free view of the question under the
// cursor, or false when the session is not playing.
func (s *Session) CurrentQuestion() (domain.QuestionView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying || s.current >= len(s.questions) {
		return domain.QuestionView{}, false
	}
	return s.viewLocked(s.current), true
}

// beginFetch validates the nickname and reserves the session for a single
// in-flight question fetch. A second start attempt while the fetch is
// outstanding, or once the game is playing, is rejected.
func (s *Session) beginFetch(nickname string) (string, error) {
	trimmed := trimmedNickname(nickname)
	if trimmed == "" {
		return "", domain.ErrNicknameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetching || s.state == StatePlaying {
		return "", domain.ErrGameInProgress
	}
	s.fetching = true
	return trimmed, nil
}

// finishFetch installs the fetched batch and enters playing, or rolls the
// session back to setup when the fetch failed.
func (s *Session) finishFetch(nickname string, questions []domain.Question, fetchErr error) (domain.QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetching = false

	if fetchErr != nil {
		return domain.QuestionView{}, fetchErr
	}
	if len(questions) == 0 {
		return domain.QuestionView{}, domain.ErrNoQuestions
	}

	s.nickname = nickname
	s.questions = questions
	s.current = 0
	s.score = 0
	s.state = StatePlaying
	return s.viewLocked(0), nil
}

// answer grades the question under the cursor, advances it, and reports
// whether the session just finished. Each question is graded exactly once.
func (s *Session) answer(text string) (AnswerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying || s.current >= len(s.questions) {
		return AnswerOutcome{}, domain.ErrNotPlaying
	}

	question := s.questions[s.current]
	var correct bool
	switch question.Kind {
	case domain.KindFreeText:
		correct = match.IsCorrect(text, question.CorrectAnswer, question.Aliases)
	case domain.KindMultipleChoice:
		// Option picks are exact string equality, no fuzzy pipeline.
		correct = text == question.CorrectAnswer
	default:
		correct = false
	}

	if correct {
		s.score++
	}
	s.current++

	outcome := AnswerOutcome{
		Correct:       correct,
		CorrectAnswer: question.CorrectAnswer,
		Score:         s.score,
	}
	if s.current == len(s.questions) {
		s.state = StateFinished
		outcome.Finished = true
	} else {
		next := s.viewLocked(s.current)
		outcome.Next = &next
	}
	return outcome, nil
}

// reset returns the session to setup, dropping the previous play-through.
func (s *Session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nickname = ""
	s.questions = nil
	s.current = 0
	s.score = 0
	s.state = StateSetup
	s.fetching = false
}

func (s *Session) viewLocked(index int) domain.QuestionView {
	q := s.questions[index]
	return domain.QuestionView{
		Index:      index,
		Total:      len(s.questions),
		Prompt:     q.Prompt,
		Kind:       q.Kind,
		Difficulty: q.Difficulty,
		Options:    q.Options,
	}
}

func trimmedNickname(nickname string) string {
	return strings.TrimSpace(nickname)
}
