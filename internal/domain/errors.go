package domain

import "errors"

var (
	// ErrNicknameRequired is returned when a game is started without a usable nickname.
	ErrNicknameRequired = errors.New("nickname required")
	// ErrGameInProgress is returned when StartGame is called while a game is
	// already playing or a question fetch is still in flight.
	ErrGameInProgress = errors.New("game already in progress")
	// ErrNotPlaying is returned when an answer arrives outside the playing state.
	ErrNotPlaying = errors.New("no game in progress")
	// ErrNoQuestions indicates the question store returned an empty batch.
	ErrNoQuestions = errors.New("question store returned no questions")
	// ErrQuestionLoad wraps transport/store failures while fetching a batch.
	ErrQuestionLoad = errors.New("failed to load questions")
	// ErrSessionNotFound is returned when a session ID is unknown to the registry.
	ErrSessionNotFound = errors.New("session not found")
)
