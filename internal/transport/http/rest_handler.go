package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"trivia-quiz-service/internal/app"
)

// RESTHandler exposes the store-backed endpoints: a random question batch,
// score submission, and the leaderboard.
type RESTHandler struct {
	questions   app.QuestionStore
	leaderboard app.LeaderboardStore
	topN        int
	log         zerolog.Logger
}

func NewRESTHandler(questions app.QuestionStore, leaderboard app.LeaderboardStore, topN int, log zerolog.Logger) *RESTHandler {
	return &RESTHandler{questions: questions, leaderboard: leaderboard, topN: topN, log: log}
}

// Register mounts the REST routes on the mux.
func (h *RESTHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/questions", h.handleQuestions)
	mux.HandleFunc("/api/scores", h.handleSubmitScore)
	mux.HandleFunc("/api/leaderboard", h.handleLeaderboard)
}

func (h *RESTHandler) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	batch, err := h.questions.FetchBatch(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("fetch questions failed")
		h.writeError(w, http.StatusInternalServerError, "failed to fetch questions")
		return
	}
	h.writeJSON(w, http.StatusOK, batch)
}

type submitScoreRequest struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func (h *RESTHandler) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req submitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" || req.Score < 0 {
		h.writeError(w, http.StatusBadRequest, "name required and score must be non-negative")
		return
	}
	if err := h.leaderboard.SubmitScore(r.Context(), req.Name, req.Score); err != nil {
		h.log.Error().Err(err).Str("name", req.Name).Msg("submit score failed")
		h.writeError(w, http.StatusInternalServerError, "failed to submit score")
		return
	}
	h.writeJSON(w, http.StatusCreated, req)
}

func (h *RESTHandler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	lb, err := h.leaderboard.Top(r.Context(), h.topN)
	if err != nil {
		h.log.Error().Err(err).Msg("load leaderboard failed")
		h.writeError(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	h.writeJSON(w, http.StatusOK, lb)
}

func (h *RESTHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn().Err(err).Msg("write response failed")
	}
}

func (h *RESTHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
