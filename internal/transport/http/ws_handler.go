package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

// WSHandler drives one quiz session per websocket connection.
type WSHandler struct {
	service  *app.GameService
	topN     int
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService, topN int, log zerolog.Logger) *WSHandler {
	return &WSHandler{
		service: service,
		topN:    topN,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	Nickname string `json:"nickname"`
}

type answerPayload struct {
	Answer string `json:"answer"`
}

type sessionPayload struct {
	SessionID string    `json:"sessionId"`
	State     app.State `json:"state"`
}

type finishedPayload struct {
	Nickname    string             `json:"nickname"`
	Score       int                `json:"score"`
	Leaderboard domain.Leaderboard `json:"leaderboard"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the connection and runs the game loop. Clients may pass
// sessionId to resume a playing session; otherwise one is assigned.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}
	defer conn.Close()
	defer h.service.Leave(sessionID)

	state := app.StateSetup
	snap, resumed := h.service.Snapshot(sessionID)
	if resumed {
		state = snap.State
	}
	h.send(conn, "session", sessionPayload{SessionID: sessionID, State: state})

	// If the client resumed a playing session, replay the current question.
	if resumed && snap.Question != nil {
		h.send(conn, "question", *snap.Question)
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}
		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.sendError(conn, "invalid start payload")
				continue
			}
			view, err := h.service.StartGame(r.Context(), sessionID, payload.Nickname)
			if err != nil {
				h.sendError(conn, userMessage(err))
				continue
			}
			h.send(conn, "question", view)
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.sendError(conn, "invalid answer payload")
				continue
			}
			outcome, err := h.service.SubmitAnswer(r.Context(), sessionID, payload.Answer)
			if err != nil {
				h.sendError(conn, userMessage(err))
				continue
			}
			h.send(conn, "answerResult", outcome)
			if outcome.Finished {
				h.sendFinished(conn, r, sessionID, outcome.Score)
			}
		case "restart":
			if err := h.service.Restart(sessionID); err != nil {
				h.sendError(conn, userMessage(err))
				continue
			}
			h.send(conn, "session", sessionPayload{SessionID: sessionID, State: app.StateSetup})
		default:
			h.sendError(conn, "unsupported message type")
		}
	}
}

func (h *WSHandler) sendFinished(conn *websocket.Conn, r *http.Request, sessionID string, score int) {
	lb, err := h.service.Leaderboard(r.Context(), h.topN)
	if err != nil {
		h.log.Warn().Err(err).Msg("leaderboard load failed")
		lb = domain.Leaderboard{}
	}
	nickname := ""
	if snap, ok := h.service.Snapshot(sessionID); ok {
		nickname = snap.Nickname
	}
	h.send(conn, "finished", finishedPayload{
		Nickname:    nickname,
		Score:       score,
		Leaderboard: lb,
	})
}

func (h *WSHandler) send(conn *websocket.Conn, msgType string, payload any) {
	if err := conn.WriteJSON(outboundMessage{Type: msgType, Payload: payload}); err != nil {
		h.log.Warn().Err(err).Msg("ws write error")
	}
}

func (h *WSHandler) sendError(conn *websocket.Conn, message string) {
	h.send(conn, "error", errorPayload{Message: message})
}

// userMessage keeps wire errors stable for known sentinels and generic for
// everything else.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNicknameRequired),
		errors.Is(err, domain.ErrGameInProgress),
		errors.Is(err, domain.ErrNotPlaying),
		errors.Is(err, domain.ErrNoQuestions),
		errors.Is(err, domain.ErrSessionNotFound):
		return err.Error()
	case errors.Is(err, domain.ErrQuestionLoad):
		return domain.ErrQuestionLoad.Error()
	default:
		return "internal error"
	}
}
