package server

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"spider/internal/engine"
)

func generateSessionID() string {
	return time.Now().Format("20060102150405")
}

// Session is the single-player websocket session. The engine itself is not
// safe for concurrent use; the mutex serializes all intents from the
// frontend connection.
type Session struct {
	mu        sync.Mutex
	id        string
	game      *engine.Game
	actionIds map[string]bool
	conn      *websocket.Conn
	log       *slog.Logger
}

var (
	sessionOnce sync.Once
	sessionInst *Session
)

func GetSession() *Session {
	sessionOnce.Do(func() {
		sessionInst = &Session{
			id:        generateSessionID(),
			actionIds: map[string]bool{},
			log:       slog.Default(),
		}
	})
	return sessionInst
}

func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

type ClientMessage struct {
	Type     string      `json:"type"`
	ActionId string      `json:"actionId,omitempty"`
	Config   *NewGameDTO `json:"config,omitempty"`
	Move     *MoveDTO    `json:"move,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
	Hint   *HintView  `json:"hint,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HintView struct {
	Move  MoveDTO `json:"move"`
	Legal bool    `json:"legal"`
}

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session":
		s.sendState(nil)
	case "request_state":
		s.sendState(nil)
	case "new_game":
		s.startGame(msg.Config)
	case "move":
		s.applyMove(msg.ActionId, msg.Move)
	case "deal":
		s.applyDeal(msg.ActionId)
	case "hint":
		s.sendHint(msg.Move)
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) startGame(cfg *NewGameDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg == nil {
		s.sendError("bad_request", "config required")
		return
	}
	seed := uint64(time.Now().UnixNano())
	if cfg.Seed != "" {
		parsed, err := parseSeed(cfg.Seed)
		if err != nil {
			s.sendError("bad_seed", err.Error())
			return
		}
		seed = parsed
	}
	game, err := engine.NewGame(cfg.SuitCount, seed, cfg.Relaxed)
	if err != nil {
		s.sendError("bad_config", err.Error())
		return
	}
	s.game = game
	s.actionIds = map[string]bool{}
	s.log.Info("new game", "suitCount", cfg.SuitCount, "seed", formatSeed(seed), "relaxed", cfg.Relaxed)
	s.sendStateLocked(nil)
}

func (s *Session) applyMove(actionId string, move *MoveDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		s.sendError("not_started", "game not started")
		return
	}
	if move == nil {
		s.sendError("bad_request", "move required")
		return
	}
	if actionId == "" {
		s.sendError("missing_action_id", "actionId required")
		return
	}
	if s.actionIds[actionId] {
		s.sendStateLocked(nil)
		return
	}
	s.actionIds[actionId] = true

	prev := s.game.Snapshot()
	if err := s.game.MoveSequence(move.Src, move.Index, move.Dst); err != nil {
		s.sendError("illegal_move", err.Error())
		return
	}
	s.sendStateLocked(buildMoveEvents(prev, s.game.Snapshot(), *move))
}

func (s *Session) applyDeal(actionId string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		s.sendError("not_started", "game not started")
		return
	}
	if actionId == "" {
		s.sendError("missing_action_id", "actionId required")
		return
	}
	if s.actionIds[actionId] {
		s.sendStateLocked(nil)
		return
	}
	s.actionIds[actionId] = true

	prev := s.game.Snapshot()
	if err := s.game.DealFromStock(); err != nil {
		s.sendError("illegal_deal", err.Error())
		return
	}
	s.sendStateLocked(buildDealEvents(prev, s.game.Snapshot()))
}

func (s *Session) sendHint(move *MoveDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		s.sendError("not_started", "game not started")
		return
	}
	if move == nil {
		s.sendError("bad_request", "move required")
		return
	}
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type: "hint",
		Hint: &HintView{
			Move:  *move,
			Legal: s.game.IsLegalMove(move.Src, move.Index, move.Dst),
		},
	}
	_ = s.conn.WriteJSON(msg)
}

func (s *Session) sendState(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked(events)
}

func (s *Session) sendStateLocked(events []Event) {
	if s.conn == nil {
		return
	}
	if s.game == nil {
		game, err := engine.NewGame(1, uint64(time.Now().UnixNano()), false)
		if err != nil {
			s.sendError("internal", err.Error())
			return
		}
		s.game = game
	}
	msg := ServerMessage{
		Type:   "state",
		State:  BuildGameView(s.game.Snapshot()),
		Events: events,
	}
	_ = s.conn.WriteJSON(msg)
}

func (s *Session) sendError(code, message string) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	}
	_ = s.conn.WriteJSON(msg)
}
