package websocket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4/engine/internal/domain"
	"github.com/iamasit07/connect4/engine/internal/service/game"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager    *ConnectionManager
	SessionManager *game.SessionManager
	Upgrader       websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, sm *game.SessionManager) *Handler {
	return &Handler{
		ConnManager:    cm,
		SessionManager: sm,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades GET /ws?game=<id> and attaches the socket to
// that game's session.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	gameID := c.Query("game")
	session, ok := h.SessionManager.GetSessionByGameID(gameID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrSessionNotFound.Error()})
		return
	}

	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(gameID, session, conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(gameID string, session *game.Session, conn *websocket.Conn) {
	h.ConnManager.AddConnection(gameID, conn)
	log.Printf("[WS] Connection attached to game %s", gameID)

	done := make(chan struct{})
	defer func() {
		close(done)
		h.ConnManager.RemoveConnectionIfMatching(gameID, conn)
		log.Printf("[WS] Connection closed for game %s", gameID)
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := h.ConnManager.Ping(gameID, conn); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	h.ConnManager.SendMessage(gameID, StateMessage(session.State()))

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Game %s disconnected unexpectedly: %v", gameID, err)
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			h.sendError(gameID, errors.New("invalid message format"))
			continue
		}

		h.processMessage(gameID, session, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(gameID string, session *game.Session, msg domain.ClientMessage) {
	switch msg.Type {
	case "move":
		if _, err := session.HandleMove(msg.Column); err != nil {
			h.sendError(gameID, err)
		}

	case "reset":
		if err := session.Reset(); err != nil {
			h.sendError(gameID, err)
		}

	case "state":
		h.ConnManager.SendMessage(gameID, StateMessage(session.State()))

	default:
		h.sendError(gameID, errors.New("unknown message type: "+msg.Type))
	}
}

func (h *Handler) sendError(gameID string, err error) {
	h.ConnManager.SendMessage(gameID, domain.ServerMessage{
		Type:    "error",
		GameID:  gameID,
		Message: err.Error(),
	})
}

// StateMessage renders a session snapshot as a game_state message.
func StateMessage(state game.SessionState) domain.ServerMessage {
	board := state.Board
	return domain.ServerMessage{
		Type:         "game_state",
		GameID:       state.GameID,
		Generation:   state.Generation,
		HumanColor:   state.HumanColor,
		AIColor:      state.AIColor,
		Difficulty:   string(state.Difficulty),
		CurrentTurn:  state.CurrentTurn,
		Board:        &board,
		Status:       state.Status,
		Winner:       state.Winner,
		WinningCells: state.WinningCells,
	}
}
