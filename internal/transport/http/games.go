package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4/engine/internal/domain"
	"github.com/iamasit07/connect4/engine/internal/service/bot"
	"github.com/iamasit07/connect4/engine/internal/service/game"
)

type GameHandler struct {
	SessionManager    *game.SessionManager
	DefaultDifficulty bot.BotDifficulty
}

func NewGameHandler(sm *game.SessionManager, defaultDifficulty bot.BotDifficulty) *GameHandler {
	return &GameHandler{
		SessionManager:    sm,
		DefaultDifficulty: defaultDifficulty,
	}
}

type createGameRequest struct {
	Difficulty string `json:"difficulty"`
	// HumanColor is "red" or "yellow"; anything empty leaves it to a coin flip.
	HumanColor string `json:"humanColor"`
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

type moveResponse struct {
	Row   int               `json:"row"`
	State game.SessionState `json:"state"`
}

func (h *GameHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": h.SessionManager.Count(),
	})
}

// CreateGame starts a new game against the bot
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	difficulty := h.DefaultDifficulty
	if req.Difficulty != "" {
		difficulty = bot.ParseDifficulty(req.Difficulty)
	}

	humanColor, ok := domain.ParseCell(req.HumanColor)
	if !ok {
		respondError(c, domain.ErrInvalidPiece)
		return
	}

	session, err := h.SessionManager.CreateSession(difficulty, humanColor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session.State())
}

func (h *GameHandler) GetGame(c *gin.Context) {
	session, ok := h.SessionManager.GetSessionByGameID(c.Param("id"))
	if !ok {
		respondError(c, domain.ErrSessionNotFound)
		return
	}
	c.JSON(http.StatusOK, session.State())
}

// MakeMove plays the human's move. The bot answers in the background;
// poll the game or watch the websocket for its reply.
func (h *GameHandler) MakeMove(c *gin.Context) {
	session, ok := h.SessionManager.GetSessionByGameID(c.Param("id"))
	if !ok {
		respondError(c, domain.ErrSessionNotFound)
		return
	}

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	row, err := session.HandleMove(*req.Column)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, moveResponse{Row: row, State: session.State()})
}

func (h *GameHandler) ResetGame(c *gin.Context) {
	session, ok := h.SessionManager.GetSessionByGameID(c.Param("id"))
	if !ok {
		respondError(c, domain.ErrSessionNotFound)
		return
	}
	if err := session.Reset(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.State())
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	if err := h.SessionManager.RemoveSession(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
