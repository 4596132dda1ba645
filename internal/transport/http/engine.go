package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4/engine/internal/domain"
	"github.com/iamasit07/connect4/engine/internal/service/bot"
	"github.com/iamasit07/connect4/engine/internal/service/game"
)

// EngineHandler exposes the engine on caller-supplied boards, no session
// involved. Boards larger than MaxRows x MaxColumns are refused since the
// search cost grows with the number of columns.
type EngineHandler struct {
	GameService *game.Service
	MaxRows     int
	MaxColumns  int
}

func NewEngineHandler(gs *game.Service, maxRows, maxColumns int) *EngineHandler {
	return &EngineHandler{
		GameService: gs,
		MaxRows:     maxRows,
		MaxColumns:  maxColumns,
	}
}

type boardRequest struct {
	Board      domain.Board `json:"board"`
	Color      string       `json:"color" binding:"required"`
	Column     *int         `json:"column"`
	Difficulty string       `json:"difficulty"`
}

// bind parses the request and resolves the color. It writes the error
// response itself and returns false when the request is unusable.
func (h *EngineHandler) bind(c *gin.Context) (boardRequest, domain.Cell, bool) {
	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return req, domain.Empty, false
	}
	if req.Board.Cols() == 0 {
		respondError(c, domain.ErrInvalidBoard)
		return req, domain.Empty, false
	}
	if req.Board.Rows() > h.MaxRows || req.Board.Cols() > h.MaxColumns {
		respondError(c, fmt.Errorf("%w: %dx%d exceeds %dx%d", domain.ErrInvalidDimensions,
			req.Board.Rows(), req.Board.Cols(), h.MaxRows, h.MaxColumns))
		return req, domain.Empty, false
	}
	color, ok := domain.ParseCell(req.Color)
	if !ok || !color.IsPlayer() {
		respondError(c, domain.ErrInvalidPiece)
		return req, domain.Empty, false
	}
	return req, color, true
}

// SuggestMove returns the column the bot would play for color
func (h *EngineHandler) SuggestMove(c *gin.Context) {
	req, color, ok := h.bind(c)
	if !ok {
		return
	}

	suggestion, err := h.GameService.SuggestMove(req.Board, color, bot.ParseDifficulty(req.Difficulty))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

func (h *EngineHandler) Evaluate(c *gin.Context) {
	req, color, ok := h.bind(c)
	if !ok {
		return
	}

	score, err := h.GameService.Evaluate(req.Board, color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": score})
}

func (h *EngineHandler) Drop(c *gin.Context) {
	req, color, ok := h.bind(c)
	if !ok {
		return
	}
	if req.Column == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	result, err := h.GameService.Drop(req.Board, *req.Column, color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
