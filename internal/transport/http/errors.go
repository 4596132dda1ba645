package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4/engine/internal/domain"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrGameNotActive),
		errors.Is(err, domain.ErrNotYourTurn),
		errors.Is(err, domain.ErrAIThinking),
		errors.Is(err, domain.ErrColumnFull):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidColumn),
		errors.Is(err, domain.ErrInvalidPiece),
		errors.Is(err, domain.ErrInvalidBoard),
		errors.Is(err, domain.ErrInvalidDimensions):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
