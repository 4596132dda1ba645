package bot

import (
	"math"

	"github.com/iamasit07/connect4/engine/internal/domain"
)

const (
	MINIMAX_DEPTH = 6
	MINIMAX_WIN   = 100000
	MINIMAX_DRAW  = 0
)

// Engine is the depth-bounded alpha-beta searcher. The zero value searches
// to MINIMAX_DEPTH.
type Engine struct {
	MaxDepth int
}

func NewEngine(maxDepth int) *Engine {
	return &Engine{MaxDepth: maxDepth}
}

// depth cutoff is a hard bound; anything below 1 falls back to the default
func (e *Engine) maxDepth() int {
	if e == nil || e.MaxDepth < 1 {
		return MINIMAX_DEPTH
	}
	return e.MaxDepth
}

// Minimax returns the score of board for maxColor, with depth counting the
// plies already played below the root. Wins are worth more the sooner they
// happen and losses cost less the later they happen. Columns are tried left
// to right without reordering.
func (e *Engine) Minimax(board domain.Board, depth int, maximizing bool, alpha, beta int, maxColor, minColor domain.Cell) int {
	if winner, _, ok := domain.FindWinner(board); ok {
		switch winner {
		case maxColor:
			return MINIMAX_WIN - depth
		case minColor:
			return depth - MINIMAX_WIN
		}
	}

	if domain.IsBoardFull(board) {
		return MINIMAX_DRAW
	}

	if depth >= e.maxDepth() {
		return Evaluate(board, maxColor) - Evaluate(board, minColor)
	}

	if maximizing {
		maxEval := math.MinInt
		for col := 0; col < board.Cols(); col++ {
			child, _, err := domain.DropPiece(board, col, maxColor)
			if err != nil {
				continue
			}

			eval := e.Minimax(child, depth+1, false, alpha, beta, maxColor, minColor)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)

			if beta <= alpha {
				break // beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for col := 0; col < board.Cols(); col++ {
		child, _, err := domain.DropPiece(board, col, minColor)
		if err != nil {
			continue
		}

		eval := e.Minimax(child, depth+1, true, alpha, beta, maxColor, minColor)
		minEval = min(minEval, eval)
		beta = min(beta, eval)

		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return minEval
}
