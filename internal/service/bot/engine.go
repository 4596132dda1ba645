package bot

import (
	"log"
	"math"

	"github.com/iamasit07/connect4/engine/internal/domain"
)

// MoveChooser picks a column for aiColor. Implementations never modify
// the board and are safe to call from any goroutine.
type MoveChooser interface {
	ChooseMove(board domain.Board, aiColor, opponentColor domain.Cell) int
}

var defaultEngine = &Engine{MaxDepth: MINIMAX_DEPTH}

// ChooseAIMove runs the default depth-6 engine.
func ChooseAIMove(board domain.Board, aiColor, opponentColor domain.Cell) int {
	return defaultEngine.ChooseMove(board, aiColor, opponentColor)
}

// ChooseMove applies, in order:
// 1. win now if any column wins
// 2. block the opponent's immediate win
// 3. otherwise the column with the best minimax score
// Ties always go to the lowest column index.
func (e *Engine) ChooseMove(board domain.Board, aiColor, opponentColor domain.Cell) int {
	validColumns := domain.ValidMoves(board)

	if col, ok := findWinningMove(board, validColumns, aiColor); ok {
		return col
	}

	if col, ok := findWinningMove(board, validColumns, opponentColor); ok {
		return col
	}

	bestCol := -1
	bestScore := math.MinInt
	for _, col := range validColumns {
		child, _, err := domain.DropPiece(board, col, aiColor)
		if err != nil {
			continue
		}

		// the opponent answers next, so the child is a minimizing node
		score := e.Minimax(child, 0, false, math.MinInt, math.MaxInt, aiColor, opponentColor)
		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	if bestCol == -1 {
		log.Printf("[BOT] No legal column on a %dx%d board, falling back to center", board.Rows(), board.Cols())
		return board.Cols() / 2
	}

	return bestCol
}

// findWinningMove returns the first column where color would connect four.
func findWinningMove(board domain.Board, validColumns []int, color domain.Cell) (int, bool) {
	for _, col := range validColumns {
		testBoard, row, err := domain.DropPiece(board, col, color)
		if err != nil {
			continue
		}
		if _, won := domain.DetectWin(testBoard, row, col); won {
			return col, true
		}
	}
	return -1, false
}
