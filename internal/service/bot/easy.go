package bot

import (
	"math/rand"
	"sync"

	"github.com/iamasit07/connect4/engine/internal/domain"
)

// EasyBot only looks one move ahead: win, block, otherwise anything legal.
type EasyBot struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewEasyBot(seed int64) *EasyBot {
	return &EasyBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *EasyBot) ChooseMove(board domain.Board, aiColor, opponentColor domain.Cell) int {
	validColumns := domain.ValidMoves(board)
	if len(validColumns) == 0 {
		return board.Cols() / 2
	}

	if col, ok := findWinningMove(board, validColumns, aiColor); ok {
		return col
	}

	if col, ok := findWinningMove(board, validColumns, opponentColor); ok {
		return col
	}

	// rand.Rand is not safe for concurrent use
	b.mu.Lock()
	defer b.mu.Unlock()
	return validColumns[b.rng.Intn(len(validColumns))]
}
