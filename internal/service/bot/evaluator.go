package bot

import (
	"github.com/iamasit07/connect4/engine/internal/domain"
)

const (
	SCORE_FOUR        = 1000 // only reachable if a finished board slips through
	SCORE_THREE       = 50   // three own pieces and one gap
	SCORE_TWO         = 10   // two own pieces and two gaps
	SCORE_BLOCK_THREE = -80  // opponent three with one gap, must block
	SCORE_CENTER      = 3    // per own piece in the middle column
)

// every window of four cells is described by its start and step
var windowSteps = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{-1, 1}, // diagonal /
}

// Evaluate scores a non-terminal board from forColor's point of view.
// The opponent penalty has no mirrored bonus, so
// Evaluate(b, red) != -Evaluate(b, yellow) in general.
func Evaluate(board domain.Board, forColor domain.Cell) int {
	opponent := forColor.Opponent()
	score := 0

	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			for _, step := range windowSteps {
				endRow := row + step[0]*(domain.ToWin-1)
				endCol := col + step[1]*(domain.ToWin-1)
				if !board.InBounds(endRow, endCol) {
					continue
				}
				score += scoreWindow(board, row, col, step[0], step[1], forColor, opponent)
			}
		}
	}

	centerCol := board.Cols() / 2
	for row := 0; row < board.Rows(); row++ {
		if board.At(row, centerCol) == forColor {
			score += SCORE_CENTER
		}
	}

	return score
}

func scoreWindow(board domain.Board, row, col, dRow, dCol int, own, opponent domain.Cell) int {
	ownCount, oppCount, emptyCount := 0, 0, 0
	for i := 0; i < domain.ToWin; i++ {
		switch board.At(row+dRow*i, col+dCol*i) {
		case own:
			ownCount++
		case opponent:
			oppCount++
		default:
			emptyCount++
		}
	}

	score := 0
	switch {
	case ownCount == 4:
		score += SCORE_FOUR
	case ownCount == 3 && emptyCount == 1:
		score += SCORE_THREE
	case ownCount == 2 && emptyCount == 2:
		score += SCORE_TWO
	}

	if oppCount == 3 && emptyCount == 1 {
		score += SCORE_BLOCK_THREE
	}

	return score
}
