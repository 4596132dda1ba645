package domain

// each axis is walked in both directions starting from the placed cell.
// the order fixes which line is reported when one move completes several.
var winAxes = [4][2][2]int{
	{{0, 1}, {0, -1}},  // horizontal: right, left
	{{1, 0}, {-1, 0}},  // vertical: down, up
	{{1, 1}, {-1, -1}}, // diagonal \: down-right, up-left
	{{1, -1}, {-1, 1}}, // diagonal /: down-left, up-right
}

// DetectWin checks only the lines passing through (row, col), which is
// enough right after a piece has been placed there. The returned cells
// start with the origin, followed by the cells found in the first and
// then the second direction of the winning axis.
func DetectWin(b Board, row, col int) (WinningCells, bool) {
	color := b.At(row, col)
	if !color.IsPlayer() {
		return nil, false
	}

	for _, axis := range winAxes {
		line := WinningCells{{Row: row, Col: col}}
		for _, dir := range axis {
			n := CountDiskInDirection(b, row, col, dir[0], dir[1], color)
			for i := 1; i <= n; i++ {
				line = append(line, Position{Row: row + dir[0]*i, Col: col + dir[1]*i})
			}
		}
		if len(line) >= ToWin {
			return line[:ToWin], true
		}
	}

	return nil, false
}

// FindWinner scans the whole board, top row first, and reports the first
// complete line it meets.
func FindWinner(b Board) (Cell, WinningCells, bool) {
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if b.At(row, col) == Empty {
				continue
			}
			if cells, ok := DetectWin(b, row, col); ok {
				return b.At(row, col), cells, true
			}
		}
	}
	return Empty, nil, false
}

// ResultAfterMove decides the game state after a piece landed on
// (row, col). A win takes precedence over a full board.
func ResultAfterMove(b Board, row, col int) GameResult {
	if cells, ok := DetectWin(b, row, col); ok {
		return GameResult{Outcome: Win, Winner: b.At(row, col), Cells: cells}
	}
	if IsBoardFull(b) {
		return GameResult{Outcome: Draw}
	}
	return GameResult{Outcome: InProgress}
}

// ResultOf is the whole-board variant of ResultAfterMove, for boards whose
// last move is unknown.
func ResultOf(b Board) GameResult {
	if winner, cells, ok := FindWinner(b); ok {
		return GameResult{Outcome: Win, Winner: winner, Cells: cells}
	}
	if IsBoardFull(b) {
		return GameResult{Outcome: Draw}
	}
	return GameResult{Outcome: InProgress}
}
