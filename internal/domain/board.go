package domain

import (
	"encoding/json"
	"fmt"
)

// Board is a rows x cols grid. Row 0 is the top row, rows-1 the bottom one.
// Boards are values: every operation that places a piece returns a new
// board and leaves its input untouched.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

func NewBoard(rows, cols int) (Board, error) {
	if rows <= 0 || cols <= 0 {
		return Board{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// NewDefaultBoard returns the classic 6x7 board.
func NewDefaultBoard() Board {
	b, _ := NewBoard(DefaultRows, DefaultColumns)
	return b
}

// BoardFromCells builds a board from a row-major grid (row 0 on top).
// Cell values must be 0, 1 or 2 and every column has to respect gravity.
func BoardFromCells(grid [][]int) (Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return Board{}, ErrInvalidDimensions
	}

	b, err := NewBoard(len(grid), len(grid[0]))
	if err != nil {
		return Board{}, err
	}

	for r, row := range grid {
		if len(row) != b.cols {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), b.cols)
		}
		for c, v := range row {
			cell := Cell(v)
			if cell != Empty && !cell.IsPlayer() {
				return Board{}, fmt.Errorf("%w: unknown cell value %d at (%d,%d)", ErrInvalidBoard, v, r, c)
			}
			b.cells[b.index(r, c)] = cell
		}
	}

	// a piece can only sit on the floor or on another piece
	for c := 0; c < b.cols; c++ {
		for r := 0; r < b.rows-1; r++ {
			if b.At(r, c) != Empty && b.At(r+1, c) == Empty {
				return Board{}, fmt.Errorf("%w: floating piece at (%d,%d)", ErrInvalidBoard, r, c)
			}
		}
	}

	return b, nil
}

func (b Board) Rows() int { return b.rows }
func (b Board) Cols() int { return b.cols }

func (b Board) index(row, col int) int {
	return row*b.cols + col
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns Empty for positions outside the board.
func (b Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[b.index(row, col)]
}

// this creates a deep copy of the board
func (b Board) Clone() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{rows: b.rows, cols: b.cols, cells: cells}
}

// Cells converts the board into a plain grid for storage and the wire.
func (b Board) Cells() [][]int {
	grid := make([][]int, b.rows)
	for r := range grid {
		grid[r] = make([]int, b.cols)
		for c := range grid[r] {
			grid[r][c] = int(b.cells[b.index(r, c)])
		}
	}
	return grid
}

func (b Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Cells())
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var grid [][]int
	if err := json.Unmarshal(data, &grid); err != nil {
		return err
	}
	parsed, err := BoardFromCells(grid)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// LowestEmptyRow returns the row a piece dropped in col would land on,
// or -1 when the column is full or out of range.
func LowestEmptyRow(b Board, col int) int {
	if col < 0 || col >= b.cols {
		return -1
	}
	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[b.index(row, col)] == Empty {
			return row
		}
	}
	return -1
}

// DropPiece lets a piece of the given color fall down column col.
// On failure the original board is returned as is.
func DropPiece(b Board, col int, color Cell) (Board, int, error) {
	if col < 0 || col >= b.cols {
		return b, -1, ErrInvalidColumn
	}
	if !color.IsPlayer() {
		return b, -1, ErrInvalidPiece
	}

	row := LowestEmptyRow(b, col)
	if row == -1 {
		return b, -1, ErrColumnFull
	}

	next := b.Clone()
	next.cells[next.index(row, col)] = color
	return next, row, nil
}

// IsBoardFull only looks at the top row; gravity guarantees the rest.
func IsBoardFull(b Board) bool {
	for c := 0; c < b.cols; c++ {
		if b.cells[b.index(0, c)] == Empty {
			return false
		}
	}
	return true
}

func IsValidMove(b Board, col int) bool {
	return LowestEmptyRow(b, col) != -1
}

// ValidMoves lists the playable columns from left to right.
func ValidMoves(b Board) []int {
	moves := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.cells[b.index(0, col)] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

func CountPieces(b Board) int {
	n := 0
	for _, cell := range b.cells {
		if cell != Empty {
			n++
		}
	}
	return n
}

// this counts the number of disks in a specific direction
func CountDiskInDirection(b Board, row, col, deltaRow, deltaCol int, color Cell) int {
	count := 0
	r, c := row+deltaRow, col+deltaCol
	for b.InBounds(r, c) && b.At(r, c) == color {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
