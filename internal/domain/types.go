package domain

// Cell is the content of one board square. The two non-empty values
// double as the player colors.
type Cell int

const (
	Empty  Cell = 0
	Red    Cell = 1
	Yellow Cell = 2
)

const (
	DefaultRows    = 6
	DefaultColumns = 7
	ToWin          = 4
)

func (c Cell) Opponent() Cell {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

func (c Cell) IsPlayer() bool {
	return c == Red || c == Yellow
}

func (c Cell) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "empty"
	}
}

// ParseCell accepts either the color name or its numeric form.
func ParseCell(s string) (Cell, bool) {
	switch s {
	case "red", "1":
		return Red, true
	case "yellow", "2":
		return Yellow, true
	case "empty", "0", "":
		return Empty, true
	}
	return Empty, false
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WinningCells holds exactly ToWin positions of one color along one axis.
type WinningCells []Position

// to represent the game status
type GameStatus string

const (
	StatusSetup   GameStatus = "setup"
	StatusPlaying GameStatus = "playing"
	StatusWon     GameStatus = "won"
	StatusDraw    GameStatus = "draw"
)

type Outcome int

const (
	InProgress Outcome = iota
	Win
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// GameResult is what a board says about the game after a move.
// Winner is only set when Outcome is Win.
type GameResult struct {
	Outcome Outcome
	Winner  Cell
	Cells   WinningCells
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull        Error = "column is full"
	ErrInvalidColumn     Error = "invalid column"
	ErrInvalidDimensions Error = "invalid board dimensions"
	ErrInvalidPiece      Error = "invalid piece"
	ErrInvalidBoard      Error = "invalid board"
	ErrGameNotActive     Error = "game is not active"
	ErrNotYourTurn       Error = "not your turn"
	ErrAIThinking        Error = "bot is already thinking"
	ErrSessionNotFound   Error = "session not found"
)
