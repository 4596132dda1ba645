package domain

type Move struct {
	Column int  `json:"column"`
	Row    int  `json:"row"`
	Player Cell `json:"player"`
}

type Game struct {
	Board        Board
	CurrentTurn  Cell
	Status       GameStatus
	Winner       Cell
	WinningCells WinningCells
	Moves        []Move
}

// NewGame creates a game in the setup phase. Colors still have to be
// assigned by the caller before Start is called.
func NewGame(rows, cols int) (*Game, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Game{
		Board:       board,
		CurrentTurn: Empty,
		Status:      StatusSetup,
		Winner:      Empty,
	}, nil
}

// Start leaves the setup phase with first to move.
func (g *Game) Start(first Cell) error {
	if g.Status != StatusSetup {
		return ErrGameNotActive
	}
	if !first.IsPlayer() {
		return ErrInvalidPiece
	}
	g.CurrentTurn = first
	g.Status = StatusPlaying
	return nil
}

// Play applies a move for color. Any error leaves the game, including
// whose turn it is, exactly as it was.
func (g *Game) Play(color Cell, column int) (int, error) {
	if g.Status != StatusPlaying {
		return -1, ErrGameNotActive
	}
	if color != g.CurrentTurn {
		return -1, ErrNotYourTurn
	}

	board, row, err := DropPiece(g.Board, column, color)
	if err != nil {
		return -1, err
	}

	g.Board = board
	g.Moves = append(g.Moves, Move{Column: column, Row: row, Player: color})

	result := ResultAfterMove(g.Board, row, column)
	switch result.Outcome {
	case Win:
		g.Status = StatusWon
		g.Winner = result.Winner
		g.WinningCells = result.Cells
	case Draw:
		g.Status = StatusDraw
	default:
		g.CurrentTurn = g.CurrentTurn.Opponent()
	}

	return row, nil
}

func (g *Game) Result() GameResult {
	switch g.Status {
	case StatusWon:
		return GameResult{Outcome: Win, Winner: g.Winner, Cells: g.WinningCells}
	case StatusDraw:
		return GameResult{Outcome: Draw}
	default:
		return GameResult{Outcome: InProgress}
	}
}

func (g *Game) MoveCount() int {
	return len(g.Moves)
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
