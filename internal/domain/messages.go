package domain

type ClientMessage struct {
	Type   string `json:"type"`
	Column int    `json:"column"`
}

type ServerMessage struct {
	Type         string       `json:"type"`
	Message      string       `json:"message,omitempty"`
	GameID       string       `json:"gameId,omitempty"`
	Generation   uint64       `json:"generation,omitempty"`
	HumanColor   Cell         `json:"humanColor,omitempty"`
	AIColor      Cell         `json:"aiColor,omitempty"`
	Difficulty   string       `json:"difficulty,omitempty"`
	CurrentTurn  Cell         `json:"currentTurn,omitempty"`
	Move         *Move        `json:"move,omitempty"`
	SettleMs     int          `json:"settleMs,omitempty"`
	Board        *Board       `json:"board,omitempty"`
	Status       GameStatus   `json:"status,omitempty"`
	Winner       Cell         `json:"winner,omitempty"`
	WinningCells WinningCells `json:"winningCells,omitempty"`
}

// SettleDelayMs is how long the client animates a piece falling to row.
func SettleDelayMs(row int) int {
	return 400 + row*80
}
