package game

import (
	"github.com/iamasit07/connect4/engine/internal/domain"
	"github.com/iamasit07/connect4/engine/internal/service/bot"
)

// Service is the entry point for game logic (facade)
type Service struct {
	Sessions    *SessionManager
	SearchDepth int
}

func NewService(sessions *SessionManager, searchDepth int) *Service {
	return &Service{
		Sessions:    sessions,
		SearchDepth: searchDepth,
	}
}

type Suggestion struct {
	Column int          `json:"column"`
	Row    int          `json:"row"`
	Board  domain.Board `json:"board"`
	Result string       `json:"result"`
	Winner domain.Cell  `json:"winner,omitempty"`
}

// SuggestMove runs the bot on an arbitrary board without any session.
func (s *Service) SuggestMove(board domain.Board, aiColor domain.Cell, difficulty bot.BotDifficulty) (Suggestion, error) {
	if !aiColor.IsPlayer() {
		return Suggestion{}, domain.ErrInvalidPiece
	}
	if res := domain.ResultOf(board); res.Outcome != domain.InProgress {
		return Suggestion{}, domain.ErrGameNotActive
	}

	chooser := bot.NewMoveChooser(difficulty, s.SearchDepth)
	column := chooser.ChooseMove(board, aiColor, aiColor.Opponent())

	next, row, err := domain.DropPiece(board, column, aiColor)
	if err != nil {
		return Suggestion{}, err
	}
	return suggestionFor(next, column, row), nil
}

// Drop applies one move to an arbitrary board and reports the outcome.
func (s *Service) Drop(board domain.Board, column int, color domain.Cell) (Suggestion, error) {
	if res := domain.ResultOf(board); res.Outcome != domain.InProgress {
		return Suggestion{}, domain.ErrGameNotActive
	}
	next, row, err := domain.DropPiece(board, column, color)
	if err != nil {
		return Suggestion{}, err
	}
	return suggestionFor(next, column, row), nil
}

func (s *Service) Evaluate(board domain.Board, color domain.Cell) (int, error) {
	if !color.IsPlayer() {
		return 0, domain.ErrInvalidPiece
	}
	return bot.Evaluate(board, color), nil
}

func suggestionFor(board domain.Board, column, row int) Suggestion {
	res := domain.ResultAfterMove(board, row, column)
	return Suggestion{
		Column: column,
		Row:    row,
		Board:  board,
		Result: res.Outcome.String(),
		Winner: res.Winner,
	}
}
