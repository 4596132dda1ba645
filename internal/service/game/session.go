package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/connect4/engine/internal/domain"
	"github.com/iamasit07/connect4/engine/internal/service/bot"
)

// Notifier delivers session events to whoever is watching the game.
type Notifier interface {
	SendMessage(gameID string, message domain.ServerMessage) error
}

type noopNotifier struct{}

func (noopNotifier) SendMessage(string, domain.ServerMessage) error { return nil }

type SessionOptions struct {
	GameID     string
	Rows       int
	Columns    int
	Difficulty bot.BotDifficulty
	Chooser    bot.MoveChooser
	Notifier   Notifier
	// HumanColor pins the human to a color; Empty means flip a coin.
	HumanColor domain.Cell
	// CoinFlip returns true when the human gets red. Defaults to math/rand.
	CoinFlip func() bool
}

// Session owns one human-vs-bot game. The bot runs in the background on a
// copy of the board; results are applied only if the session generation
// has not moved on since the computation started.
type Session struct {
	GameID       string
	Game         *domain.Game
	HumanColor   domain.Cell
	AIColor      domain.Cell
	Difficulty   bot.BotDifficulty
	CreatedAt    time.Time
	LastActivity time.Time
	FinishedAt   time.Time

	rows       int
	cols       int
	fixedColor domain.Cell
	generation uint64
	thinking   bool
	closed     bool
	chooser    bot.MoveChooser
	notifier   Notifier
	coinFlip   func() bool
	botWG      sync.WaitGroup
	mu         sync.Mutex
}

// SessionState is a point-in-time copy of a session, safe to serialize.
type SessionState struct {
	GameID       string              `json:"gameId"`
	Generation   uint64              `json:"generation"`
	Difficulty   bot.BotDifficulty   `json:"difficulty"`
	HumanColor   domain.Cell         `json:"humanColor"`
	AIColor      domain.Cell         `json:"aiColor"`
	CurrentTurn  domain.Cell         `json:"currentTurn"`
	Status       domain.GameStatus   `json:"status"`
	Winner       domain.Cell         `json:"winner"`
	WinningCells domain.WinningCells `json:"winningCells,omitempty"`
	Board        domain.Board        `json:"board"`
	Moves        []domain.Move       `json:"moves"`
	BotThinking  bool                `json:"botThinking"`
	CreatedAt    time.Time           `json:"createdAt"`
}

func NewSession(opts SessionOptions) (*Session, error) {
	if opts.Notifier == nil {
		opts.Notifier = noopNotifier{}
	}
	if opts.Chooser == nil {
		opts.Chooser = bot.NewMoveChooser(opts.Difficulty, bot.MINIMAX_DEPTH)
	}
	if opts.CoinFlip == nil {
		opts.CoinFlip = func() bool { return rand.Intn(2) == 0 }
	}

	now := time.Now()
	s := &Session{
		GameID:       opts.GameID,
		Difficulty:   opts.Difficulty,
		CreatedAt:    now,
		LastActivity: now,
		rows:         opts.Rows,
		cols:         opts.Columns,
		fixedColor:   opts.HumanColor,
		chooser:      opts.Chooser,
		notifier:     opts.Notifier,
		coinFlip:     opts.CoinFlip,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.startLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// startLocked runs the setup phase: colors are bound, red moves first.
func (s *Session) startLocked() error {
	g, err := domain.NewGame(s.rows, s.cols)
	if err != nil {
		return err
	}

	switch {
	case s.fixedColor.IsPlayer():
		s.HumanColor = s.fixedColor
	case s.coinFlip():
		s.HumanColor = domain.Red
	default:
		s.HumanColor = domain.Yellow
	}
	s.AIColor = s.HumanColor.Opponent()

	if err := g.Start(domain.Red); err != nil {
		return err
	}
	s.Game = g
	s.FinishedAt = time.Time{}

	log.Printf("[SESSION] Game %s (gen %d): human is %s, bot (%s) is %s",
		s.GameID, s.generation, s.HumanColor, s.Difficulty, s.AIColor)

	board := s.Game.Board
	s.sendLocked(domain.ServerMessage{
		Type:        "game_start",
		GameID:      s.GameID,
		Generation:  s.generation,
		HumanColor:  s.HumanColor,
		AIColor:     s.AIColor,
		Difficulty:  string(s.Difficulty),
		CurrentTurn: s.Game.CurrentTurn,
		Board:       &board,
		Status:      s.Game.Status,
	})

	s.maybeStartBotLocked()
	return nil
}

// HandleMove plays column for the human side.
func (s *Session) HandleMove(column int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.Game.Status != domain.StatusPlaying {
		return -1, domain.ErrGameNotActive
	}
	if s.Game.CurrentTurn != s.HumanColor {
		if s.thinking {
			return -1, domain.ErrAIThinking
		}
		return -1, domain.ErrNotYourTurn
	}

	row, err := s.Game.Play(s.HumanColor, column)
	if err != nil {
		return -1, err
	}
	s.LastActivity = time.Now()

	s.afterMoveLocked(column, row, s.HumanColor)
	return row, nil
}

// RequestBotMove starts the bot if it is its turn. A second request while
// a computation is running is rejected.
func (s *Session) RequestBotMove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.Game.Status != domain.StatusPlaying {
		return domain.ErrGameNotActive
	}
	if s.Game.CurrentTurn != s.AIColor {
		return domain.ErrNotYourTurn
	}
	return s.startBotLocked()
}

// Reset throws the current game away and starts a fresh one. A bot move
// still being computed for the old game is discarded when it arrives.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrGameNotActive
	}

	s.generation++
	s.thinking = false
	s.LastActivity = time.Now()
	return s.startLocked()
}

// Close invalidates any pending bot move and rejects further moves.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.generation++
	s.thinking = false
}

// WaitForBot blocks until no bot computation is running.
func (s *Session) WaitForBot() {
	s.botWG.Wait()
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	moves := make([]domain.Move, len(s.Game.Moves))
	copy(moves, s.Game.Moves)

	return SessionState{
		GameID:       s.GameID,
		Generation:   s.generation,
		Difficulty:   s.Difficulty,
		HumanColor:   s.HumanColor,
		AIColor:      s.AIColor,
		CurrentTurn:  s.Game.CurrentTurn,
		Status:       s.Game.Status,
		Winner:       s.Game.Winner,
		WinningCells: s.Game.WinningCells,
		Board:        s.Game.Board.Clone(),
		Moves:        moves,
		BotThinking:  s.thinking,
		CreatedAt:    s.CreatedAt,
	}
}

func (s *Session) IsFinished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.IsFinished()
}

func (s *Session) maybeStartBotLocked() {
	if s.Game.Status != domain.StatusPlaying || s.Game.CurrentTurn != s.AIColor {
		return
	}
	if err := s.startBotLocked(); err != nil {
		log.Printf("[BOT] Game %s: %v", s.GameID, err)
	}
}

func (s *Session) startBotLocked() error {
	if s.thinking {
		return domain.ErrAIThinking
	}
	s.thinking = true

	generation := s.generation
	board := s.Game.Board.Clone()
	aiColor, humanColor := s.AIColor, s.HumanColor

	s.sendLocked(domain.ServerMessage{
		Type:       "bot_thinking",
		GameID:     s.GameID,
		Generation: generation,
	})

	s.botWG.Add(1)
	go func() {
		defer s.botWG.Done()

		start := time.Now()
		column := s.chooser.ChooseMove(board, aiColor, humanColor)
		log.Printf("[BOT] Game %s: chose column %d in %s", s.GameID, column, time.Since(start))

		s.applyBotMove(generation, column)
	}()
	return nil
}

func (s *Session) applyBotMove(generation uint64, column int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		log.Printf("[BOT] Game %s: discarding move for generation %d (now %d)", s.GameID, generation, s.generation)
		return
	}
	s.thinking = false

	row, err := s.Game.Play(s.AIColor, column)
	if err != nil {
		log.Printf("[BOT] Game %s: bot move in column %d rejected: %v", s.GameID, column, err)
		s.sendLocked(domain.ServerMessage{Type: "error", GameID: s.GameID, Message: err.Error()})
		return
	}
	s.LastActivity = time.Now()

	s.afterMoveLocked(column, row, s.AIColor)
}

func (s *Session) afterMoveLocked(column, row int, player domain.Cell) {
	board := s.Game.Board
	s.sendLocked(domain.ServerMessage{
		Type:        "move_made",
		GameID:      s.GameID,
		Generation:  s.generation,
		Move:        &domain.Move{Column: column, Row: row, Player: player},
		SettleMs:    domain.SettleDelayMs(row),
		Board:       &board,
		CurrentTurn: s.Game.CurrentTurn,
		Status:      s.Game.Status,
	})

	if s.Game.IsFinished() {
		s.FinishedAt = time.Now()
		log.Printf("[SESSION] Game %s finished: %s (winner %s) after %d moves",
			s.GameID, s.Game.Status, s.Game.Winner, s.Game.MoveCount())

		s.sendLocked(domain.ServerMessage{
			Type:         "game_over",
			GameID:       s.GameID,
			Generation:   s.generation,
			Board:        &board,
			Status:       s.Game.Status,
			Winner:       s.Game.Winner,
			WinningCells: s.Game.WinningCells,
		})
		return
	}

	s.maybeStartBotLocked()
}

func (s *Session) sendLocked(message domain.ServerMessage) {
	if err := s.notifier.SendMessage(s.GameID, message); err != nil {
		log.Printf("[SESSION] Game %s: failed to send %s: %v", s.GameID, message.Type, err)
	}
}
