package game

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iamasit07/connect4/engine/internal/domain"
	"github.com/iamasit07/connect4/engine/internal/service/bot"
)

type ManagerOptions struct {
	Rows        int
	Columns     int
	SearchDepth int
	Notifier    Notifier
}

// SessionManager manages active game sessions
type SessionManager struct {
	Session map[string]*Session // gameID → Session
	mu      sync.RWMutex
	opts    ManagerOptions
}

func NewSessionManager(opts ManagerOptions) *SessionManager {
	if opts.Notifier == nil {
		opts.Notifier = noopNotifier{}
	}
	if opts.Rows == 0 {
		opts.Rows = domain.DefaultRows
	}
	if opts.Columns == 0 {
		opts.Columns = domain.DefaultColumns
	}
	return &SessionManager{
		Session: make(map[string]*Session),
		opts:    opts,
	}
}

// CreateSession starts a new game against the bot. humanColor may be
// domain.Empty to let a coin flip decide.
func (sm *SessionManager) CreateSession(difficulty bot.BotDifficulty, humanColor domain.Cell) (*Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	gameID := uuid.NewString()
	session, err := NewSession(SessionOptions{
		GameID:     gameID,
		Rows:       sm.opts.Rows,
		Columns:    sm.opts.Columns,
		Difficulty: difficulty,
		Chooser:    bot.NewMoveChooser(difficulty, sm.opts.SearchDepth),
		Notifier:   sm.opts.Notifier,
		HumanColor: humanColor,
	})
	if err != nil {
		return nil, err
	}

	sm.Session[gameID] = session
	log.Printf("[SESSION] Created session %s against %s (%s)", gameID, bot.GetBotName(difficulty), difficulty)
	return session, nil
}

func (sm *SessionManager) GetSessionByGameID(gameID string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, exists := sm.Session[gameID]
	if !exists {
		return domain.ErrSessionNotFound
	}

	log.Printf("[SESSION] Removing session %s", gameID)
	session.Close()
	delete(sm.Session, gameID)
	return nil
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

// CleanupOldSessions drops finished games after finishedTTL and abandoned
// ones after idleTTL without activity. It returns how many were removed.
func (sm *SessionManager) CleanupOldSessions(idleTTL, finishedTTL time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	now := time.Now()

	for gameID, session := range sm.Session {
		session.mu.Lock()
		finished := session.Game.IsFinished()
		stale := (finished && now.Sub(session.FinishedAt) > finishedTTL) ||
			(!finished && now.Sub(session.LastActivity) > idleTTL)
		session.mu.Unlock()

		if stale {
			session.Close()
			delete(sm.Session, gameID)
			count++
		}
	}

	if count > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d stale game sessions", count)
	}
	return count
}

// Shutdown closes every session and waits for running bot searches.
func (sm *SessionManager) Shutdown() {
	sm.mu.Lock()
	sessions := make([]*Session, 0, len(sm.Session))
	for _, session := range sm.Session {
		sessions = append(sessions, session)
	}
	sm.mu.Unlock()

	for _, session := range sessions {
		session.Close()
		session.WaitForBot()
	}
}
