package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/connect4/engine/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	IdleTTL        time.Duration
	FinishedTTL    time.Duration
	Interval       time.Duration
}

func NewWorker(sm *game.SessionManager, idleTTL, finishedTTL, interval time.Duration) *Worker {
	return &Worker{
		SessionManager: sm,
		IdleTTL:        idleTTL,
		FinishedTTL:    finishedTTL,
		Interval:       interval,
	}
}

// Start runs one cleanup right away and then one per interval until ctx
// is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.RunCleanup()

	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.RunCleanup()
			case <-ctx.Done():
				log.Println("[CLEANUP] Background worker stopped")
				return
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

// RunCleanup executes the actual cleanup logic
func (w *Worker) RunCleanup() int {
	log.Println("[CLEANUP] Starting scheduled cleanup task...")
	return w.SessionManager.CleanupOldSessions(w.IdleTTL, w.FinishedTTL)
}
