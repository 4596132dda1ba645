package domain

import (
	"errors"
	"testing"
)

func startedGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(DefaultRows, DefaultColumns)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if err := g.Start(Red); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return g
}

func TestGameSetupPhase(t *testing.T) {
	g, err := NewGame(6, 7)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if g.Status != StatusSetup {
		t.Fatalf("expected setup status, got %s", g.Status)
	}
	if _, err := g.Play(Red, 0); !errors.Is(err, ErrGameNotActive) {
		t.Fatalf("expected ErrGameNotActive before start, got %v", err)
	}
	if err := g.Start(Empty); !errors.Is(err, ErrInvalidPiece) {
		t.Fatalf("expected ErrInvalidPiece, got %v", err)
	}
	if err := g.Start(Yellow); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if g.CurrentTurn != Yellow || g.Status != StatusPlaying {
		t.Fatalf("unexpected state after start: %s %v", g.Status, g.CurrentTurn)
	}
	if err := g.Start(Red); !errors.Is(err, ErrGameNotActive) {
		t.Fatalf("second Start should fail, got %v", err)
	}

	if _, err := NewGame(0, 7); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestGameTurnsAlternate(t *testing.T) {
	g := startedGame(t)

	if _, err := g.Play(Yellow, 0); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}

	row, err := g.Play(Red, 3)
	if err != nil || row != 5 {
		t.Fatalf("red move: row=%d err=%v", row, err)
	}
	if g.CurrentTurn != Yellow {
		t.Fatalf("expected yellow to move")
	}
	if _, err := g.Play(Yellow, 3); err != nil {
		t.Fatalf("yellow move: %v", err)
	}
	if g.CurrentTurn != Red || g.MoveCount() != 2 {
		t.Fatalf("unexpected state: turn=%v moves=%d", g.CurrentTurn, g.MoveCount())
	}
}

func TestGameRejectedMoveKeepsTurn(t *testing.T) {
	g := startedGame(t)
	color := Red
	for i := 0; i < 6; i++ {
		if _, err := g.Play(color, 0); err != nil {
			t.Fatalf("fill column: %v", err)
		}
		color = color.Opponent()
	}

	turn := g.CurrentTurn
	moves := g.MoveCount()
	if _, err := g.Play(turn, 0); !errors.Is(err, ErrColumnFull) {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
	if _, err := g.Play(turn, 9); !errors.Is(err, ErrInvalidColumn) {
		t.Fatalf("expected ErrInvalidColumn, got %v", err)
	}
	if g.CurrentTurn != turn || g.MoveCount() != moves {
		t.Fatalf("rejected move changed the game")
	}
}

func TestGameWin(t *testing.T) {
	g := startedGame(t)
	moves := []struct {
		color Cell
		col   int
	}{
		{Red, 0}, {Yellow, 0},
		{Red, 1}, {Yellow, 1},
		{Red, 2}, {Yellow, 2},
		{Red, 3},
	}
	for _, m := range moves {
		if _, err := g.Play(m.color, m.col); err != nil {
			t.Fatalf("move %+v: %v", m, err)
		}
	}

	if g.Status != StatusWon || g.Winner != Red {
		t.Fatalf("expected red win, got %s %v", g.Status, g.Winner)
	}
	if len(g.WinningCells) != ToWin {
		t.Fatalf("expected winning cells, got %v", g.WinningCells)
	}
	if res := g.Result(); res.Outcome != Win || res.Winner != Red {
		t.Fatalf("unexpected result %+v", res)
	}
	if _, err := g.Play(Yellow, 4); !errors.Is(err, ErrGameNotActive) {
		t.Fatalf("expected ErrGameNotActive after win, got %v", err)
	}
	if !g.IsFinished() {
		t.Fatalf("game should be finished")
	}
}

func TestGameDraw(t *testing.T) {
	g, _ := NewGame(2, 2)
	_ = g.Start(Red)

	for _, col := range []int{0, 0, 1, 1} {
		if _, err := g.Play(g.CurrentTurn, col); err != nil {
			t.Fatalf("move in column %d: %v", col, err)
		}
	}
	if g.Status != StatusDraw {
		t.Fatalf("expected draw, got %s", g.Status)
	}
	if res := g.Result(); res.Outcome != Draw {
		t.Fatalf("expected draw result, got %v", res.Outcome)
	}
}
