package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4/engine/internal/domain"
	"github.com/iamasit07/connect4/engine/internal/service/bot"
	"github.com/iamasit07/connect4/engine/internal/service/game"
)

func newTestRouter(t *testing.T) (*gin.Engine, *game.SessionManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sm := game.NewSessionManager(game.ManagerOptions{SearchDepth: 3})
	t.Cleanup(sm.Shutdown)

	router := gin.New()
	RegisterRoutes(router,
		NewGameHandler(sm, bot.DifficultyEasy),
		NewEngineHandler(game.NewService(sm, 3), domain.DefaultRows, domain.DefaultColumns),
	)
	return router, sm
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func bottomRow(row ...int) [][]int {
	grid := make([][]int, domain.DefaultRows)
	for r := range grid {
		grid[r] = make([]int, domain.DefaultColumns)
	}
	copy(grid[domain.DefaultRows-1], row)
	return grid
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode[map[string]any](t, w)
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body %v", body)
	}
}

func TestGameLifecycle(t *testing.T) {
	router, sm := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/games", map[string]string{"difficulty": "easy", "humanColor": "red"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	created := decode[game.SessionState](t, w)
	if created.GameID == "" || created.HumanColor != domain.Red || created.Status != domain.StatusPlaying {
		t.Fatalf("unexpected created game %+v", created)
	}
	if created.Difficulty != bot.DifficultyEasy {
		t.Fatalf("expected easy difficulty, got %s", created.Difficulty)
	}

	w = doJSON(t, router, http.MethodPost, "/api/games/"+created.GameID+"/moves", map[string]int{"column": 3})
	if w.Code != http.StatusOK {
		t.Fatalf("move: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if moved := decode[moveResponse](t, w); moved.Row != 5 {
		t.Fatalf("expected the piece on row 5, got %d", moved.Row)
	}

	session, _ := sm.GetSessionByGameID(created.GameID)
	session.WaitForBot()

	w = doJSON(t, router, http.MethodGet, "/api/games/"+created.GameID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	if state := decode[game.SessionState](t, w); len(state.Moves) != 2 || state.CurrentTurn != domain.Red {
		t.Fatalf("expected the bot to have answered, got %+v", state)
	}

	w = doJSON(t, router, http.MethodPost, "/api/games/"+created.GameID+"/reset", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", w.Code)
	}
	if state := decode[game.SessionState](t, w); state.Generation != 1 || len(state.Moves) != 0 {
		t.Fatalf("unexpected state after reset %+v", state)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/games/"+created.GameID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/api/games/"+created.GameID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestMoveErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	created := decode[game.SessionState](t, doJSON(t, router, http.MethodPost, "/api/games", map[string]string{"humanColor": "red"}))
	path := "/api/games/" + created.GameID + "/moves"

	if w := doJSON(t, router, http.MethodPost, path, map[string]int{"column": 9}); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid column: expected 400, got %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, path, map[string]string{}); w.Code != http.StatusBadRequest {
		t.Fatalf("missing column: expected 400, got %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, "/api/games/nope/moves", map[string]int{"column": 0}); w.Code != http.StatusNotFound {
		t.Fatalf("unknown game: expected 404, got %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, "/api/games", map[string]string{"humanColor": "green"}); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown color: expected 400, got %d", w.Code)
	}
}

func TestEngineMove(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/engine/move", map[string]any{
		"board":      bottomRow(1, 1, 1),
		"color":      "yellow",
		"difficulty": "hard",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	suggestion := decode[game.Suggestion](t, w)
	if suggestion.Column != 3 || suggestion.Row != 5 || suggestion.Result != "in_progress" {
		t.Fatalf("expected a block in column 3, got %+v", suggestion)
	}
	if suggestion.Board.At(5, 3) != domain.Yellow {
		t.Fatalf("returned board does not carry the move")
	}

	w = doJSON(t, router, http.MethodPost, "/api/engine/move", map[string]any{
		"board": bottomRow(1, 1, 1, 1),
		"color": "yellow",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("finished board: expected 409, got %d", w.Code)
	}
}

func TestEngineDropAndEvaluate(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/engine/drop", map[string]any{
		"board":  bottomRow(1, 1, 1),
		"color":  "red",
		"column": 3,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("drop: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if res := decode[game.Suggestion](t, w); res.Result != "win" || res.Winner != domain.Red {
		t.Fatalf("expected a red win, got %+v", res)
	}

	w = doJSON(t, router, http.MethodPost, "/api/engine/drop", map[string]any{
		"board":  bottomRow(),
		"color":  "red",
		"column": 7,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out of range column: expected 400, got %d", w.Code)
	}

	floating := bottomRow()
	floating[0][0] = 1
	w = doJSON(t, router, http.MethodPost, "/api/engine/evaluate", map[string]any{"board": floating, "color": "red"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("floating piece: expected 400, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/engine/evaluate", map[string]any{"board": bottomRow(), "color": "red"})
	if w.Code != http.StatusOK {
		t.Fatalf("evaluate: expected 200, got %d", w.Code)
	}
	if body := decode[map[string]int](t, w); body["score"] != 0 {
		t.Fatalf("empty board should score 0, got %v", body)
	}
}

func TestEngineRejectsOversizedBoards(t *testing.T) {
	router, _ := newTestRouter(t)

	wide := make([][]int, domain.DefaultRows)
	for r := range wide {
		wide[r] = make([]int, 60)
	}
	tall := make([][]int, domain.DefaultRows+1)
	for r := range tall {
		tall[r] = make([]int, domain.DefaultColumns)
	}

	for _, path := range []string{"/api/engine/move", "/api/engine/evaluate", "/api/engine/drop"} {
		for _, grid := range [][][]int{wide, tall} {
			w := doJSON(t, router, http.MethodPost, path, map[string]any{
				"board":      grid,
				"color":      "red",
				"column":     0,
				"difficulty": "hard",
			})
			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s with a %dx%d board: expected 400, got %d", path, len(grid), len(grid[0]), w.Code)
			}
		}
	}
}
