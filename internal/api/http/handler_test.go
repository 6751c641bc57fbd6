package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lgame/internal/api/ws"
	"lgame/internal/config"
	"lgame/internal/match"
	"lgame/internal/shared"
	"lgame/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{Search: config.Search{Depth: 2, MaxDepth: 4}}
	hub := ws.NewHub()
	mgr := match.NewManager(store.NewMemoryStore(), cfg, hub)
	hub.SetManager(mgr)
	return NewRouter(mgr, hub, cfg)
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (int, map[string]json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func createMatch(t *testing.T, r *gin.Engine, req CreateMatchRequest) (string, shared.MatchView) {
	t.Helper()
	code, out := do(t, r, http.MethodPost, "/create-match", req)
	require.Equal(t, http.StatusOK, code, string(out["error"]))
	var id string
	var view shared.MatchView
	require.NoError(t, json.Unmarshal(out["matchId"], &id))
	require.NoError(t, json.Unmarshal(out["match"], &view))
	return id, view
}

func TestCreateMatchAndState(t *testing.T) {
	r := newTestRouter(t)
	id, view := createMatch(t, r, CreateMatchRequest{Player2: "ai"})
	assert.Equal(t, id, view.ID)
	assert.Equal(t, []shared.Coord{{0, 0}, {0, 1}, {0, 2}, {1, 0}}, view.Player1)
	assert.Equal(t, []shared.Coord{{1, 1}, {2, 2}}, view.Neutrals)
	assert.Equal(t, [2]string{"human", "ai"}, view.Controllers)
	assert.Equal(t, 2, view.Depth)

	code, out := do(t, r, http.MethodGet, "/state?matchId="+id, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, out, "match")

	code, _ = do(t, r, http.MethodGet, "/state?matchId=nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateMatchWithLayout(t *testing.T) {
	r := newTestRouter(t)
	_, view := createMatch(t, r, CreateMatchRequest{
		First: 2,
		Layout: &LayoutRequest{
			Player1:  []shared.Coord{{0, 0}, {0, 1}, {0, 2}, {1, 0}},
			Player2:  []shared.Coord{{1, 1}, {1, 2}, {1, 3}, {2, 3}},
			Neutrals: []shared.Coord{{0, 3}, {3, 3}},
		},
	})
	assert.EqualValues(t, 2, view.ToMove)

	code, _ := do(t, r, http.MethodPost, "/create-match", CreateMatchRequest{
		Layout: &LayoutRequest{
			Player1:  []shared.Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
			Player2:  []shared.Coord{{1, 1}, {1, 2}, {1, 3}, {2, 3}},
			Neutrals: []shared.Coord{{0, 3}, {3, 3}},
		},
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, r, http.MethodPost, "/create-match", CreateMatchRequest{
		Layout: &LayoutRequest{Player1: []shared.Coord{{0, 0}}},
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestPossibleMoves(t *testing.T) {
	r := newTestRouter(t)
	id, _ := createMatch(t, r, CreateMatchRequest{})

	code, out := do(t, r, http.MethodGet, "/possible-moves?matchId="+id, nil)
	require.Equal(t, http.StatusOK, code)
	var moves [][]shared.Coord
	require.NoError(t, json.Unmarshal(out["moves"], &moves))
	assert.Len(t, moves, 4)
	assert.Equal(t, []shared.Coord{{0, 0}, {1, 0}, {2, 0}, {2, 1}}, moves[0])

	code, _ = do(t, r, http.MethodGet, "/possible-moves?matchId="+id+"&player=2", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = do(t, r, http.MethodGet, "/possible-moves?matchId="+id+"&player=3", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestMoveThenBot(t *testing.T) {
	r := newTestRouter(t)
	id, _ := createMatch(t, r, CreateMatchRequest{Player2: "ai"})

	move := MoveRequest{MatchID: id, MoveMessage: ws.MoveMessage{
		Player:  1,
		Piece:   []shared.Coord{{2, 1}, {0, 0}, {1, 0}, {2, 0}},
		Neutral: &shared.NeutralView{From: shared.Coord{1, 1}, To: shared.Coord{0, 3}},
	}}
	code, out := do(t, r, http.MethodPost, "/move", move)
	require.Equal(t, http.StatusOK, code, string(out["error"]))
	var view shared.MatchView
	require.NoError(t, json.Unmarshal(out["match"], &view))
	assert.EqualValues(t, 2, view.ToMove)
	assert.Contains(t, view.Neutrals, shared.Coord{0, 3})

	// Same player again is out of turn.
	code, _ = do(t, r, http.MethodPost, "/move", move)
	assert.Equal(t, http.StatusConflict, code)

	code, out = do(t, r, http.MethodPost, "/move-bot", MoveBotRequest{MatchID: id})
	require.Equal(t, http.StatusOK, code, string(out["error"]))
	var mv shared.MoveView
	require.NoError(t, json.Unmarshal(out["move"], &mv))
	assert.EqualValues(t, 2, mv.Player)
	assert.Len(t, mv.Piece, 4)

	// Player1 is human, so the bot may not move for it.
	code, _ = do(t, r, http.MethodPost, "/move-bot", MoveBotRequest{MatchID: id})
	assert.Equal(t, http.StatusConflict, code)
}

func TestMoveRejected(t *testing.T) {
	r := newTestRouter(t)
	id, _ := createMatch(t, r, CreateMatchRequest{})

	for name, tc := range map[string]struct {
		body interface{}
		code int
	}{
		"missing match id": {MoveRequest{}, http.StatusBadRequest},
		"unknown match":    {MoveRequest{MatchID: "nope", MoveMessage: ws.MoveMessage{Player: 1}}, http.StatusNotFound},
		"three cells": {MoveRequest{MatchID: id, MoveMessage: ws.MoveMessage{
			Player: 1, Piece: []shared.Coord{{0, 0}, {1, 0}, {2, 0}},
		}}, http.StatusBadRequest},
		"illegal placement": {MoveRequest{MatchID: id, MoveMessage: ws.MoveMessage{
			Player: 1, Piece: []shared.Coord{{0, 0}, {0, 1}, {0, 2}, {1, 0}},
		}}, http.StatusBadRequest},
		"neutral onto piece": {MoveRequest{MatchID: id, MoveMessage: ws.MoveMessage{
			Player:  1,
			Piece:   []shared.Coord{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
			Neutral: &shared.NeutralView{From: shared.Coord{1, 1}, To: shared.Coord{3, 3}},
		}}, http.StatusBadRequest},
	} {
		t.Run(name, func(t *testing.T) {
			code, out := do(t, r, http.MethodPost, "/move", tc.body)
			assert.Equal(t, tc.code, code)
			assert.Contains(t, out, "error")
		})
	}
}

func TestConfigEndpoint(t *testing.T) {
	r := newTestRouter(t)
	code, out := do(t, r, http.MethodGet, "/config/search", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, "2", string(out["depth"]))
	assert.JSONEq(t, "4", string(out["maxDepth"]))
	assert.JSONEq(t, "0", string(out["cacheLimit"]))
}
