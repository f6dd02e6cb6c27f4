package agent

import (
	"encoding/json"
	"kingdomino/game"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	rr := do(t, NewServer(), http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestCatalog(t *testing.T) {
	rr := do(t, NewServer(), http.MethodGet, "/catalog", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var dominoes []game.Domino
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dominoes))
	require.Len(t, dominoes, game.CatalogSize)
	require.Equal(t, game.Catalog(), dominoes)
}

func TestBestMove(t *testing.T) {
	s := NewServer(WithGoroutines(2))
	wall := `[
		{"placement": {"first": {"x": 1, "y": 0}, "second": {"x": 2, "y": 0}}, "domino": 1},
		{"placement": {"first": {"x": 0, "y": 1}, "second": {"x": 0, "y": 2}}, "domino": 2},
		{"placement": {"first": {"x": -1, "y": 0}, "second": {"x": -2, "y": 0}}, "domino": 1},
		{"placement": {"first": {"x": 0, "y": -1}, "second": {"x": 0, "y": -2}}, "domino": 2}
	]`

	t.Run("advises the best placement", func(t *testing.T) {
		body := `{
			"history": [{"placement": {"first": {"x": 1, "y": 0}, "second": {"x": 2, "y": 0}}, "domino": 48}],
			"domino": 46,
			"strategy": "scorer"
		}`

		rr := do(t, s, http.MethodPost, "/bestmove", body)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var resp BestMoveResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Equal(t, 10, resp.Score)
		require.NotEmpty(t, resp.ID)
		require.NotEmpty(t, resp.Board)
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/bestmove", `{"domino": `)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("illegal history", func(t *testing.T) {
		body := `{
			"history": [{"placement": {"first": {"x": 3, "y": 0}, "second": {"x": 4, "y": 0}}, "domino": 1}],
			"domino": 2
		}`

		rr := do(t, s, http.MethodPost, "/bestmove", body)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Contains(t, rr.Body.String(), "move 0")
	})

	t.Run("unknown domino and strategy", func(t *testing.T) {
		require.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/bestmove", `{"domino": 49}`).Code)
		require.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/bestmove", `{"domino": 1, "strategy": "mcts"}`).Code)
	})

	t.Run("half extent out of range", func(t *testing.T) {
		for _, tc := range []struct {
			halfExtent string
			status     int
		}{
			{"-1", http.StatusBadRequest},
			{"1", http.StatusBadRequest},
			{"2", http.StatusOK},
			{"10", http.StatusOK},
			{"11", http.StatusBadRequest},
			{"2000", http.StatusBadRequest},
			{"9223372036854775807", http.StatusBadRequest},
		} {
			rr := do(t, s, http.MethodPost, "/bestmove", `{"half_extent": `+tc.halfExtent+`, "domino": 1}`)

			require.Equal(t, tc.status, rr.Code, "half extent %s: %s", tc.halfExtent, rr.Body.String())
		}
	})

	t.Run("domino not playable", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/bestmove", `{"history": `+wall+`, "domino": 7}`)

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		var resp errorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Equal(t, "domino_not_playable", resp.Error)
	})

	t.Run("no more place", func(t *testing.T) {
		body := `{
			"half_extent": 2,
			"history": [{"placement": {"first": {"x": 1, "y": 0}, "second": {"x": 1, "y": 1}}, "domino": 1}],
			"domino": 3
		}`

		rr := do(t, s, http.MethodPost, "/bestmove", body)

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		require.Contains(t, rr.Body.String(), "no_more_place")
	})
}

func TestBestMoveRandom(t *testing.T) {
	advise := func(s *Server) game.Placement {
		rr := do(t, s, http.MethodPost, "/bestmove", `{"domino": 13, "strategy": "random"}`)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var resp BestMoveResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp.Placement
	}

	t.Run("seeded advice is reproducible", func(t *testing.T) {
		require.Equal(t, advise(NewServer(WithSeed(21))), advise(NewServer(WithSeed(21))))
	})

	t.Run("advice follows the shuffle", func(t *testing.T) {
		d, ok := game.DominoByID(13)
		require.True(t, ok)
		places, err := game.NewBoard().Places(d)
		require.NoError(t, err)

		differs := false
		for seed := uint64(1); seed <= 10; seed++ {
			if advise(NewServer(WithSeed(seed))) != places[0] {
				differs = true
			}
		}
		require.True(t, differs, "Random advice should not always be the first placement by coordinates")
	})
}
