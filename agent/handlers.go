package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"kingdomino/game"
	"kingdomino/player"
	"kingdomino/searcher"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Move is a domino already laid in the kingdom, by catalog ID.
type Move struct {
	Placement game.Placement `json:"placement"`
	Domino    int            `json:"domino"`
}

type BestMoveRequest struct {
	HalfExtent int    `json:"half_extent,omitempty"`
	History    []Move `json:"history"`
	Domino     int    `json:"domino"`
	Strategy   string `json:"strategy,omitempty"`
}

type BestMoveResponse struct {
	ID        string         `json:"id"`
	Placement game.Placement `json:"placement"`
	Key       searcher.Key   `json:"key"`
	Score     int            `json:"score"`
	Board     string         `json:"board"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, game.Catalog())
}

func (s *Server) bestMove(w http.ResponseWriter, r *http.Request) {
	var req BestMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	p, err := s.replay(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	d, ok := game.DominoByID(req.Domino)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("unknown domino %d", req.Domino))
		return
	}

	best, err := p.BestMove(d)
	switch {
	case errors.Is(err, game.ErrNoMorePlace):
		writeError(w, http.StatusUnprocessableEntity, "no_more_place", err)
		return
	case errors.Is(err, game.ErrDominoNotPlayable):
		writeError(w, http.StatusUnprocessableEntity, "domino_not_playable", err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}

	board := p.Board.Copy()
	if err := board.PlaceDomino(best.Placement, d); err != nil {
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}
	id := uuid.NewString()
	log.Debug().Msgf("advice %s: %v at %v scores %d", id, d, best.Placement, best.Score)
	writeJSON(w, http.StatusOK, BestMoveResponse{
		ID:        id,
		Placement: best.Placement,
		Key:       best.Key,
		Score:     best.Score,
		Board:     board.String(),
	})
}

// replay rebuilds the kingdom described by the request's history.
func (s *Server) replay(req BestMoveRequest) (*player.Player, error) {
	strategy := player.Greedy
	if req.Strategy != "" {
		var err error
		if strategy, err = player.ParseStrategy(req.Strategy); err != nil {
			return nil, err
		}
	}
	halfExtent := s.halfExtent
	if req.HalfExtent != 0 {
		if req.HalfExtent < game.MinHalfExtent || req.HalfExtent > game.MaxHalfExtent {
			return nil, fmt.Errorf("half extent must be between %d and %d, got %d", game.MinHalfExtent, game.MaxHalfExtent, req.HalfExtent)
		}
		halfExtent = req.HalfExtent
	}

	board := game.NewBoard(game.WithHalfExtent(halfExtent, halfExtent))
	for i, m := range req.History {
		d, ok := game.DominoByID(m.Domino)
		if !ok {
			return nil, fmt.Errorf("move %d: unknown domino %d", i, m.Domino)
		}
		if err := board.PlaceDomino(m.Placement, d); err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
	}

	options := []searcher.Option{searcher.WithGoroutines(s.goroutines)}
	if strategy == player.Random {
		options = append(options, searcher.WithRand(rand.New(rand.NewSource(s.seed()))))
	}
	return player.NewPlayer("advisor", strategy,
		player.WithBoard(board),
		player.WithSearcher(searcher.New(options...)),
	), nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, kind string, err error) {
	writeJSON(w, status, errorResponse{Error: kind, Message: err.Error()})
}
