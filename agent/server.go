package agent

import (
	"kingdomino/game"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Option func(s *Server)

// WithGoroutines sets the worker count of every search the server runs.
func WithGoroutines(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

// WithHalfExtent sets the region used when a request does not carry one.
func WithHalfExtent(n int) Option {
	return func(s *Server) {
		if n >= game.MinHalfExtent && n <= game.MaxHalfExtent {
			s.halfExtent = n
		}
	}
}

// WithSeed seeds the shuffle of every random strategy request with seed,
// making its advice reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Server) {
		s.seed = func() uint64 { return seed }
	}
}

// Server advises a player on where to lay a domino, given the moves already
// made in its kingdom. It keeps no state between requests.
type Server struct {
	goroutines int
	halfExtent int
	seed       func() uint64
	router     chi.Router
}

func NewServer(options ...Option) *Server {
	s := &Server{ // Default values
		goroutines: 1,
		halfExtent: game.DefaultHalfExtent,
		seed: func() uint64 {
			return uint64(time.Now().UnixNano())
		},
	}
	for _, option := range options {
		option(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Get("/healthz", s.health)
	r.Get("/catalog", s.catalog)
	r.Post("/bestmove", s.bestMove)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
