package main

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/board"
	"github.com/pdrpinto/gridastar/config"
	"github.com/pdrpinto/gridastar/internal/monitoring"
	log "github.com/sirupsen/logrus"
)

// Server exposes boards over HTTP and streams searches over websockets.
type Server struct {
	router   *way.Router
	cfg      *config.Config
	upgrader *websocket.Upgrader
	sessions *sessionStore

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewServer(cfg *config.Config, rng *rand.Rand) *Server {
	s := &Server{
		cfg:      cfg,
		upgrader: &websocket.Upgrader{},
		sessions: newSessionStore(),
		rng:      rng,
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// intParam reads a query parameter, keeping fallback when it is absent or
// does not satisfy ok.
func intParam(r *http.Request, name string, fallback int, ok func(int) bool) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil && ok(v) {
		return v
	}
	return fallback
}

func (s *Server) handleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		dimension := intParam(r, "dimension", s.cfg.Dimension, func(v int) bool { return v > 0 && v <= 500 })
		clusters := intParam(r, "clusters", s.cfg.Scatter.Clusters, func(v int) bool { return v >= 0 })
		steps := intParam(r, "steps", s.cfg.Scatter.Steps, func(v int) bool { return v >= 0 })
		density := s.cfg.Scatter.Density
		if v, err := strconv.ParseFloat(q.Get("density"), 64); err == nil && v >= 0 && v <= 1 {
			density = v
		}

		b, err := board.New(dimension)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if q.Get("empty") == "" {
			s.rngMu.Lock()
			b.Randomize(s.rng, clusters, steps, density)
			s.rngMu.Unlock()
		}

		sess := s.sessions.add(b)
		log.WithFields(log.Fields{"session": sess.id, "dimension": dimension}).Info("session created")
		writeJSON(w, http.StatusCreated, sess.frame())
	}
}

func (s *Server) handleFrame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.sessions.get(way.Param(r.Context(), "id"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, sess.frame())
	}
}

func (s *Server) handleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.sessions.remove(way.Param(r.Context(), "id")) {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

var placeable = map[string]astar.CellState{
	astar.Empty.String():   astar.Empty,
	astar.Start.String():   astar.Start,
	astar.End.String():     astar.End,
	astar.Barrier.String(): astar.Barrier,
}

func (s *Server) handleCell() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.sessions.get(way.Param(r.Context(), "id"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		row, rowErr := strconv.Atoi(way.Param(r.Context(), "row"))
		col, colErr := strconv.Atoi(way.Param(r.Context(), "col"))
		if rowErr != nil || colErr != nil {
			http.Error(w, "row and col must be integers", http.StatusBadRequest)
			return
		}
		state, ok := placeable[r.URL.Query().Get("state")]
		if !ok {
			http.Error(w, "state must be one of empty, start, end, barrier", http.StatusBadRequest)
			return
		}

		sess.mu.Lock()
		if sess.running {
			sess.mu.Unlock()
			http.Error(w, "search in progress", http.StatusConflict)
			return
		}
		sess.board.Grid().ClearSearch()
		err := sess.board.Set(row, col, state)
		sess.mu.Unlock()

		switch {
		case errors.Is(err, board.ErrOutOfBounds):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, board.ErrOccupied):
			http.Error(w, err.Error(), http.StatusConflict)
		case err != nil:
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			writeJSON(w, http.StatusOK, sess.frame())
		}
	}
}

// handleRun upgrades to a websocket and streams one frame per search
// checkpoint. The search is cancelled when the client goes away.
func (s *Server) handleRun() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.sessions.get(way.Param(r.Context(), "id"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		logger := log.WithField("session", sess.id)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sess.mu.Lock()
		if sess.running {
			sess.mu.Unlock()
			http.Error(w, "search in progress", http.StatusConflict)
			return
		}
		stepper, err := sess.board.Stepper(ctx, astar.WithLogger(logger))
		if err != nil {
			sess.mu.Unlock()
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		sess.running = true
		sess.mu.Unlock()

		started := time.Now()
		finished := false
		defer func() {
			sess.mu.Lock()
			if !finished {
				stepper.Close()
				sess.running = false
			}
			result := stepper.Result()
			sess.mu.Unlock()
			monitoring.ObserveSearch(result, time.Since(started))
			logger.WithFields(log.Fields{"outcome": result.Outcome, "expanded": result.Expanded}).Info("search finished")
		}()

		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Warn("websocket upgrade failed")
			return
		}
		defer conn.Close()

		// The client sends nothing; a read error means it has gone.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					cancel()
					return
				}
			}
		}()

		delay := s.cfg.GetFrameDelay()
		for {
			sess.mu.Lock()
			snapshot, err := stepper.Step()
			f := newFrame(sess.id.String(), sess.board)
			if snapshot.Done {
				finished = true
				sess.running = false
			}
			sess.mu.Unlock()
			if err != nil {
				logger.WithError(err).Debug("search stopped")
				return
			}
			f.apply(snapshot)

			if err := conn.WriteJSON(f); err != nil {
				logger.WithError(err).Debug("client write failed")
				return
			}
			if snapshot.Done {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, f.Outcome))
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}
	}
}
