package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"isolation/game"
	"isolation/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// maxMoveRequestBytes bounds a POST /move body. A full 64x64 board fits easily.
const maxMoveRequestBytes = 1 << 20

type moveRequest struct {
	Board      game.Snapshot `json:"board"`
	TimeLeftMs float64       `json:"time_left_ms"`
}

type moveResponse struct {
	Row      int   `json:"row"`
	Col      int   `json:"col"`
	Depth    int   `json:"depth"`
	Nodes    int64 `json:"nodes"`
	TimedOut bool  `json:"timed_out"`
}

// NewRouter exposes an agent over HTTP:
//
//	POST /move     {"board": Snapshot, "time_left_ms": 1000} -> {"row", "col", ...}
//	GET  /healthz
func NewRouter(a Agent) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/move", handleMove(a))
	return r
}

// StartAgentServer serves the agent on addr until ctx is cancelled.
func StartAgentServer(ctx context.Context, addr string, a Agent) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(a),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting agent server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func handleMove(a Agent) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload moveRequest
		body := http.MaxBytesReader(w, r.Body, maxMoveRequestBytes)
		if err := json.NewDecoder(body).Decode(&payload); err != nil {
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}
		if payload.TimeLeftMs <= 0 {
			http.Error(w, "bad request: time_left_ms must be positive", http.StatusBadRequest)
			return
		}
		board, err := game.FromSnapshot(payload.Board)
		if err != nil {
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		budget := time.Duration(payload.TimeLeftMs * float64(time.Millisecond))
		ctx, cancel := context.WithTimeout(r.Context(), budget)
		defer cancel()

		move, metrics := a.FindMove(board, board.LegalMoves(), searcher.ClockFromContext(ctx))
		log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Stringer("move", move).
			Int("depth", metrics.Depth).
			Int64("nodes", metrics.Nodes).
			Msg("served move")

		w.Header().Set("Content-Type", "application/json")
		resp := moveResponse{
			Row:      move.Row,
			Col:      move.Col,
			Depth:    metrics.Depth,
			Nodes:    metrics.Nodes,
			TimedOut: metrics.TimedOut,
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
		}
	}
}
