package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"isolation/game"
	"isolation/searcher"
	"isolation/utils"

	"github.com/rs/zerolog/log"
)

// remoteAgent asks an agent server for its moves.
type remoteAgent struct {
	url    string
	client *http.Client
}

// NewRemoteAgent returns an agent backed by the server at url (see NewRouter).
// Any transport failure falls back to the first legal move.
func NewRemoteAgent(url string) Agent {
	return &remoteAgent{url: url, client: &http.Client{}}
}

func (a *remoteAgent) FindMove(state game.State, legalMoves []game.Move, clock searcher.Clock) (game.Move, searcher.Metrics) {
	if len(legalMoves) == 0 {
		return game.NoMove, searcher.Metrics{}
	}
	fallback := legalMoves[0]

	board, ok := state.(*game.Board)
	if !ok {
		log.Warn().Msgf("remote agent cannot encode state of type %T", state)
		return fallback, searcher.Metrics{}
	}

	resp, err := a.requestMove(board, clock())
	if err != nil {
		log.Warn().Err(err).Str("url", a.url).Msg("remote agent failed, playing fallback move")
		return fallback, searcher.Metrics{}
	}

	move := game.Move{Row: resp.Row, Col: resp.Col}
	if !utils.Contains(legalMoves, move) {
		log.Warn().Stringer("move", move).Msg("remote agent returned an illegal move, playing fallback move")
		return fallback, searcher.Metrics{}
	}
	return move, searcher.Metrics{Depth: resp.Depth, Nodes: resp.Nodes, TimedOut: resp.TimedOut}
}

func (a *remoteAgent) requestMove(board *game.Board, timeLeftMs float64) (*moveResponse, error) {
	if timeLeftMs <= 0 {
		return nil, fmt.Errorf("no time left")
	}
	bodyBytes, err := json.Marshal(moveRequest{Board: board.Snapshot(), TimeLeftMs: timeLeftMs})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeLeftMs*float64(time.Millisecond)))
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url+"/move", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, out)
	}

	var mr moveResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, err
	}
	return &mr, nil
}
