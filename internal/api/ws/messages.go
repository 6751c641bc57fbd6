package ws

import (
	"fmt"

	"lgame/internal/game"
	"lgame/internal/match"
	"lgame/internal/shared"
)

// MoveMessage is the wire form of a human move, shared by the websocket
// "human_move" action and the HTTP /move endpoint.
type MoveMessage struct {
	Player  int                 `json:"player"`
	Piece   []shared.Coord      `json:"piece"`
	Neutral *shared.NeutralView `json:"neutral,omitempty"`
}

func (m MoveMessage) Move() (match.Move, error) {
	player := game.Player(m.Player)
	if m.Player != int(game.Player1) && m.Player != int(game.Player2) {
		return match.Move{}, fmt.Errorf("%w: unknown player %d", match.ErrNotYourTurn, m.Player)
	}
	piece, ok := shared.Placement(m.Piece)
	if !ok {
		return match.Move{}, fmt.Errorf("%w: piece needs exactly four cells, got %d", match.ErrIllegalMove, len(m.Piece))
	}
	mv := match.Move{Player: player, Piece: piece}
	if m.Neutral != nil {
		mv.Neutral = &match.NeutralRelocation{From: m.Neutral.From.Cell(), To: m.Neutral.To.Cell()}
	}
	return mv, nil
}
