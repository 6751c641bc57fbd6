package http

import (
	"lgame/internal/api/ws"
	"lgame/internal/game"
	"lgame/internal/shared"
)

// CreateMatchRequest represents the payload for /create-match.
type CreateMatchRequest struct {
	Player1 string         `json:"player1"` // "human" or "ai"
	Player2 string         `json:"player2"`
	First   int            `json:"first"` // 1 or 2, 0 keeps the layout's choice
	Depth   int            `json:"depth"`
	Layout  *LayoutRequest `json:"layout"`
}

// LayoutRequest is a custom starting position.
type LayoutRequest struct {
	Player1  []shared.Coord `json:"player1" binding:"required,len=4"`
	Player2  []shared.Coord `json:"player2" binding:"required,len=4"`
	Neutrals []shared.Coord `json:"neutrals" binding:"required,len=2"`
}

func (l *LayoutRequest) Layout() *game.Layout {
	if l == nil {
		return nil
	}
	var out game.Layout
	for i, c := range l.Player1 {
		out.Player1[i] = c.Cell()
	}
	for i, c := range l.Player2 {
		out.Player2[i] = c.Cell()
	}
	for i, c := range l.Neutrals {
		out.Neutrals[i] = c.Cell()
	}
	return &out
}

// MoveRequest represents a human move.
type MoveRequest struct {
	MatchID string `json:"matchId" binding:"required"`
	ws.MoveMessage
}

// MoveBotRequest asks the computer side to move.
type MoveBotRequest struct {
	MatchID string `json:"matchId" binding:"required"`
}
