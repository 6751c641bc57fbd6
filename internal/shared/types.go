package shared

import (
	"time"

	"lgame/internal/game"
)

// Coord is a zero-based [row, col] pair as it appears on the wire.
type Coord [2]int

func CoordOf(c game.Cell) Coord { return Coord{c.Row, c.Col} }

func (c Coord) Cell() game.Cell { return game.Cell{Row: c[0], Col: c[1]} }

func Coords(cells []game.Cell) []Coord {
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = CoordOf(c)
	}
	return out
}

func PlacementCoords(p game.Placement) []Coord { return Coords(p[:]) }

// Placement converts exactly four coords into a placement.
func Placement(cs []Coord) (game.Placement, bool) {
	if len(cs) != 4 {
		return game.Placement{}, false
	}
	var cells [4]game.Cell
	for i, c := range cs {
		cells[i] = c.Cell()
	}
	return game.NewPlacement(cells), true
}

type NeutralView struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

type MoveView struct {
	Player  game.Player  `json:"player"`
	Piece   []Coord      `json:"piece"`
	Neutral *NeutralView `json:"neutral,omitempty"`
}

type MatchView struct {
	ID          string      `json:"id"`
	Board       game.Board  `json:"board"`
	Player1     []Coord     `json:"player1"`
	Player2     []Coord     `json:"player2"`
	Neutrals    []Coord     `json:"neutrals"`
	ToMove      game.Player `json:"toMove"`
	Controllers [2]string   `json:"controllers"`
	Depth       int         `json:"depth"`
	Winner      game.Player `json:"winner,omitempty"`
	History     []MoveView  `json:"history"`
	CreatedAt   time.Time   `json:"createdAt"`
}
