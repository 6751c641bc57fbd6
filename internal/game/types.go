package game

import "fmt"

// Size is the edge length of the board.
const Size = 4

type Player uint8

const (
	Player1 Player = 1
	Player2 Player = 2
)

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) Valid() bool { return p == Player1 || p == Player2 }

func (p Player) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	}
	return fmt.Sprintf("Player(%d)", uint8(p))
}

func (p Player) index() int { return int(p) - 1 }

// owner is the board marker for p's L-piece.
func (p Player) owner() Owner { return Owner(p) }

// Owner is what occupies a single board cell.
type Owner uint8

const (
	Empty Owner = iota
	OwnedByPlayer1
	OwnedByPlayer2
	Neutral
)

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

func (c Cell) less(o Cell) bool {
	return c.Row < o.Row || (c.Row == o.Row && c.Col < o.Col)
}

// Board is indexed [row][col].
type Board [Size][Size]Owner

func (b *Board) At(c Cell) Owner { return b[c.Row][c.Col] }

func (b *Board) Count(o Owner) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == o {
				n++
			}
		}
	}
	return n
}

func (b *Board) clear(p Placement) {
	for _, c := range p {
		b[c.Row][c.Col] = Empty
	}
}

func (b *Board) place(p Placement, o Owner) {
	for _, c := range p {
		b[c.Row][c.Col] = o
	}
}

// Placement is the 4-cell footprint of an L-piece. Cells are kept sorted by
// (row, col) so two placements covering the same cells compare equal with ==.
type Placement [4]Cell

// NewPlacement sorts cells into canonical order.
func NewPlacement(cells [4]Cell) Placement {
	p := Placement(cells)
	for i := 1; i < len(p); i++ {
		for j := i; j > 0 && p[j].less(p[j-1]); j-- {
			p[j], p[j-1] = p[j-1], p[j]
		}
	}
	return p
}

func (p Placement) Contains(c Cell) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// State is a full game position. It is a plain value: assigning it copies
// the board, so callers may explore a copy without touching the original.
type State struct {
	Board    Board        `json:"board"`
	Pieces   [2]Placement `json:"pieces"`
	Neutrals [2]Cell      `json:"neutrals"`
	ToMove   Player       `json:"toMove"`
}

// NeutralMove relocates neutral piece Index to To.
type NeutralMove struct {
	Index int  `json:"index"`
	To    Cell `json:"to"`
}

func (s *State) Piece(p Player) Placement { return s.Pieces[p.index()] }

// NewState returns the standard opening position with Player1 to move.
func NewState() State {
	s, err := NewStateFromLayout(Layout{
		Player1:  [4]Cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}},
		Player2:  [4]Cell{{3, 3}, {3, 2}, {3, 1}, {2, 3}},
		Neutrals: [2]Cell{{1, 1}, {2, 2}},
		ToMove:   Player1,
	})
	if err != nil {
		panic(err)
	}
	return s
}
