package game

import (
	"errors"
	"fmt"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Layout describes a starting position by piece cells rather than by board.
type Layout struct {
	Player1  [4]Cell `json:"player1"`
	Player2  [4]Cell `json:"player2"`
	Neutrals [2]Cell `json:"neutrals"`
	ToMove   Player  `json:"toMove"`
}

// NewStateFromLayout places every piece of l on an empty board. A zero ToMove
// means Player1 starts.
func NewStateFromLayout(l Layout) (State, error) {
	var s State
	s.ToMove = l.ToMove
	if s.ToMove == 0 {
		s.ToMove = Player1
	}
	if !s.ToMove.Valid() {
		return State{}, fmt.Errorf("%w: unknown player %d", ErrInvalidLayout, l.ToMove)
	}

	occupy := func(c Cell, o Owner) error {
		if !c.InBounds() {
			return fmt.Errorf("%w: %s is off the board", ErrInvalidLayout, c)
		}
		if s.Board.At(c) != Empty {
			return fmt.Errorf("%w: %s is occupied twice", ErrInvalidLayout, c)
		}
		s.Board[c.Row][c.Col] = o
		return nil
	}

	for player, cells := range map[Player][4]Cell{Player1: l.Player1, Player2: l.Player2} {
		p := NewPlacement(cells)
		if _, ok := p.Orientation(); !ok {
			return State{}, fmt.Errorf("%w: %s cells %v do not form an L", ErrInvalidLayout, player, cells)
		}
		for _, c := range p {
			if err := occupy(c, player.owner()); err != nil {
				return State{}, err
			}
		}
		s.Pieces[player.index()] = p
	}
	for i, c := range l.Neutrals {
		if err := occupy(c, Neutral); err != nil {
			return State{}, err
		}
		s.Neutrals[i] = c
	}

	if err := s.Validate(); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return s, nil
}
