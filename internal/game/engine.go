package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrInvalidState = errors.New("invalid game state")

// ApplyMove moves the L-piece of the side to move onto p. The turn does not
// pass until EndTurn, leaving room for a neutral relocation first.
func (s State) ApplyMove(p Placement) State {
	return s.withPiece(s.ToMove, NewPlacement([4]Cell(p)))
}

// ApplyNeutralMove relocates neutral piece index to dst. If the result does
// not hold exactly two neutral pieces the relocation is discarded and the
// last known-good neutral layout is kept.
func (s State) ApplyNeutralMove(index int, dst Cell) State {
	next := s.withNeutral(index, dst)
	if n := next.Board.Count(Neutral); n != len(s.Neutrals) {
		log.Warn().
			Int("neutrals", n).
			Int("index", index).
			Stringer("dst", dst).
			Msg("neutral count drifted, restoring previous neutral layout")
		return s
	}
	return next
}

// EndTurn hands the move to the opponent.
func (s State) EndTurn() State {
	s.ToMove = s.ToMove.Opponent()
	return s
}

func (s State) withPiece(player Player, p Placement) State {
	i := player.index()
	s.Board.clear(s.Pieces[i])
	s.Board.place(p, player.owner())
	s.Pieces[i] = p
	return s
}

func (s State) withNeutral(index int, dst Cell) State {
	old := s.Neutrals[index]
	s.Board[old.Row][old.Col] = Empty
	s.Board[dst.Row][dst.Col] = Neutral
	s.Neutrals[index] = dst
	return s
}

// Validate checks the board invariants: a 4/4/2/6 cell tally, both pieces
// proper L shapes matching the board, and two distinct neutral cells.
func (s *State) Validate() error {
	if !s.ToMove.Valid() {
		return fmt.Errorf("%w: no player to move", ErrInvalidState)
	}
	want := map[Owner]int{OwnedByPlayer1: 4, OwnedByPlayer2: 4, Neutral: 2}
	want[Empty] = Size*Size - want[OwnedByPlayer1] - want[OwnedByPlayer2] - want[Neutral]
	for o, n := range want {
		if got := s.Board.Count(o); got != n {
			return fmt.Errorf("%w: %d cells of kind %d, want %d", ErrInvalidState, got, o, n)
		}
	}
	for _, player := range [2]Player{Player1, Player2} {
		p := s.Piece(player)
		if _, ok := p.Orientation(); !ok {
			return fmt.Errorf("%w: %s piece is not an L", ErrInvalidState, player)
		}
		for _, c := range p {
			if !c.InBounds() || s.Board.At(c) != player.owner() {
				return fmt.Errorf("%w: %s piece does not match board at %s", ErrInvalidState, player, c)
			}
		}
	}
	if s.Neutrals[0] == s.Neutrals[1] {
		return fmt.Errorf("%w: neutral pieces share %s", ErrInvalidState, s.Neutrals[0])
	}
	for _, c := range s.Neutrals {
		if !c.InBounds() || s.Board.At(c) != Neutral {
			return fmt.Errorf("%w: neutral piece missing at %s", ErrInvalidState, c)
		}
	}
	return nil
}
