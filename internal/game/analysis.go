package game

// maxPlacements is the number of L placements that fit on an empty board.
const maxPlacements = 48

// LegalMoves lists every placement player may move their L-piece to, in
// generation order: anchors row by row, then orientations. An empty result
// means player has no move and has lost.
func LegalMoves(s State, player Player) []Placement {
	return AppendLegalMoves(make([]Placement, 0, maxPlacements), s, player)
}

// AppendLegalMoves is LegalMoves appending into dst, for callers that reuse
// a buffer across calls.
func AppendLegalMoves(dst []Placement, s State, player Player) []Placement {
	own := s.Piece(player)
	b := s.Board
	b.clear(own)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			for i := range orientations {
				p, ok := b.fit(r, c, &orientations[i])
				if !ok || p == own {
					continue
				}
				dst = append(dst, p)
			}
		}
	}
	return dst
}

// CountLegalMoves returns len(LegalMoves(s, player)) without allocating.
func CountLegalMoves(s State, player Player) int {
	own := s.Piece(player)
	b := s.Board
	b.clear(own)
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			for i := range orientations {
				if p, ok := b.fit(r, c, &orientations[i]); ok && p != own {
					n++
				}
			}
		}
	}
	return n
}

// IsLegalMove reports whether p is one of LegalMoves(s, player). p need not
// be in canonical cell order.
func IsLegalMove(s State, player Player, p Placement) bool {
	p = NewPlacement([4]Cell(p))
	for _, m := range LegalMoves(s, player) {
		if m == p {
			return true
		}
	}
	return false
}

// fit translates shape to anchor (r, c) and reports whether every cell lands
// on an empty square.
func (b *Board) fit(r, c int, shape *[4]Cell) (Placement, bool) {
	var p Placement
	for i, off := range shape {
		cell := Cell{Row: r + off.Row, Col: c + off.Col}
		if !cell.InBounds() || b[cell.Row][cell.Col] != Empty {
			return Placement{}, false
		}
		p[i] = cell
	}
	return p, true
}
